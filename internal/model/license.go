package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	licenseLength = 8
	licensePrefix = 3
)

// RequiredMessage is reported for every empty required field.
const RequiredMessage = "This field is required."

// Required rejects empty values with RequiredMessage.
var Required = validation.Required.Error(RequiredMessage)

var (
	errLicenseLength  = validation.NewError("validation_license_length", "License number must consist of 8 characters")
	errLicenseLetters = validation.NewError("validation_license_letters", "First 3 characters must be uppercase letters")
	errLicenseDigits  = validation.NewError("validation_license_digits", "Last 5 characters must be digits")
)

// LicenseNumberRule accepts three uppercase latin letters followed by five digits, e.g. "HHH12345".
// Empty values pass; combine with Required.
var LicenseNumberRule = validation.By(func(value interface{}) error {
	s, err := validation.EnsureString(value)
	if err != nil {
		return err
	}
	return ValidateLicenseNumber(s)
})

// ValidateLicenseNumber reports the first license format rule s breaks.
func ValidateLicenseNumber(s string) error {
	if s == "" {
		return nil
	}
	if len(s) != licenseLength {
		return errLicenseLength
	}
	for i := 0; i < licensePrefix; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return errLicenseLetters
		}
	}
	for i := licensePrefix; i < licenseLength; i++ {
		if s[i] < '0' || s[i] > '9' {
			return errLicenseDigits
		}
	}
	return nil
}
