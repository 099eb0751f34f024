package form

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"taxiservice/internal/errors"
	"taxiservice/internal/model"
)

const passwordMismatch = "The two password fields didn't match."

// DriverCreationForm is the signup record for a new driver.
type DriverCreationForm struct {
	Username      string `json:"username" form:"username"`
	Password1     string `json:"password1" form:"password1"`
	Password2     string `json:"password2" form:"password2"`
	FirstName     string `json:"first_name" form:"first_name"`
	LastName      string `json:"last_name" form:"last_name"`
	LicenseNumber string `json:"license_number" form:"license_number"`
}

// Validate checks every field and the password rules. The returned error is
// an *errors.ValidationError keyed by form field name.
func (f DriverCreationForm) Validate(policy PasswordPolicy) error {
	fields := map[string]string{}

	err := errors.FieldErrors(validation.ValidateStruct(&f,
		validation.Field(&f.Username, model.Required, validation.RuneLength(1, 150)),
		validation.Field(&f.Password1, model.Required),
		validation.Field(&f.Password2, model.Required),
		validation.Field(&f.FirstName, validation.RuneLength(0, 150)),
		validation.Field(&f.LastName, validation.RuneLength(0, 150)),
		validation.Field(&f.LicenseNumber, model.Required, model.LicenseNumberRule),
	))
	if verr, ok := errors.AsValidation(err); ok {
		for k, v := range verr.Fields {
			fields[k] = v
		}
	} else if err != nil {
		return err
	}

	if _, ok := fields["password2"]; !ok && f.Password1 != "" {
		if f.Password1 != f.Password2 {
			fields["password2"] = passwordMismatch
		} else if perr := policy.Check(f.Password2, f.Username); perr != nil {
			fields["password2"] = perr.Error()
		}
	}

	if len(fields) > 0 {
		return errors.NewValidationError(fields)
	}
	return nil
}

// Cleaned returns the validated values. Fields are kept verbatim.
func (f DriverCreationForm) Cleaned() DriverCreationForm {
	return f
}

// Driver builds the model for the form. The password is not set.
func (f DriverCreationForm) Driver() model.Driver {
	return model.Driver{
		Username:      f.Username,
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		LicenseNumber: f.LicenseNumber,
	}
}

// LicenseUpdateForm changes a driver's license number.
type LicenseUpdateForm struct {
	LicenseNumber string `json:"license_number" form:"license_number"`
}

func (f LicenseUpdateForm) Validate() error {
	return errors.FieldErrors(validation.ValidateStruct(&f,
		validation.Field(&f.LicenseNumber, model.Required, model.LicenseNumberRule),
	))
}
