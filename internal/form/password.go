package form

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var commonPasswords = map[string]struct{}{
	"password":  {},
	"password1": {},
	"12345678":  {},
	"123456789": {},
	"qwerty123": {},
	"iloveyou":  {},
	"11111111":  {},
	"abc12345":  {},
	"letmein1":  {},
	"welcome1":  {},
	"sunshine":  {},
	"football":  {},
	"baseball":  {},
	"trustno1":  {},
	"passw0rd":  {},
}

// PasswordPolicy holds the configured password-strength rules.
// The zero value disables every rule.
type PasswordPolicy struct {
	Enabled   bool
	MinLength int
}

// Check returns the first strength rule password breaks.
func (p PasswordPolicy) Check(password, username string) error {
	if !p.Enabled {
		return nil
	}
	return validation.Validate(password,
		validation.RuneLength(p.MinLength, 0).Error(
			fmt.Sprintf("This password is too short. It must contain at least %d characters.", p.MinLength)),
		validation.By(notNumeric),
		validation.By(notCommon),
		validation.By(notContaining(username)),
	)
}

func notNumeric(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil
		}
	}
	return validation.NewError("password_numeric", "This password is entirely numeric.")
}

func notCommon(value interface{}) error {
	s, _ := value.(string)
	if _, ok := commonPasswords[strings.ToLower(s)]; ok {
		return validation.NewError("password_common", "This password is too common.")
	}
	return nil
}

func notContaining(username string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if username == "" || s == "" {
			return nil
		}
		if strings.Contains(strings.ToLower(s), strings.ToLower(username)) {
			return validation.NewError("password_similar", "The password is too similar to the username.")
		}
		return nil
	}
}
