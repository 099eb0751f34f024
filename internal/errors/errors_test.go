package errors

import (
	"fmt"
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("find car: %w", ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"duplicate", ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{"manufacturer in use", ErrManufacturerInUse, http.StatusConflict, "MANUFACTURER_IN_USE"},
		{"credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"session", ErrInvalidSession, http.StatusUnauthorized, "INVALID_SESSION"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_Validation(t *testing.T) {
	err := fmt.Errorf("create driver: %w", NewValidationError(map[string]string{
		"license_number": "cannot be blank",
	}))

	httpErr := MapErrorToHTTP(err)

	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "cannot be blank", httpErr.ToErrorResponse().Fields["license_number"])
}

func TestValidationError_ErrorIsSorted(t *testing.T) {
	err := NewValidationError(map[string]string{"b": "two", "a": "one"})

	assert.Equal(t, "validation failed: a: one; b: two", err.Error())
}

func TestFieldErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(nil))

	plain := fmt.Errorf("db down")
	assert.Equal(t, plain, FieldErrors(plain))

	err := FieldErrors(validation.Errors{
		"username": validation.NewError("required", "cannot be blank"),
		"country":  nil,
	})
	verr, ok := AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"username": "cannot be blank"}, verr.Fields)

	assert.Nil(t, FieldErrors(validation.Errors{"country": nil}))
}
