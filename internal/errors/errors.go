package errors

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrNotFound is returned when a manufacturer, car or driver does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("record already exists")
	// ErrManufacturerInUse is returned when deleting a manufacturer that cars still reference.
	ErrManufacturerInUse = errors.New("manufacturer is referenced by cars")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidSession is returned when a session token is malformed, expired or revoked.
	ErrInvalidSession = errors.New("invalid or expired session")
)

// NonFieldErrors keys messages that belong to the form as a whole.
const NonFieldErrors = "__all__"

// ValidationError carries field-level messages. Keys are form field names.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError from a field map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidation reports whether err is a ValidationError and returns it.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	if verr, ok := AsValidation(err); ok {
		httpErr := NewHTTPError(http.StatusBadRequest, "validation failed", "VALIDATION_FAILED")
		httpErr.Fields = verr.Fields
		return httpErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrDuplicate):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE")
	case errors.Is(err, ErrManufacturerInUse):
		return NewHTTPError(http.StatusConflict, err.Error(), "MANUFACTURER_IN_USE")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidSession):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_SESSION")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

// FieldErrors converts ozzo-validation field errors into a ValidationError.
// Any other error is returned unchanged and nil stays nil.
func FieldErrors(err error) error {
	if err == nil {
		return nil
	}
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		if ferr != nil {
			fields[field] = ferr.Error()
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return NewValidationError(fields)
}
