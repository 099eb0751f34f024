package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "taxiservice/internal/errors"
)

// translate maps gorm errors onto the domain errors services and handlers understand.
func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	case isDuplicate(err):
		return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value")
}
