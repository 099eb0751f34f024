package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"taxiservice/internal/errors"
)

// Driver is an authenticated identity that drives fleet cars.
type Driver struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Username      string    `json:"username" gorm:"uniqueIndex;size:150;not null"`
	PasswordHash  string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName     string    `json:"first_name" gorm:"size:150"`
	LastName      string    `json:"last_name" gorm:"size:150"`
	LicenseNumber string    `json:"license_number" gorm:"uniqueIndex;size:255;not null"`
	Cars          []Car     `json:"cars,omitempty" gorm:"many2many:car_drivers;"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (d Driver) String() string {
	return d.Username + " (" + d.FirstName + " " + d.LastName + ")"
}

// Validate runs the full validation pass required before a driver is persisted.
func (d Driver) Validate() error {
	return errors.FieldErrors(validation.ValidateStruct(&d,
		validation.Field(&d.Username, Required, validation.RuneLength(1, 150)),
		validation.Field(&d.FirstName, validation.RuneLength(0, 150)),
		validation.Field(&d.LastName, validation.RuneLength(0, 150)),
		validation.Field(&d.LicenseNumber, Required, LicenseNumberRule),
	))
}
