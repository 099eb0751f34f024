package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"taxiservice/internal/errors"
)

// Car is a fleet vehicle of one manufacturer, driven by any number of drivers.
type Car struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	Model          string       `json:"model" gorm:"size:255;not null;index"`
	ManufacturerID uint         `json:"manufacturer_id" gorm:"not null;index"`
	Manufacturer   Manufacturer `json:"manufacturer" gorm:"foreignKey:ManufacturerID"`
	Drivers        []Driver     `json:"drivers,omitempty" gorm:"many2many:car_drivers;"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (c Car) String() string {
	return c.Model
}

// Validate checks field constraints before persistence.
func (c Car) Validate() error {
	return errors.FieldErrors(validation.ValidateStruct(&c,
		validation.Field(&c.Model, Required, validation.RuneLength(1, 255)),
		validation.Field(&c.ManufacturerID, Required),
	))
}

// HasDriver reports whether the driver with id is assigned to the car.
// Drivers must be preloaded.
func (c Car) HasDriver(id uint) bool {
	for _, d := range c.Drivers {
		if d.ID == id {
			return true
		}
	}
	return false
}
