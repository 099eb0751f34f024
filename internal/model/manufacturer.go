package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"taxiservice/internal/errors"
)

// Manufacturer is a car maker. Cars reference it without owning it.
type Manufacturer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	Country   string    `json:"country" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m Manufacturer) String() string {
	return m.Name + " " + m.Country
}

// Validate checks field constraints before persistence.
func (m Manufacturer) Validate() error {
	return errors.FieldErrors(validation.ValidateStruct(&m,
		validation.Field(&m.Name, Required, validation.RuneLength(1, 255)),
		validation.Field(&m.Country, validation.RuneLength(0, 255)),
	))
}
