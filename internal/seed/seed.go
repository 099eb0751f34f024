package seed

import (
	"context"
	"errors"
	"fmt"

	"taxiservice/internal/auth"
	apperrors "taxiservice/internal/errors"
	"taxiservice/internal/logger"
	"taxiservice/internal/model"
	"taxiservice/internal/repository"
)

// Result counts what a seed run changed.
type Result struct {
	Created int
	Updated int
}

// Seeder writes fixtures through the repositories, creating records that are
// missing and updating existing ones matched by natural key.
type Seeder struct {
	manufacturers repository.ManufacturerRepository
	cars          repository.CarRepository
	drivers       repository.DriverRepository
	hasher        *auth.PasswordHasher
	log           logger.ILogger
}

// NewSeeder creates a seeder.
func NewSeeder(
	manufacturers repository.ManufacturerRepository,
	cars repository.CarRepository,
	drivers repository.DriverRepository,
	hasher *auth.PasswordHasher,
	log logger.ILogger,
) *Seeder {
	return &Seeder{manufacturers: manufacturers, cars: cars, drivers: drivers, hasher: hasher, log: log}
}

// Run seeds manufacturers first, then drivers, then cars with their assignments.
func (s *Seeder) Run(ctx context.Context, f *Fixture) (Result, error) {
	var res Result

	byName, err := s.seedManufacturers(ctx, f.Manufacturers, &res)
	if err != nil {
		return res, err
	}
	byUsername, err := s.seedDrivers(ctx, f.Drivers, &res)
	if err != nil {
		return res, err
	}
	if err := s.seedCars(ctx, f.Cars, byName, byUsername, &res); err != nil {
		return res, err
	}
	return res, nil
}

func (s *Seeder) seedManufacturers(ctx context.Context, items []ManufacturerData, res *Result) (map[string]*model.Manufacturer, error) {
	existing, err := s.manufacturers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list manufacturers: %w", err)
	}
	byName := make(map[string]*model.Manufacturer, len(existing)+len(items))
	for i := range existing {
		byName[existing[i].Name] = &existing[i]
	}

	for _, item := range items {
		m, ok := byName[item.Name]
		if ok {
			if m.Country == item.Country {
				continue
			}
			m.Country = item.Country
			if err := s.manufacturers.Update(ctx, m); err != nil {
				return nil, fmt.Errorf("error updating manufacturer %s: %w", item.Name, err)
			}
			res.Updated++
			continue
		}

		m = &model.Manufacturer{Name: item.Name, Country: item.Country}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("manufacturer %q: %w", item.Name, err)
		}
		if err := s.manufacturers.Create(ctx, m); err != nil {
			return nil, fmt.Errorf("error creating manufacturer %s: %w", item.Name, err)
		}
		byName[m.Name] = m
		res.Created++
	}
	return byName, nil
}

func (s *Seeder) seedDrivers(ctx context.Context, items []DriverData, res *Result) (map[string]uint, error) {
	byUsername := make(map[string]uint, len(items))
	for _, item := range items {
		d, err := s.drivers.FindByUsername(ctx, item.Username)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("error checking driver %s: %w", item.Username, err)
		}

		if d != nil {
			byUsername[d.Username] = d.ID
			if item.LicenseNumber == "" || d.LicenseNumber == item.LicenseNumber {
				continue
			}
			if err := model.ValidateLicenseNumber(item.LicenseNumber); err != nil {
				return nil, fmt.Errorf("driver %q: %w", item.Username, err)
			}
			if err := s.drivers.UpdateLicenseNumber(ctx, d.ID, item.LicenseNumber); err != nil {
				return nil, fmt.Errorf("error updating driver %s: %w", item.Username, err)
			}
			res.Updated++
			continue
		}

		driver := model.Driver{
			Username:      item.Username,
			FirstName:     item.FirstName,
			LastName:      item.LastName,
			LicenseNumber: item.LicenseNumber,
		}
		if err := driver.Validate(); err != nil {
			return nil, fmt.Errorf("driver %q: %w", item.Username, err)
		}
		if item.Password == "" {
			return nil, fmt.Errorf("driver %q: password is required", item.Username)
		}
		if driver.PasswordHash, err = s.hasher.Hash(item.Password); err != nil {
			return nil, err
		}
		if err := s.drivers.Create(ctx, &driver); err != nil {
			return nil, fmt.Errorf("error creating driver %s: %w", item.Username, err)
		}
		byUsername[driver.Username] = driver.ID
		res.Created++
	}
	return byUsername, nil
}

func (s *Seeder) seedCars(
	ctx context.Context,
	items []CarData,
	manufacturers map[string]*model.Manufacturer,
	drivers map[string]uint,
	res *Result,
) error {
	existing, err := s.cars.List(ctx)
	if err != nil {
		return fmt.Errorf("list cars: %w", err)
	}
	type key struct {
		model          string
		manufacturerID uint
	}
	cars := make(map[key]uint, len(existing))
	for _, c := range existing {
		cars[key{c.Model, c.ManufacturerID}] = c.ID
	}

	for _, item := range items {
		m, ok := manufacturers[item.Manufacturer]
		if !ok {
			return fmt.Errorf("car %q: unknown manufacturer %q", item.Model, item.Manufacturer)
		}

		k := key{item.Model, m.ID}
		carID, ok := cars[k]
		if !ok {
			car := &model.Car{Model: item.Model, ManufacturerID: m.ID}
			if err := car.Validate(); err != nil {
				return fmt.Errorf("car %q: %w", item.Model, err)
			}
			if err := s.cars.Create(ctx, car); err != nil {
				return fmt.Errorf("error creating car %s: %w", item.Model, err)
			}
			carID = car.ID
			cars[k] = carID
			res.Created++
		}

		for _, username := range item.Drivers {
			driverID, ok := drivers[username]
			if !ok {
				d, err := s.drivers.FindByUsername(ctx, username)
				if err != nil {
					return fmt.Errorf("car %q: driver %q: %w", item.Model, username, err)
				}
				driverID = d.ID
			}
			assigned, err := s.cars.HasDriver(ctx, carID, driverID)
			if err != nil {
				return err
			}
			if assigned {
				continue
			}
			if err := s.cars.AddDriver(ctx, carID, driverID); err != nil {
				return fmt.Errorf("assign %s to %s: %w", username, item.Model, err)
			}
			s.log.Debug("driver assigned", logger.String("car", item.Model), logger.String("driver", username))
		}
	}
	return nil
}
