package service

import (
	"context"
	"fmt"

	"taxiservice/internal/cache"
	"taxiservice/internal/repository"
)

// Overview is what the index page shows.
type Overview struct {
	NumDrivers       int64 `json:"num_drivers"`
	NumCars          int64 `json:"num_cars"`
	NumManufacturers int64 `json:"num_manufacturers"`
	NumVisits        int64 `json:"num_visits"`
}

// StatsService aggregates fleet counts.
type StatsService interface {
	Overview(ctx context.Context, driverID uint) (*Overview, error)
}

type statsService struct {
	drivers       repository.DriverRepository
	cars          repository.CarRepository
	manufacturers repository.ManufacturerRepository
	cache         *cache.Client
}

// NewStatsService creates a new stats service.
func NewStatsService(
	drivers repository.DriverRepository,
	cars repository.CarRepository,
	manufacturers repository.ManufacturerRepository,
	cache *cache.Client,
) StatsService {
	return &statsService{drivers: drivers, cars: cars, manufacturers: manufacturers, cache: cache}
}

// Overview counts entities and records one more index visit for the driver.
// Visits stay at zero when redis is unavailable.
func (s *statsService) Overview(ctx context.Context, driverID uint) (*Overview, error) {
	var (
		o   Overview
		err error
	)
	if o.NumDrivers, err = s.drivers.Count(ctx); err != nil {
		return nil, err
	}
	if o.NumCars, err = s.cars.Count(ctx); err != nil {
		return nil, err
	}
	if o.NumManufacturers, err = s.manufacturers.Count(ctx); err != nil {
		return nil, err
	}
	o.NumVisits, _ = s.cache.Incr(ctx, fmt.Sprintf("visits:%d", driverID))
	return &o, nil
}
