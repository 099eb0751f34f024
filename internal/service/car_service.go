package service

import (
	"context"
	"errors"

	apperrors "taxiservice/internal/errors"
	"taxiservice/internal/form"
	"taxiservice/internal/model"
	"taxiservice/internal/repository"
	"taxiservice/internal/search"
)

const invalidManufacturer = "Select a valid manufacturer."

// CarService handles car operations.
type CarService interface {
	List(ctx context.Context, modelQuery string) ([]model.Car, error)
	Get(ctx context.Context, id uint) (*model.Car, error)
	Create(ctx context.Context, f form.CarForm) (*model.Car, error)
	Update(ctx context.Context, id uint, f form.CarForm) (*model.Car, error)
	Delete(ctx context.Context, id uint) error
	ToggleAssign(ctx context.Context, carID, driverID uint) (assigned bool, err error)
}

type carService struct {
	repo             repository.CarRepository
	manufacturerRepo repository.ManufacturerRepository
	opts             search.Options
}

// NewCarService creates a new car service.
func NewCarService(repo repository.CarRepository, manufacturerRepo repository.ManufacturerRepository, opts search.Options) CarService {
	return &carService{repo: repo, manufacturerRepo: manufacturerRepo, opts: opts}
}

// List returns the cars whose model contains modelQuery, or all of them when it is empty.
func (s *carService) List(ctx context.Context, modelQuery string) ([]model.Car, error) {
	cars, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(cars, modelQuery, func(c model.Car) string { return c.Model }, s.opts), nil
}

func (s *carService) Get(ctx context.Context, id uint) (*model.Car, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *carService) Create(ctx context.Context, f form.CarForm) (*model.Car, error) {
	car := &model.Car{Model: f.Model, ManufacturerID: f.ManufacturerID}
	if err := s.prepare(ctx, car); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *carService) Update(ctx context.Context, id uint, f form.CarForm) (*model.Car, error) {
	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	car.Model = f.Model
	car.ManufacturerID = f.ManufacturerID
	if err := s.prepare(ctx, car); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

// prepare validates the car and resolves its manufacturer.
func (s *carService) prepare(ctx context.Context, car *model.Car) error {
	if err := car.Validate(); err != nil {
		return err
	}
	manufacturer, err := s.manufacturerRepo.FindByID(ctx, car.ManufacturerID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewValidationError(map[string]string{"manufacturer_id": invalidManufacturer})
	}
	if err != nil {
		return err
	}
	car.Manufacturer = *manufacturer
	return nil
}

func (s *carService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ToggleAssign assigns the driver to the car, or unassigns it when already assigned.
func (s *carService) ToggleAssign(ctx context.Context, carID, driverID uint) (bool, error) {
	if _, err := s.repo.FindByID(ctx, carID); err != nil {
		return false, err
	}
	assigned, err := s.repo.HasDriver(ctx, carID, driverID)
	if err != nil {
		return false, err
	}
	if assigned {
		return false, s.repo.RemoveDriver(ctx, carID, driverID)
	}
	return true, s.repo.AddDriver(ctx, carID, driverID)
}
