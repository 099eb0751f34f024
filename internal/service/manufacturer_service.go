package service

import (
	"context"
	"fmt"

	apperrors "taxiservice/internal/errors"
	"taxiservice/internal/form"
	"taxiservice/internal/model"
	"taxiservice/internal/repository"
	"taxiservice/internal/search"
)

// ManufacturerService handles manufacturer operations.
type ManufacturerService interface {
	List(ctx context.Context, name string) ([]model.Manufacturer, error)
	Get(ctx context.Context, id uint) (*model.Manufacturer, error)
	Create(ctx context.Context, f form.ManufacturerForm) (*model.Manufacturer, error)
	Update(ctx context.Context, id uint, f form.ManufacturerForm) (*model.Manufacturer, error)
	Delete(ctx context.Context, id uint) error
}

type manufacturerService struct {
	repo    repository.ManufacturerRepository
	carRepo repository.CarRepository
	opts    search.Options
}

// NewManufacturerService creates a new manufacturer service.
func NewManufacturerService(repo repository.ManufacturerRepository, carRepo repository.CarRepository, opts search.Options) ManufacturerService {
	return &manufacturerService{repo: repo, carRepo: carRepo, opts: opts}
}

// List returns the manufacturers whose name contains name, or all of them when name is empty.
func (s *manufacturerService) List(ctx context.Context, name string) ([]model.Manufacturer, error) {
	manufacturers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(manufacturers, name, func(m model.Manufacturer) string { return m.Name }, s.opts), nil
}

func (s *manufacturerService) Get(ctx context.Context, id uint) (*model.Manufacturer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *manufacturerService) Create(ctx context.Context, f form.ManufacturerForm) (*model.Manufacturer, error) {
	manufacturer := &model.Manufacturer{Name: f.Name, Country: f.Country}
	if err := manufacturer.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, manufacturer); err != nil {
		return nil, err
	}
	return manufacturer, nil
}

func (s *manufacturerService) Update(ctx context.Context, id uint, f form.ManufacturerForm) (*model.Manufacturer, error) {
	manufacturer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	manufacturer.Name = f.Name
	manufacturer.Country = f.Country
	if err := manufacturer.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, manufacturer); err != nil {
		return nil, err
	}
	return manufacturer, nil
}

// Delete removes a manufacturer that no car references.
func (s *manufacturerService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := s.carRepo.CountByManufacturer(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("delete manufacturer %d: %w", id, apperrors.ErrManufacturerInUse)
	}
	return s.repo.Delete(ctx, id)
}
