package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"taxiservice/internal/auth"
	"taxiservice/internal/cache"
	apperrors "taxiservice/internal/errors"
	"taxiservice/internal/form"
	"taxiservice/internal/model"
	"taxiservice/internal/repository"
	"taxiservice/internal/search"
)

const (
	driverCacheTTL     = 5 * time.Minute
	usernameTaken      = "A user with that username already exists."
	licenseNumberTaken = "Driver with this license number already exists."
	driverExists       = "Driver already exists."
)

// DriverService exposes driver operations.
type DriverService interface {
	List(ctx context.Context, username string) ([]model.Driver, error)
	Get(ctx context.Context, id uint) (*model.Driver, error)
	Current(ctx context.Context, id uint) (*model.Driver, error)
	Create(ctx context.Context, f form.DriverCreationForm) (*model.Driver, error)
	UpdateLicense(ctx context.Context, id uint, f form.LicenseUpdateForm) (*model.Driver, error)
	Delete(ctx context.Context, id uint) error
}

type driverService struct {
	repo   repository.DriverRepository
	cache  *cache.Client
	hasher *auth.PasswordHasher
	policy form.PasswordPolicy
	opts   search.Options
}

// NewDriverService builds a DriverService with repository and cache.
func NewDriverService(
	repo repository.DriverRepository,
	cache *cache.Client,
	hasher *auth.PasswordHasher,
	policy form.PasswordPolicy,
	opts search.Options,
) DriverService {
	return &driverService{repo: repo, cache: cache, hasher: hasher, policy: policy, opts: opts}
}

func driverCacheKey(id uint) string {
	return fmt.Sprintf("driver:%d", id)
}

// List returns the drivers whose username contains username, or all of them when it is empty.
func (s *driverService) List(ctx context.Context, username string) ([]model.Driver, error) {
	drivers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(drivers, username, func(d model.Driver) string { return d.Username }, s.opts), nil
}

// Get loads a driver with its cars.
func (s *driverService) Get(ctx context.Context, id uint) (*model.Driver, error) {
	return s.repo.FindByID(ctx, id)
}

// Current loads the session's driver without cars, served from cache when possible.
func (s *driverService) Current(ctx context.Context, id uint) (*model.Driver, error) {
	if data, _ := s.cache.Get(ctx, driverCacheKey(id)); data != nil {
		var cached model.Driver
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	driver, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	driver.Cars = nil

	if payload, err := json.Marshal(driver); err == nil {
		_ = s.cache.Set(ctx, driverCacheKey(id), payload, driverCacheTTL)
	}
	return driver, nil
}

// Create validates the signup form and persists the driver with a hashed password.
// Nothing is written when validation fails.
func (s *driverService) Create(ctx context.Context, f form.DriverCreationForm) (*model.Driver, error) {
	if err := f.Validate(s.policy); err != nil {
		return nil, err
	}

	taken := map[string]string{}
	if _, err := s.repo.FindByUsername(ctx, f.Username); err == nil {
		taken["username"] = usernameTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if _, err := s.repo.FindByLicenseNumber(ctx, f.LicenseNumber); err == nil {
		taken["license_number"] = licenseNumberTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("check license number: %w", err)
	}
	if len(taken) > 0 {
		return nil, apperrors.NewValidationError(taken)
	}

	driver := f.Cleaned().Driver()
	if err := driver.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(f.Password1)
	if err != nil {
		return nil, err
	}
	driver.PasswordHash = hash

	if err := s.repo.Create(ctx, &driver); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, s.duplicateError(ctx, driver)
		}
		return nil, err
	}
	return &driver, nil
}

// duplicateError names the unique field a concurrent signup already claimed.
func (s *driverService) duplicateError(ctx context.Context, driver model.Driver) error {
	taken := map[string]string{}
	if _, err := s.repo.FindByUsername(ctx, driver.Username); err == nil {
		taken["username"] = usernameTaken
	}
	if _, err := s.repo.FindByLicenseNumber(ctx, driver.LicenseNumber); err == nil {
		taken["license_number"] = licenseNumberTaken
	}
	if len(taken) == 0 {
		taken[apperrors.NonFieldErrors] = driverExists
	}
	return apperrors.NewValidationError(taken)
}

// UpdateLicense replaces the driver's license number.
func (s *driverService) UpdateLicense(ctx context.Context, id uint, f form.LicenseUpdateForm) (*model.Driver, error) {
	driver, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if f.LicenseNumber == driver.LicenseNumber {
		return driver, nil
	}

	other, err := s.repo.FindByLicenseNumber(ctx, f.LicenseNumber)
	if err == nil && other.ID != id {
		return nil, apperrors.NewValidationError(map[string]string{"license_number": licenseNumberTaken})
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("check license number: %w", err)
	}

	if err := s.repo.UpdateLicenseNumber(ctx, id, f.LicenseNumber); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, driverCacheKey(id))
	driver.LicenseNumber = f.LicenseNumber
	return driver, nil
}

func (s *driverService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, driverCacheKey(id))
	return nil
}
