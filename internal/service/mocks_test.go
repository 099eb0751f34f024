package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"taxiservice/internal/model"
)

// MockManufacturerRepository is a mock implementation of ManufacturerRepository.
type MockManufacturerRepository struct {
	mock.Mock
}

func (m *MockManufacturerRepository) Create(ctx context.Context, manufacturer *model.Manufacturer) error {
	args := m.Called(ctx, manufacturer)
	return args.Error(0)
}

func (m *MockManufacturerRepository) Update(ctx context.Context, manufacturer *model.Manufacturer) error {
	args := m.Called(ctx, manufacturer)
	return args.Error(0)
}

func (m *MockManufacturerRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockManufacturerRepository) FindByID(ctx context.Context, id uint) (*model.Manufacturer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Manufacturer), args.Error(1)
}

func (m *MockManufacturerRepository) List(ctx context.Context) ([]model.Manufacturer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Manufacturer), args.Error(1)
}

func (m *MockManufacturerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCarRepository is a mock implementation of CarRepository.
type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) Create(ctx context.Context, car *model.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepository) Update(ctx context.Context, car *model.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCarRepository) FindByID(ctx context.Context, id uint) (*model.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Car), args.Error(1)
}

func (m *MockCarRepository) List(ctx context.Context) ([]model.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Car), args.Error(1)
}

func (m *MockCarRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarRepository) CountByManufacturer(ctx context.Context, manufacturerID uint) (int64, error) {
	args := m.Called(ctx, manufacturerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarRepository) AddDriver(ctx context.Context, carID, driverID uint) error {
	args := m.Called(ctx, carID, driverID)
	return args.Error(0)
}

func (m *MockCarRepository) RemoveDriver(ctx context.Context, carID, driverID uint) error {
	args := m.Called(ctx, carID, driverID)
	return args.Error(0)
}

func (m *MockCarRepository) HasDriver(ctx context.Context, carID, driverID uint) (bool, error) {
	args := m.Called(ctx, carID, driverID)
	return args.Bool(0), args.Error(1)
}

// MockDriverRepository is a mock implementation of DriverRepository.
type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Create(ctx context.Context, driver *model.Driver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}

func (m *MockDriverRepository) UpdateLicenseNumber(ctx context.Context, id uint, licenseNumber string) error {
	args := m.Called(ctx, id, licenseNumber)
	return args.Error(0)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDriverRepository) FindByID(ctx context.Context, id uint) (*model.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Driver), args.Error(1)
}

func (m *MockDriverRepository) FindByUsername(ctx context.Context, username string) (*model.Driver, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Driver), args.Error(1)
}

func (m *MockDriverRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*model.Driver, error) {
	args := m.Called(ctx, licenseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Driver), args.Error(1)
}

func (m *MockDriverRepository) List(ctx context.Context) ([]model.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Driver), args.Error(1)
}

func (m *MockDriverRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
