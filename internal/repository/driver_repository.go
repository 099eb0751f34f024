package repository

import (
	"context"

	"gorm.io/gorm"

	"taxiservice/internal/model"
)

// DriverRepository defines driver persistence operations.
type DriverRepository interface {
	Create(ctx context.Context, driver *model.Driver) error
	UpdateLicenseNumber(ctx context.Context, id uint, licenseNumber string) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Driver, error)
	FindByUsername(ctx context.Context, username string) (*model.Driver, error)
	FindByLicenseNumber(ctx context.Context, licenseNumber string) (*model.Driver, error)
	List(ctx context.Context) ([]model.Driver, error)
	Count(ctx context.Context) (int64, error)
}

type driverRepository struct {
	db *gorm.DB
}

// NewDriverRepository builds a GORM-backed repository.
func NewDriverRepository(db *gorm.DB) DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, driver *model.Driver) error {
	return translate(r.db.WithContext(ctx).Omit("Cars").Create(driver).Error, "create driver")
}

func (r *driverRepository) UpdateLicenseNumber(ctx context.Context, id uint, licenseNumber string) error {
	err := r.db.WithContext(ctx).Model(&model.Driver{ID: id}).
		Update("license_number", licenseNumber).Error
	return translate(err, "update driver license")
}

// Delete removes the driver and its car assignments.
func (r *driverRepository) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Select("Cars").Delete(&model.Driver{ID: id}).Error, "delete driver")
}

// FindByID loads the driver with its cars and their manufacturers.
func (r *driverRepository) FindByID(ctx context.Context, id uint) (*model.Driver, error) {
	var driver model.Driver
	if err := r.db.WithContext(ctx).Preload("Cars.Manufacturer").First(&driver, id).Error; err != nil {
		return nil, translate(err, "find driver")
	}
	return &driver, nil
}

func (r *driverRepository) FindByUsername(ctx context.Context, username string) (*model.Driver, error) {
	var driver model.Driver
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&driver).Error; err != nil {
		return nil, translate(err, "find driver by username")
	}
	return &driver, nil
}

func (r *driverRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*model.Driver, error) {
	var driver model.Driver
	if err := r.db.WithContext(ctx).Where("license_number = ?", licenseNumber).First(&driver).Error; err != nil {
		return nil, translate(err, "find driver by license")
	}
	return &driver, nil
}

// List returns all drivers in insertion order.
func (r *driverRepository) List(ctx context.Context) ([]model.Driver, error) {
	var drivers []model.Driver
	if err := r.db.WithContext(ctx).Order("id").Find(&drivers).Error; err != nil {
		return nil, translate(err, "list drivers")
	}
	return drivers, nil
}

func (r *driverRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Driver{}).Count(&n).Error
	return n, translate(err, "count drivers")
}
