package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taxiservice/internal/model"
)

const carDriversTable = "car_drivers"

// CarRepository defines car persistence operations.
type CarRepository interface {
	Create(ctx context.Context, car *model.Car) error
	Update(ctx context.Context, car *model.Car) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Car, error)
	List(ctx context.Context) ([]model.Car, error)
	Count(ctx context.Context) (int64, error)
	CountByManufacturer(ctx context.Context, manufacturerID uint) (int64, error)
	AddDriver(ctx context.Context, carID, driverID uint) error
	RemoveDriver(ctx context.Context, carID, driverID uint) error
	HasDriver(ctx context.Context, carID, driverID uint) (bool, error)
}

type carRepository struct {
	db *gorm.DB
}

// NewCarRepository creates a new car repository.
func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *model.Car) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(car).Error, "create car")
}

func (r *carRepository) Update(ctx context.Context, car *model.Car) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(car).Error, "update car")
}

// Delete removes the car and its driver assignments.
func (r *carRepository) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Select("Drivers").Delete(&model.Car{ID: id}).Error, "delete car")
}

// FindByID loads the car with its manufacturer and drivers.
func (r *carRepository) FindByID(ctx context.Context, id uint) (*model.Car, error) {
	var car model.Car
	err := r.db.WithContext(ctx).
		Preload("Manufacturer").
		Preload("Drivers", func(db *gorm.DB) *gorm.DB { return db.Order("drivers.id") }).
		First(&car, id).Error
	if err != nil {
		return nil, translate(err, "find car")
	}
	return &car, nil
}

// List returns all cars with their manufacturers in insertion order.
func (r *carRepository) List(ctx context.Context) ([]model.Car, error) {
	var cars []model.Car
	if err := r.db.WithContext(ctx).Preload("Manufacturer").Order("id").Find(&cars).Error; err != nil {
		return nil, translate(err, "list cars")
	}
	return cars, nil
}

func (r *carRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Car{}).Count(&n).Error
	return n, translate(err, "count cars")
}

func (r *carRepository) CountByManufacturer(ctx context.Context, manufacturerID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Car{}).
		Where("manufacturer_id = ?", manufacturerID).Count(&n).Error
	return n, translate(err, "count cars by manufacturer")
}

func (r *carRepository) AddDriver(ctx context.Context, carID, driverID uint) error {
	err := r.db.WithContext(ctx).Table(carDriversTable).Create(map[string]interface{}{
		"car_id":    carID,
		"driver_id": driverID,
	}).Error
	return translate(err, "assign driver")
}

func (r *carRepository) RemoveDriver(ctx context.Context, carID, driverID uint) error {
	err := r.db.WithContext(ctx).
		Exec("DELETE FROM "+carDriversTable+" WHERE car_id = ? AND driver_id = ?", carID, driverID).Error
	return translate(err, "unassign driver")
}

func (r *carRepository) HasDriver(ctx context.Context, carID, driverID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Table(carDriversTable).
		Where("car_id = ? AND driver_id = ?", carID, driverID).Count(&n).Error
	if err != nil {
		return false, translate(err, "check driver assignment")
	}
	return n > 0, nil
}
