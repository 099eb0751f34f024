package repository

import (
	"context"

	"gorm.io/gorm"

	"taxiservice/internal/model"
)

// ManufacturerRepository defines manufacturer persistence operations.
type ManufacturerRepository interface {
	Create(ctx context.Context, manufacturer *model.Manufacturer) error
	Update(ctx context.Context, manufacturer *model.Manufacturer) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Manufacturer, error)
	List(ctx context.Context) ([]model.Manufacturer, error)
	Count(ctx context.Context) (int64, error)
}

type manufacturerRepository struct {
	db *gorm.DB
}

// NewManufacturerRepository creates a new manufacturer repository.
func NewManufacturerRepository(db *gorm.DB) ManufacturerRepository {
	return &manufacturerRepository{db: db}
}

func (r *manufacturerRepository) Create(ctx context.Context, manufacturer *model.Manufacturer) error {
	return translate(r.db.WithContext(ctx).Create(manufacturer).Error, "create manufacturer")
}

func (r *manufacturerRepository) Update(ctx context.Context, manufacturer *model.Manufacturer) error {
	return translate(r.db.WithContext(ctx).Save(manufacturer).Error, "update manufacturer")
}

func (r *manufacturerRepository) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Delete(&model.Manufacturer{}, id).Error, "delete manufacturer")
}

func (r *manufacturerRepository) FindByID(ctx context.Context, id uint) (*model.Manufacturer, error) {
	var manufacturer model.Manufacturer
	if err := r.db.WithContext(ctx).First(&manufacturer, id).Error; err != nil {
		return nil, translate(err, "find manufacturer")
	}
	return &manufacturer, nil
}

// List returns all manufacturers in insertion order.
func (r *manufacturerRepository) List(ctx context.Context) ([]model.Manufacturer, error) {
	var manufacturers []model.Manufacturer
	if err := r.db.WithContext(ctx).Order("id").Find(&manufacturers).Error; err != nil {
		return nil, translate(err, "list manufacturers")
	}
	return manufacturers, nil
}

func (r *manufacturerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Manufacturer{}).Count(&n).Error
	return n, translate(err, "count manufacturers")
}
