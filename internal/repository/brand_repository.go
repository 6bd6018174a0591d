package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moveit/internal/model"
)

// BrandRepository defines car brand persistence operations.
type BrandRepository interface {
	Create(ctx context.Context, brand *model.CarBrand) error
	Update(ctx context.Context, brand *model.CarBrand) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CarBrand, error)
	List(ctx context.Context) ([]model.CarBrand, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository builds a GORM-backed repository.
func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, brand *model.CarBrand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *brandRepository) Update(ctx context.Context, brand *model.CarBrand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

func (r *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CarBrand, error) {
	var brand model.CarBrand
	if err := r.db.WithContext(ctx).Preload("Cars").Where("id = ?", id).First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) List(ctx context.Context) ([]model.CarBrand, error) {
	var brands []model.CarBrand
	if err := r.db.WithContext(ctx).Preload("Cars").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CarBrand{}, "id = ?", id).Error
}
