package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "moveit/internal/errors"
	"moveit/internal/model"
	"moveit/internal/repository"
)

// BrandService exposes car brand operations.
type BrandService interface {
	CreateBrand(ctx context.Context, brand *model.CarBrand) (*model.CarBrand, error)
	GetBrand(ctx context.Context, id uuid.UUID) (*model.CarBrand, error)
	ListBrands(ctx context.Context) ([]model.CarBrand, error)
	UpdateBrand(ctx context.Context, id uuid.UUID, name, image *string) (*model.CarBrand, error)
	DeleteBrand(ctx context.Context, id uuid.UUID) error
}

type brandService struct {
	repo repository.BrandRepository
}

// NewBrandService builds a BrandService.
func NewBrandService(repo repository.BrandRepository) BrandService {
	return &brandService{repo: repo}
}

func (s *brandService) CreateBrand(ctx context.Context, brand *model.CarBrand) (*model.CarBrand, error) {
	if err := s.repo.Create(ctx, brand); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	return brand, nil
}

func (s *brandService) GetBrand(ctx context.Context, id uuid.UUID) (*model.CarBrand, error) {
	brand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrandNotFound
		}
		return nil, err
	}
	return brand, nil
}

func (s *brandService) ListBrands(ctx context.Context) ([]model.CarBrand, error) {
	return s.repo.List(ctx)
}

func (s *brandService) UpdateBrand(ctx context.Context, id uuid.UUID, name, image *string) (*model.CarBrand, error) {
	brand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrandNotFound
		}
		return nil, err
	}

	if name != nil {
		brand.Name = *name
	}
	if image != nil {
		brand.Image = *image
	}

	if err := s.repo.Update(ctx, brand); err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}
	return brand, nil
}

func (s *brandService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBrandNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
