package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"moveit/internal/cache"
	apperrors "moveit/internal/errors"
	"moveit/internal/model"
	"moveit/internal/repository"
)

const carCacheTTL = 5 * time.Minute

// CarUpdate is a partial car change; nil fields are left unchanged.
type CarUpdate struct {
	Name              *string
	PlateNumber       *string
	Status            *model.CarStatus
	PricePerDay       *decimal.Decimal
	PassengerCapacity *int
	Description       *string
	Images            []string
	Features          []string
	BrandID           *uuid.UUID
}

// CarService exposes car inventory operations.
type CarService interface {
	CreateCar(ctx context.Context, car *model.Car) (*model.Car, error)
	GetCar(ctx context.Context, id uuid.UUID) (*model.Car, error)
	ListCars(ctx context.Context) ([]model.Car, error)
	UpdateCar(ctx context.Context, id uuid.UUID, update CarUpdate) (*model.Car, error)
	DeleteCar(ctx context.Context, id uuid.UUID) error
}

type carService struct {
	repo  repository.CarRepository
	cache *cache.Client
}

// NewCarService builds a CarService with repository and cache.
func NewCarService(repo repository.CarRepository, cache *cache.Client) CarService {
	return &carService{repo: repo, cache: cache}
}

func (s *carService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("car:%s", id)
}

func (s *carService) CreateCar(ctx context.Context, car *model.Car) (*model.Car, error) {
	if car.PricePerDay.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrInvalidPrice
	}
	if err := s.repo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}
	return car, nil
}

func (s *carService) GetCar(ctx context.Context, id uuid.UUID) (*model.Car, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Car
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCarNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(car); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, carCacheTTL)
	}
	return car, nil
}

func (s *carService) ListCars(ctx context.Context) ([]model.Car, error) {
	return s.repo.List(ctx)
}

func (s *carService) UpdateCar(ctx context.Context, id uuid.UUID, update CarUpdate) (*model.Car, error) {
	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCarNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		car.Name = *update.Name
	}
	if update.PlateNumber != nil {
		car.PlateNumber = *update.PlateNumber
	}
	if update.Status != nil {
		car.Status = *update.Status
	}
	if update.PricePerDay != nil {
		if update.PricePerDay.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.ErrInvalidPrice
		}
		car.PricePerDay = *update.PricePerDay
	}
	if update.PassengerCapacity != nil {
		car.PassengerCapacity = *update.PassengerCapacity
	}
	if update.Description != nil {
		car.Description = *update.Description
	}
	if update.Images != nil {
		car.Images = update.Images
	}
	if update.Features != nil {
		car.Features = update.Features
	}
	if update.BrandID != nil {
		car.BrandID = *update.BrandID
	}

	if err := s.repo.Update(ctx, car); err != nil {
		return nil, fmt.Errorf("update car: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return car, nil
}

func (s *carService) DeleteCar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCarNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
