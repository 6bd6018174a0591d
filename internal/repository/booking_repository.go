package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moveit/internal/model"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error)
	List(ctx context.Context) ([]model.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository builds a GORM-backed repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	bookings := []model.Booking{}
	if err := r.db.WithContext(ctx).Preload("Car").Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	bookings := []model.Booking{}
	if err := r.db.WithContext(ctx).Preload("Car").Preload("User").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
