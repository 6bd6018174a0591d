package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "moveit/internal/errors"
	"moveit/internal/model"
	"moveit/internal/repository"
)

// BookingService handles booking creation and retrieval.
type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*model.Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]model.Booking, error)
	GetAllBookings(ctx context.Context) ([]model.Booking, error)
}

// CreateBookingInput carries the caller-supplied booking fields.
type CreateBookingInput struct {
	CarID          uuid.UUID
	UserID         uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	TransactionRef string
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(bookingRepo repository.BookingRepository, carRepo repository.CarRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
	}
}

// CreateBooking verifies the referenced car exists, derives the rental length
// and total amount from the car's price, and persists the booking. The number
// of days and the total are always recomputed here, never trusted from the
// caller. Overlap with existing bookings for the same car is not checked.
func (s *bookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*model.Booking, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, apperrors.ErrInvalidBookingDates
	}

	car, err := s.carRepo.FindByID(ctx, input.CarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCarNotFound
		}
		return nil, fmt.Errorf("find car: %w", err)
	}

	days := numberOfDays(input.StartDate, input.EndDate)
	total := car.PricePerDay.Mul(decimal.NewFromInt(int64(days)))

	booking := &model.Booking{
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		NumberOfDays:   days,
		TotalAmount:    total,
		TransactionRef: input.TransactionRef,
		UserID:         input.UserID,
		CarID:          input.CarID,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	return booking, nil
}

// GetUserBookings returns the user's bookings with their cars. A user with no
// bookings gets an empty slice, not an error.
func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	return bookings, nil
}

// GetAllBookings returns every booking joined with car and user.
func (s *bookingService) GetAllBookings(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// numberOfDays counts calendar days between start and end, rounding partial
// days up. A rental returned the day after pickup is one day.
func numberOfDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	if end.Sub(start)%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}
