package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"moveit/internal/service"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest represents a booking creation request. The rental
// length and total price are derived server-side from the car's price.
type CreateBookingRequest struct {
	StartDate      time.Time `json:"startDate" validate:"required"`
	EndDate        time.Time `json:"endDate" validate:"required"`
	CarID          uuid.UUID `json:"carId" validate:"required"`
	TransactionRef string    `json:"transactionRef"`
}

// CreateBooking godoc
// @Summary Create a booking for the authenticated user
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "Booking payload"
// @Success 201 {object} model.Booking
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /bookings/create [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	identity, err := identityFromContext(c)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(identity.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookingService.CreateBooking(c.Request().Context(), service.CreateBookingInput{
		CarID:          req.CarID,
		UserID:         userID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		TransactionRef: req.TransactionRef,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, booking)
}

// GetUserBookings returns a user's bookings with their cars. A user with no
// bookings gets an empty array.
func (h *BookingHandler) GetUserBookings(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	bookings, err := h.bookingService.GetUserBookings(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// GetAllBookings returns every booking with car and user. Admin only.
func (h *BookingHandler) GetAllBookings(c echo.Context) error {
	bookings, err := h.bookingService.GetAllBookings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}
