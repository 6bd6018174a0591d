package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"moveit/internal/model"
	"moveit/internal/service"
)

// CarHandler handles car inventory endpoints.
type CarHandler struct {
	carService service.CarService
}

// NewCarHandler creates a new car handler.
func NewCarHandler(carService service.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

// CreateCarRequest represents a car creation request.
type CreateCarRequest struct {
	Name              string          `json:"name" validate:"required"`
	PlateNumber       string          `json:"plateNumber" validate:"required"`
	Status            model.CarStatus `json:"status" validate:"omitempty,oneof=AVAILABLE RENTED MAINTENANCE"`
	PricePerDay       decimal.Decimal `json:"pricePerDay"`
	PassengerCapacity int             `json:"passengerCapacity" validate:"required,min=1"`
	Description       string          `json:"description"`
	Images            []string        `json:"images"`
	Features          []string        `json:"features"`
	BrandID           uuid.UUID       `json:"brandId" validate:"required"`
}

// UpdateCarRequest represents a partial car update.
type UpdateCarRequest struct {
	Name              *string          `json:"name"`
	PlateNumber       *string          `json:"plateNumber"`
	Status            *model.CarStatus `json:"status" validate:"omitempty,oneof=AVAILABLE RENTED MAINTENANCE"`
	PricePerDay       *decimal.Decimal `json:"pricePerDay"`
	PassengerCapacity *int             `json:"passengerCapacity" validate:"omitempty,min=1"`
	Description       *string          `json:"description"`
	Images            []string         `json:"images"`
	Features          []string         `json:"features"`
	BrandID           *uuid.UUID       `json:"brandId"`
}

// CreateCar godoc
// @Summary Create a car
// @Tags cars
// @Accept json
// @Produce json
// @Param request body CreateCarRequest true "Car payload"
// @Success 201 {object} model.Car
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /cars/create [post]
func (h *CarHandler) CreateCar(c echo.Context) error {
	var req CreateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status := req.Status
	if status == "" {
		status = model.CarStatusAvailable
	}

	car, err := h.carService.CreateCar(c.Request().Context(), &model.Car{
		Name:              req.Name,
		PlateNumber:       req.PlateNumber,
		Status:            status,
		PricePerDay:       req.PricePerDay,
		PassengerCapacity: req.PassengerCapacity,
		Description:       req.Description,
		Images:            req.Images,
		Features:          req.Features,
		BrandID:           req.BrandID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, car)
}

// ListCars godoc
// @Summary List all cars with their brands
// @Tags cars
// @Produce json
// @Success 200 {array} model.Car
// @Router /cars [get]
func (h *CarHandler) ListCars(c echo.Context) error {
	cars, err := h.carService.ListCars(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cars)
}

// GetCar returns a car by ID, brand included.
func (h *CarHandler) GetCar(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid car id")
	}
	car, err := h.carService.GetCar(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, car)
}

// UpdateCar applies a partial update. Admin only.
func (h *CarHandler) UpdateCar(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid car id")
	}

	var req UpdateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	car, err := h.carService.UpdateCar(c.Request().Context(), id, service.CarUpdate{
		Name:              req.Name,
		PlateNumber:       req.PlateNumber,
		Status:            req.Status,
		PricePerDay:       req.PricePerDay,
		PassengerCapacity: req.PassengerCapacity,
		Description:       req.Description,
		Images:            req.Images,
		Features:          req.Features,
		BrandID:           req.BrandID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, car)
}

// DeleteCar removes a car by ID. Admin only.
func (h *CarHandler) DeleteCar(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid car id")
	}
	if err := h.carService.DeleteCar(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
