package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"moveit/internal/model"
	"moveit/internal/service"
)

// BrandHandler handles car brand endpoints.
type BrandHandler struct {
	brandService service.BrandService
}

// NewBrandHandler creates a new brand handler.
func NewBrandHandler(brandService service.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// CreateBrandRequest represents a brand creation request.
type CreateBrandRequest struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
}

// UpdateBrandRequest represents a partial brand update.
type UpdateBrandRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

// CreateBrand godoc
// @Summary Create a car brand
// @Tags brands
// @Accept json
// @Produce json
// @Param request body CreateBrandRequest true "Brand payload"
// @Success 201 {object} model.CarBrand
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /brands/create [post]
func (h *BrandHandler) CreateBrand(c echo.Context) error {
	var req CreateBrandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	brand, err := h.brandService.CreateBrand(c.Request().Context(), &model.CarBrand{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, brand)
}

// ListBrands returns all brands with their cars.
func (h *BrandHandler) ListBrands(c echo.Context) error {
	brands, err := h.brandService.ListBrands(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brands)
}

// GetBrand returns a brand by ID, cars included.
func (h *BrandHandler) GetBrand(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid brand id")
	}
	brand, err := h.brandService.GetBrand(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brand)
}

// UpdateBrand applies a partial update. Admin only.
func (h *BrandHandler) UpdateBrand(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid brand id")
	}

	var req UpdateBrandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	brand, err := h.brandService.UpdateBrand(c.Request().Context(), id, req.Name, req.Image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brand)
}

// DeleteBrand removes a brand by ID. Admin only.
func (h *BrandHandler) DeleteBrand(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid brand id")
	}
	if err := h.brandService.DeleteBrand(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
