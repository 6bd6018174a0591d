package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"moveit/internal/auth"
	"moveit/internal/config"
	apperrors "moveit/internal/errors"
	"moveit/internal/handler"
	"moveit/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	carHandler *handler.CarHandler,
	brandHandler *handler.BrandHandler,
	bookingHandler *handler.BookingHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/login/admin", authHandler.LoginAdmin)
	api.GET("/cars", carHandler.ListCars)
	api.GET("/cars/:id", carHandler.GetCar)
	api.GET("/brands", brandHandler.ListBrands)
	api.GET("/brands/:id", brandHandler.GetBrand)

	// Authenticated routes. The token is taken from the Authorization header
	// or, for the admin cookie flow, from the `token` cookie.
	authenticated := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:token",
		ContextKey:  "identity",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ResolveIdentity(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var extractionErr *echojwt.TokenExtractionError
			if errors.As(err, &extractionErr) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	}))

	authenticated.GET("/auth/profile", authHandler.GetProfile)
	authenticated.PUT("/auth/profile", authHandler.UpdateProfile)
	authenticated.GET("/auth/users", authHandler.ListUsers)
	authenticated.GET("/auth/users/:id", authHandler.GetUser)
	authenticated.POST("/bookings/create", bookingHandler.CreateBooking)
	authenticated.GET("/bookings/user/:userId", bookingHandler.GetUserBookings)

	// Admin routes
	authenticated.DELETE("/auth/users/:id", authHandler.DeleteUser, adminOnly)
	authenticated.GET("/bookings", bookingHandler.GetAllBookings, adminOnly)
	authenticated.POST("/cars/create", carHandler.CreateCar, adminOnly)
	authenticated.PUT("/cars/update/:id", carHandler.UpdateCar, adminOnly)
	authenticated.DELETE("/cars/delete/:id", carHandler.DeleteCar, adminOnly)
	authenticated.POST("/brands/create", brandHandler.CreateBrand, adminOnly)
	authenticated.PUT("/brands/update/:id", brandHandler.UpdateBrand, adminOnly)
	authenticated.DELETE("/brands/delete/:id", brandHandler.DeleteBrand, adminOnly)
}

// adminOnly short-circuits with 403 unless the resolved identity is an admin.
func adminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, _ := c.Get("identity").(*auth.Identity)
		if err := auth.RequireRole(identity, model.RoleAdmin); err != nil {
			return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
		}
		return next(c)
	}
}

// errorHandler maps every error crossing the handler boundary to a JSON body
// of the form {success:false, message}.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	switch e := err.(type) {
	case *echo.HTTPError:
		status = e.Code
		switch m := e.Message.(type) {
		case string:
			message = m
		case error:
			message = m.Error()
		}
		if err == echo.ErrNotFound {
			message = "Route not found"
		}
	default:
		httpErr := apperrors.MapErrorToHTTP(err)
		status = httpErr.StatusCode
		message = httpErr.Message
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, apperrors.ErrorResponse{Success: false, Message: message})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
