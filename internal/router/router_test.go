package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"moveit/internal/auth"
	"moveit/internal/config"
	apperrors "moveit/internal/errors"
	"moveit/internal/handler"
	"moveit/internal/model"
)

// newTestRouter wires the full route table with inert handlers; the tests
// below only exercise middleware, which runs before any handler.
func newTestRouter() (*echo.Echo, *auth.JWTService) {
	e := echo.New()
	cfg := config.Load()
	jwtService := auth.NewJWTService("test-secret")
	Register(
		e,
		cfg,
		jwtService,
		handler.NewAuthHandler(nil, cfg),
		handler.NewCarHandler(nil),
		handler.NewBrandHandler(nil),
		handler.NewBookingHandler(nil),
	)
	return e, jwtService
}

func doRequest(e *echo.Echo, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUserRoutesRequireToken(t *testing.T) {
	e, _ := newTestRouter()

	for _, path := range []string{"/api/auth/users", "/api/auth/users/some-id", "/api/auth/profile"} {
		rec := doRequest(e, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)

		var body apperrors.ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "Authentication required", body.Message)
	}
}

func TestAuthMiddleware_BadTokenMessage(t *testing.T) {
	e, _ := newTestRouter()

	rec := doRequest(e, http.MethodGet, "/api/auth/users", "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body apperrors.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid token", body.Message)
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	e, jwtService := newTestRouter()

	token, err := jwtService.IssueToken("user-1", model.RoleUser)
	assert.NoError(t, err)

	rec := doRequest(e, http.MethodDelete, "/api/cars/delete/some-id", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body apperrors.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Admin access required", body.Message)
}

func TestErrorHandler_RouteNotFound(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	errorHandler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body apperrors.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Route not found", body.Message)
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"car not found", apperrors.ErrCarNotFound, http.StatusNotFound, "car not found"},
		{"invalid dates", apperrors.ErrInvalidBookingDates, http.StatusBadRequest, "end date must be after start date"},
		{"http error passthrough", echo.NewHTTPError(http.StatusForbidden, "Admin access required"), http.StatusForbidden, "Admin access required"},
		{"unexpected error", assert.AnError, http.StatusInternalServerError, assert.AnError.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			errorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body apperrors.ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestCustomValidator(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}

	cv := &CustomValidator{validator: validator.New()}
	assert.NoError(t, cv.Validate(&payload{Email: "a@x.com"}))
	assert.Error(t, cv.Validate(&payload{Email: "not-an-email"}))
}
