package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"moveit/internal/config"
	"moveit/internal/model"
	"moveit/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string, profile service.Profile) (*model.User, string, error) {
	args := m.Called(ctx, email, password, profile)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) LoginAdmin(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockAuthService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, update service.ProfileUpdate) (*model.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("Register", mock.Anything, "a@x.com", "pw123456", service.Profile{
		FirstName:   "A",
		LastName:    "B",
		PhoneNumber: "555",
	}).Return(&model.User{
		ID:          uuid.New(),
		Email:       "a@x.com",
		Password:    "$2a$10$secretdigest",
		FirstName:   "A",
		LastName:    "B",
		PhoneNumber: "555",
		Role:        model.RoleUser,
	}, "signed.jwt.token", nil)

	h := NewAuthHandler(mockService, config.Load())

	body := `{"email":"a@x.com","password":"pw123456","firstName":"A","lastName":"B","phoneNumber":"555"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", body)

	assert.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		User  map[string]interface{} `json:"user"`
		Token string                 `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a@x.com", resp.User["email"])
	assert.NotEmpty(t, resp.Token)

	// The password digest must never appear in a response
	_, hasPassword := resp.User["password"]
	assert.False(t, hasPassword)
	assert.NotContains(t, rec.Body.String(), "secretdigest")
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("Register", mock.Anything, "a@x.com", "pw123456", mock.Anything).
		Return(nil, "", service.ErrUserAlreadyExists)

	h := NewAuthHandler(mockService, config.Load())

	body := `{"email":"a@x.com","password":"pw123456","firstName":"A","lastName":"B","phoneNumber":"555"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", body)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("Login", mock.Anything, "a@x.com", "wrong").
		Return(nil, "", service.ErrInvalidCredentials)

	h := NewAuthHandler(mockService, config.Load())

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"wrong"}`)

	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthHandler_LoginAdmin_SetsCookie(t *testing.T) {
	admin := &model.User{
		ID:    uuid.New(),
		Email: "admin@x.com",
		Role:  model.RoleAdmin,
	}
	mockService := new(MockAuthService)
	mockService.On("LoginAdmin", mock.Anything, "admin@x.com", "pw123456").
		Return(admin, "signed.jwt.token", nil)

	h := NewAuthHandler(mockService, config.Load())

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login/admin", `{"email":"admin@x.com","password":"pw123456"}`)

	assert.NoError(t, h.LoginAdmin(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	var tokenCookie *http.Cookie
	for _, ck := range cookies {
		if ck.Name == "token" {
			tokenCookie = ck
		}
	}
	assert.NotNil(t, tokenCookie)
	assert.Equal(t, "signed.jwt.token", tokenCookie.Value)
	assert.True(t, tokenCookie.HttpOnly)
	assert.Equal(t, http.SameSiteNoneMode, tokenCookie.SameSite)
	assert.Equal(t, 24*60*60, tokenCookie.MaxAge)
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(new(MockAuthService), config.Load())

	// missing password
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", `{"email":"a@x.com"}`)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
