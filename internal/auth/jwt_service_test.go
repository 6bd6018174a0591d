package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	"moveit/internal/model"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.IssueToken("user-42", model.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)

	identity, err := svc.ResolveIdentity(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-42", identity.UserID)
	assert.Equal(t, model.RoleAdmin, identity.Role)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService("test-secret")

	// Token signed with the right key but already past expiry.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "user-42",
		Role:   model.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTService_InvalidSignature(t *testing.T) {
	issuer := NewJWTService("one-secret")
	verifier := NewJWTService("another-secret")

	token, err := issuer.IssueToken("user-42", model.RoleUser)
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestJWTService_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrTokenMalformed)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		identity *Identity
		role     model.Role
		allowed  bool
	}{
		{"admin accessing admin", &Identity{UserID: "u1", Role: model.RoleAdmin}, model.RoleAdmin, true},
		{"user accessing admin", &Identity{UserID: "u2", Role: model.RoleUser}, model.RoleAdmin, false},
		{"user accessing user", &Identity{UserID: "u3", Role: model.RoleUser}, model.RoleUser, true},
		{"nil identity", nil, model.RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireRole(tt.identity, tt.role)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrForbidden)
			}
		})
	}
}
