package auth

import (
	"errors"

	"moveit/internal/model"
)

// ErrForbidden is returned when the identity lacks the required role.
var ErrForbidden = errors.New("insufficient role")

// RequireRole denies unless the identity carries exactly the required role.
// Pure decision; identity resolution is the caller's job.
func RequireRole(identity *Identity, role model.Role) error {
	if identity == nil || identity.Role != role {
		return ErrForbidden
	}
	return nil
}
