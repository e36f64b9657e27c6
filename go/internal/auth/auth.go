// Package auth holds the privilege checks run before restricted mutations.
package auth

import (
	"errors"

	"github.com/mcdev12/hockeyfed/go/internal/models"
)

// ErrForbidden matches every AuthorizationError.
var ErrForbidden = errors.New("forbidden")

// AuthorizationError is returned when the actor lacks admin rights.
type AuthorizationError struct {
	Action string
}

func (e *AuthorizationError) Error() string {
	return "only administrators can " + e.Action
}

func (e *AuthorizationError) Is(target error) bool { return target == ErrForbidden }

// RequireAdmin fails when actor is nil or not an administrator. action
// completes the message, e.g. "create announcements".
//
// The actor is trusted as supplied; callers across a trust boundary must
// resolve it from a verified session first.
func RequireAdmin(actor *models.PublicUser, action string) error {
	if actor == nil || !actor.IsAdmin {
		return &AuthorizationError{Action: action}
	}
	return nil
}
