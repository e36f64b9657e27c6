package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcdev12/hockeyfed/go/internal/models"
)

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name    string
		actor   *models.PublicUser
		allowed bool
	}{
		{"no actor", nil, false},
		{"regular user", &models.PublicUser{Username: "jane"}, false},
		{"admin", &models.PublicUser{Username: "admin123", IsAdmin: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireAdmin(tt.actor, "create announcements")
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrForbidden)
			var authErr *AuthorizationError
			assert.True(t, errors.As(err, &authErr))
			assert.Equal(t, "only administrators can create announcements", err.Error())
		})
	}
}
