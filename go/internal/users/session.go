package users

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/hockeyfed/go/internal/kvstore"
	"github.com/mcdev12/hockeyfed/go/internal/models"
)

// SessionKey is the store key holding the signed-in user
const SessionKey = "current_user"

// SessionStore persists the single signed-in user
type SessionStore struct {
	store kvstore.Store
}

func NewSessionStore(store kvstore.Store) *SessionStore {
	return &SessionStore{store: store}
}

// Current returns the signed-in user, nil when there is none or the
// session cannot be read.
func (s *SessionStore) Current(ctx context.Context) *models.PublicUser {
	var user models.PublicUser
	found, err := s.store.Get(ctx, SessionKey, &user)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read session")
		return nil
	}
	if !found {
		return nil
	}
	return &user
}

func (s *SessionStore) Begin(ctx context.Context, user models.PublicUser) error {
	if err := s.store.Set(ctx, SessionKey, user); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *SessionStore) End(ctx context.Context) error {
	if err := s.store.Remove(ctx, SessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
