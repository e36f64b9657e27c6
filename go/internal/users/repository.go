package users

import (
	"context"
	"fmt"

	"github.com/mcdev12/hockeyfed/go/internal/collection"
	"github.com/mcdev12/hockeyfed/go/internal/models"
)

// Collection defines what the repository needs from the storage layer
type Collection interface {
	List(ctx context.Context) []models.User
	Create(ctx context.Context, user models.User, guards ...collection.Guard[models.User]) (models.User, error)
	Remove(ctx context.Context, id string) error
}

// Repository implements user data access operations
type Repository struct {
	users Collection
}

// NewRepository creates a new users repository
func NewRepository(users Collection) *Repository {
	return &Repository{
		users: users,
	}
}

// CreateUser stores a new user. The username check and the write happen in
// one read-modify-write cycle.
func (r *Repository) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	created, err := r.users.Create(ctx, user, func(existing []models.User) error {
		for _, u := range existing {
			if u.Username == user.Username {
				return ErrDuplicateUsername
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &created, nil
}

// GetUserByUsername retrieves a user by exact username, nil when absent
func (r *Repository) GetUserByUsername(ctx context.Context, username string) *models.User {
	for _, u := range r.users.List(ctx) {
		if u.Username == username {
			return &u
		}
	}
	return nil
}

// ListUsers retrieves all users including their password hashes
func (r *Repository) ListUsers(ctx context.Context) []models.User {
	return r.users.List(ctx)
}

// DeleteUser deletes a user by ID
func (r *Repository) DeleteUser(ctx context.Context, id string) error {
	if err := r.users.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
