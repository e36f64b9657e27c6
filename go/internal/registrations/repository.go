package registrations

import (
	"context"
	"fmt"

	"github.com/mcdev12/hockeyfed/go/internal/collection"
	"github.com/mcdev12/hockeyfed/go/internal/models"
)

// Collection defines what the repository needs from the storage layer
type Collection interface {
	List(ctx context.Context) []models.EventRegistration
	Get(ctx context.Context, id string) (models.EventRegistration, error)
	Create(ctx context.Context, reg models.EventRegistration, guards ...collection.Guard[models.EventRegistration]) (models.EventRegistration, error)
	Update(ctx context.Context, id string, fn func(*models.EventRegistration)) (models.EventRegistration, bool, error)
	Remove(ctx context.Context, id string) error
}

// Repository implements event registration data access operations
type Repository struct {
	registrations Collection
}

// NewRepository creates a new registrations repository
func NewRepository(registrations Collection) *Repository {
	return &Repository{registrations: registrations}
}

// CreateRegistration stores a new registration. A team can hold at most
// one registration per event.
func (r *Repository) CreateRegistration(ctx context.Context, reg models.EventRegistration) (*models.EventRegistration, error) {
	created, err := r.registrations.Create(ctx, reg, func(existing []models.EventRegistration) error {
		for _, e := range existing {
			if e.EventID == reg.EventID && e.TeamID == reg.TeamID {
				return ErrAlreadyRegistered
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}
	return &created, nil
}

// GetRegistration retrieves a registration by ID
func (r *Repository) GetRegistration(ctx context.Context, id string) (*models.EventRegistration, error) {
	reg, err := r.registrations.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}
	return &reg, nil
}

// ListRegistrations retrieves all registrations
func (r *Repository) ListRegistrations(ctx context.Context) []models.EventRegistration {
	return r.registrations.List(ctx)
}

// ReplaceRegistration overwrites the stored registration with the same ID.
// The event, the team and the registration date stay as stored, so a
// replace can never produce a second registration for a team and event.
func (r *Repository) ReplaceRegistration(ctx context.Context, reg models.EventRegistration) (*models.EventRegistration, error) {
	updated, found, err := r.registrations.Update(ctx, reg.ID, func(stored *models.EventRegistration) {
		eventID, teamID, date := stored.EventID, stored.TeamID, stored.RegistrationDate
		*stored = reg
		stored.EventID, stored.TeamID, stored.RegistrationDate = eventID, teamID, date
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace registration: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("failed to replace registration %q: %w", reg.ID, collection.ErrNotFound)
	}
	return &updated, nil
}

// DeleteRegistration deletes a registration by ID
func (r *Repository) DeleteRegistration(ctx context.Context, id string) error {
	if err := r.registrations.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}
	return nil
}
