package events

import (
	"context"
	"fmt"

	"github.com/mcdev12/hockeyfed/go/internal/collection"
	"github.com/mcdev12/hockeyfed/go/internal/models"
)

// Collection defines what the repository needs from the storage layer
type Collection interface {
	List(ctx context.Context) []models.Event
	Get(ctx context.Context, id string) (models.Event, error)
	Create(ctx context.Context, event models.Event, guards ...collection.Guard[models.Event]) (models.Event, error)
	Replace(ctx context.Context, event models.Event) (models.Event, error)
	Remove(ctx context.Context, id string) error
}

// Repository implements event data access operations
type Repository struct {
	events Collection
}

// NewRepository creates a new events repository
func NewRepository(events Collection) *Repository {
	return &Repository{events: events}
}

// CreateEvent stores a new event under a generated ID
func (r *Repository) CreateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	created, err := r.events.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &created, nil
}

// GetEvent retrieves an event by ID
func (r *Repository) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := r.events.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// ListEvents retrieves all events
func (r *Repository) ListEvents(ctx context.Context) []models.Event {
	return r.events.List(ctx)
}

// ReplaceEvent overwrites the stored event with the same ID
func (r *Repository) ReplaceEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	replaced, err := r.events.Replace(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to replace event: %w", err)
	}
	return &replaced, nil
}

// DeleteEvent deletes an event by ID
func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	if err := r.events.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
