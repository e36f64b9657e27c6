package announcements

import (
	"context"
	"fmt"

	"github.com/mcdev12/hockeyfed/go/internal/collection"
	"github.com/mcdev12/hockeyfed/go/internal/models"
)

// Collection defines what the repository needs from the storage layer. It
// must be built with collection.NewestFirst.
type Collection interface {
	List(ctx context.Context) []models.Announcement
	Create(ctx context.Context, a models.Announcement, guards ...collection.Guard[models.Announcement]) (models.Announcement, error)
	Remove(ctx context.Context, id string) error
}

// Repository implements announcement data access operations
type Repository struct {
	announcements Collection
}

// NewRepository creates a new announcements repository
func NewRepository(announcements Collection) *Repository {
	return &Repository{announcements: announcements}
}

func (r *Repository) CreateAnnouncement(ctx context.Context, a models.Announcement) (*models.Announcement, error) {
	created, err := r.announcements.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return &created, nil
}

func (r *Repository) ListAnnouncements(ctx context.Context) []models.Announcement {
	return r.announcements.List(ctx)
}

func (r *Repository) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := r.announcements.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}
