package announcements

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/hockeyfed/go/internal/auth"
	"github.com/mcdev12/hockeyfed/go/internal/models"
)

// ErrInvalidAnnouncement wraps every announcement validation failure
var ErrInvalidAnnouncement = errors.New("invalid announcement")

// CreateAnnouncementRequest represents the data needed to publish a notice
type CreateAnnouncementRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Important bool   `json:"important"`
}

// AnnouncementsRepository defines what the app layer needs from the repository
type AnnouncementsRepository interface {
	CreateAnnouncement(ctx context.Context, a models.Announcement) (*models.Announcement, error)
	ListAnnouncements(ctx context.Context) []models.Announcement
	DeleteAnnouncement(ctx context.Context, id string) error
}

// App handles announcement business logic
type App struct {
	repo  AnnouncementsRepository
	clock clockwork.Clock
}

// NewApp creates a new announcements App
func NewApp(repo AnnouncementsRepository, clock clockwork.Clock) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		repo:  repo,
		clock: clock,
	}
}

// ListAnnouncements retrieves all announcements, most recent first
func (a *App) ListAnnouncements(ctx context.Context) []models.Announcement {
	return a.repo.ListAnnouncements(ctx)
}

// CreateAnnouncement publishes a notice on behalf of actor, who must be an
// administrator. Nothing is read or written for other actors.
func (a *App) CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest, actor *models.PublicUser) (*models.Announcement, error) {
	if err := auth.RequireAdmin(actor, "create announcements"); err != nil {
		return nil, err
	}
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.Content, validation.Required),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAnnouncement, err)
	}

	created, err := a.repo.CreateAnnouncement(ctx, models.Announcement{
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: actor.Username,
		CreatedAt: a.clock.Now(),
		Important: req.Important,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("announcement_id", created.ID).Str("created_by", created.CreatedBy).Msg("created announcement")
	return created, nil
}

// DeleteAnnouncement removes a notice on behalf of actor, who must be an
// administrator
func (a *App) DeleteAnnouncement(ctx context.Context, id string, actor *models.PublicUser) error {
	if err := auth.RequireAdmin(actor, "delete announcements"); err != nil {
		return err
	}
	if err := a.repo.DeleteAnnouncement(ctx, id); err != nil {
		return err
	}

	log.Info().Str("announcement_id", id).Str("deleted_by", actor.Username).Msg("deleted announcement")
	return nil
}
