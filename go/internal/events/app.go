package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/hockeyfed/go/internal/models"
)

// ErrInvalidEvent wraps every event validation failure
var ErrInvalidEvent = errors.New("invalid event")

// EventsRepository defines what the app layer needs from the repository
type EventsRepository interface {
	CreateEvent(ctx context.Context, event models.Event) (*models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context) []models.Event
	ReplaceEvent(ctx context.Context, event models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

// App handles event business logic
type App struct {
	repo  EventsRepository
	clock clockwork.Clock
}

// NewApp creates a new events App
func NewApp(repo EventsRepository, clock clockwork.Clock) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		repo:  repo,
		clock: clock,
	}
}

// CreateEvent schedules a new event with validation
func (a *App) CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	event := req.toModel()
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	created, err := a.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, err
	}

	log.Info().Str("event_id", created.ID).Str("title", created.Title).Msg("created event")
	return created, nil
}

// GetEvent retrieves an event by ID
func (a *App) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return a.repo.GetEvent(ctx, id)
}

// ListEvents retrieves all events
func (a *App) ListEvents(ctx context.Context) []models.Event {
	return a.repo.ListEvents(ctx)
}

// OpenEvents retrieves the events still accepting registrations
func (a *App) OpenEvents(ctx context.Context) []models.Event {
	now := a.clock.Now()
	open := []models.Event{}
	for _, event := range a.repo.ListEvents(ctx) {
		if IsRegistrationOpen(event, now) {
			open = append(open, event)
		}
	}
	return open
}

// ReplaceEvent overwrites an existing event wholesale
func (a *App) ReplaceEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	return a.repo.ReplaceEvent(ctx, event)
}

// SaveEvent creates the event when it has no ID and replaces it otherwise
func (a *App) SaveEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	if event.ID == "" {
		if err := validateEvent(event); err != nil {
			return nil, err
		}
		return a.repo.CreateEvent(ctx, event)
	}
	return a.ReplaceEvent(ctx, event)
}

// DeleteEvent deletes an event by ID. Registrations for it are left in place.
func (a *App) DeleteEvent(ctx context.Context, id string) error {
	if err := a.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}

	log.Info().Str("event_id", id).Msg("deleted event")
	return nil
}

// IsRegistrationOpen reports whether now falls on or before the event's
// registration deadline day. An unparseable deadline counts as closed.
func IsRegistrationOpen(event models.Event, now time.Time) bool {
	deadline, err := models.ParseDate(event.RegistrationDeadline)
	if err != nil {
		return false
	}
	y, m, d := deadline.Date()
	endOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return now.Before(endOfDay)
}

func validateEvent(e models.Event) error {
	err := validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required),
		validation.Field(&e.Location, validation.Required),
		validation.Field(&e.RegistrationFee, validation.Required),
		validation.Field(&e.HockeyType, validation.Required, validation.In(models.HockeyTypeIndoor, models.HockeyTypeOutdoor)),
		validation.Field(&e.MinPlayers, validation.Required, validation.Min(1)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}

	date, dateErr := models.ParseDate(e.Date)
	deadline, deadlineErr := models.ParseDate(e.RegistrationDeadline)
	if dateErr == nil && deadlineErr == nil && deadline.After(date) {
		return fmt.Errorf("%w: registration deadline %s is after the event date %s", ErrInvalidEvent, e.RegistrationDeadline, e.Date)
	}
	return nil
}
