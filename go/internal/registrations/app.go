package registrations

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/hockeyfed/go/internal/events"
	"github.com/mcdev12/hockeyfed/go/internal/models"
)

// RegistrationsRepository defines what the app layer needs from the repository
type RegistrationsRepository interface {
	CreateRegistration(ctx context.Context, reg models.EventRegistration) (*models.EventRegistration, error)
	GetRegistration(ctx context.Context, id string) (*models.EventRegistration, error)
	ListRegistrations(ctx context.Context) []models.EventRegistration
	ReplaceRegistration(ctx context.Context, reg models.EventRegistration) (*models.EventRegistration, error)
	DeleteRegistration(ctx context.Context, id string) error
}

type EventApp interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
}

type TeamApp interface {
	GetTeam(ctx context.Context, id string) (*models.Team, error)
}

type PlayerApp interface {
	ListPlayersByTeam(ctx context.Context, teamID string) []models.Player
}

// App handles event registration business logic
type App struct {
	repo      RegistrationsRepository
	eventApp  EventApp
	teamApp   TeamApp
	playerApp PlayerApp
	clock     clockwork.Clock
}

// NewApp creates a new registrations App
func NewApp(repo RegistrationsRepository, eventApp EventApp, teamApp TeamApp, playerApp PlayerApp, clock clockwork.Clock) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		repo:      repo,
		eventApp:  eventApp,
		teamApp:   teamApp,
		playerApp: playerApp,
		clock:     clock,
	}
}

// RegisterTeam enters a team into an event with the first MinPlayers
// players of its roster
func (a *App) RegisterTeam(ctx context.Context, req RegisterTeamRequest) (*models.EventRegistration, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.TeamID, validation.Required),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegistration, err)
	}
	if !req.AcceptedTerms {
		return nil, ErrTermsNotAccepted
	}

	event, err := a.eventApp.GetEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	now := a.clock.Now()
	if !events.IsRegistrationOpen(*event, now) {
		return nil, fmt.Errorf("%w: deadline was %s", ErrRegistrationClosed, event.RegistrationDeadline)
	}
	if _, err := a.teamApp.GetTeam(ctx, req.TeamID); err != nil {
		return nil, err
	}

	roster := a.playerApp.ListPlayersByTeam(ctx, req.TeamID)
	minPlayers := max(event.MinPlayers, 0)
	if len(roster) < minPlayers {
		return nil, fmt.Errorf("%w: needs at least %d, has %d", ErrNotEnoughPlayers, event.MinPlayers, len(roster))
	}
	playerIDs := make([]string, 0, minPlayers)
	for _, p := range roster[:minPlayers] {
		playerIDs = append(playerIDs, p.ID)
	}

	created, err := a.repo.CreateRegistration(ctx, models.EventRegistration{
		EventID:          req.EventID,
		TeamID:           req.TeamID,
		PlayerIDs:        playerIDs,
		AcceptedTerms:    true,
		RegistrationDate: now,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("registration_id", created.ID).
		Str("event_id", created.EventID).
		Str("team_id", created.TeamID).
		Int("players", len(created.PlayerIDs)).
		Msg("registered team for event")
	return created, nil
}

// SaveRegistration creates the registration when it has no ID, stamping the
// registration date, and replaces it otherwise
func (a *App) SaveRegistration(ctx context.Context, reg models.EventRegistration) (*models.EventRegistration, error) {
	if reg.ID == "" {
		reg.RegistrationDate = a.clock.Now()
		return a.repo.CreateRegistration(ctx, reg)
	}
	return a.repo.ReplaceRegistration(ctx, reg)
}

// GetRegistration retrieves a registration by ID
func (a *App) GetRegistration(ctx context.Context, id string) (*models.EventRegistration, error) {
	return a.repo.GetRegistration(ctx, id)
}

// ListRegistrations retrieves all registrations
func (a *App) ListRegistrations(ctx context.Context) []models.EventRegistration {
	return a.repo.ListRegistrations(ctx)
}

// ListRegistrationsForEvent retrieves the registrations for one event
func (a *App) ListRegistrationsForEvent(ctx context.Context, eventID string) []models.EventRegistration {
	var regs []models.EventRegistration
	for _, reg := range a.repo.ListRegistrations(ctx) {
		if reg.EventID == eventID {
			regs = append(regs, reg)
		}
	}
	return regs
}

// DeleteRegistration withdraws a registration by ID
func (a *App) DeleteRegistration(ctx context.Context, id string) error {
	if err := a.repo.DeleteRegistration(ctx, id); err != nil {
		return err
	}

	log.Info().Str("registration_id", id).Msg("deleted registration")
	return nil
}
