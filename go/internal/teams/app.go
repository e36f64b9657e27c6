package teams

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/hockeyfed/go/internal/models"
)

// ErrInvalidTeam wraps every team validation failure
var ErrInvalidTeam = errors.New("invalid team")

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeam(ctx context.Context, team models.Team) (*models.Team, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	ListTeams(ctx context.Context) []models.Team
	ReplaceTeam(ctx context.Context, team models.Team) (*models.Team, error)
	DeleteTeam(ctx context.Context, id string) error
}

// App handles teams business logic
type App struct {
	repo TeamsRepository
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreateTeam registers a new team with validation
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	team := req.toModel()
	if err := validateTeam(team); err != nil {
		return nil, err
	}

	created, err := a.repo.CreateTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	log.Info().Str("team_id", created.ID).Str("name", created.Name).Msg("created team")
	return created, nil
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	return a.repo.GetTeam(ctx, id)
}

// ListTeams retrieves all teams; an unreadable collection yields none
func (a *App) ListTeams(ctx context.Context) []models.Team {
	return a.repo.ListTeams(ctx)
}

// ListTeamsWithFilter retrieves the teams matching filter
func (a *App) ListTeamsWithFilter(ctx context.Context, filter TeamFilter) []models.Team {
	var teams []models.Team
	for _, team := range a.repo.ListTeams(ctx) {
		if filter.matches(team) {
			teams = append(teams, team)
		}
	}
	return teams
}

// TeamNames maps team IDs to names
func (a *App) TeamNames(ctx context.Context) map[string]string {
	teams := a.repo.ListTeams(ctx)
	names := make(map[string]string, len(teams))
	for _, team := range teams {
		names[team.ID] = team.Name
	}
	return names
}

// ReplaceTeam overwrites an existing team wholesale
func (a *App) ReplaceTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	if err := validateTeam(team); err != nil {
		return nil, err
	}

	replaced, err := a.repo.ReplaceTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	log.Info().Str("team_id", replaced.ID).Msg("replaced team")
	return replaced, nil
}

// SaveTeam creates the team when it has no ID and replaces it otherwise
func (a *App) SaveTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	if team.ID == "" {
		if err := validateTeam(team); err != nil {
			return nil, err
		}
		return a.repo.CreateTeam(ctx, team)
	}
	return a.ReplaceTeam(ctx, team)
}

// DeleteTeam deletes a team by ID. Players keep their teamId and resolve
// to models.UnknownTeam afterwards.
func (a *App) DeleteTeam(ctx context.Context, id string) error {
	if err := a.repo.DeleteTeam(ctx, id); err != nil {
		return err
	}

	log.Info().Str("team_id", id).Msg("deleted team")
	return nil
}

func validateTeam(t models.Team) error {
	err := validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.ContactEmail, is.Email),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTeam, err)
	}
	return nil
}
