package player

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/hockeyfed/go/internal/models"
)

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, player models.Player) (*models.Player, error)
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
	ListPlayers(ctx context.Context) []models.Player
	ReplacePlayer(ctx context.Context, player models.Player) (*models.Player, error)
	PatchPlayer(ctx context.Context, id string, patch PlayerPatch) (*models.Player, bool, error)
	DeletePlayer(ctx context.Context, id string) error
}

type TeamApp interface {
	TeamNames(ctx context.Context) map[string]string
}

// App handles player business logic
type App struct {
	repo    PlayerRepository
	teamApp TeamApp
	clock   clockwork.Clock
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository, teamApp TeamApp, clock clockwork.Clock) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		repo:    repo,
		teamApp: teamApp,
		clock:   clock,
	}
}

// CreatePlayer registers a new player with validation
func (a *App) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	player := req.toModel()
	if err := validatePlayer(player); err != nil {
		return nil, err
	}

	created, err := a.repo.CreatePlayer(ctx, player)
	if err != nil {
		return nil, err
	}

	log.Info().Str("player_id", created.ID).Str("name", created.FullName()).Msg("created player")
	return created, nil
}

// GetPlayer retrieves a player by ID
func (a *App) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	return a.repo.GetPlayer(ctx, id)
}

// ListPlayers retrieves all players
func (a *App) ListPlayers(ctx context.Context) []models.Player {
	return a.repo.ListPlayers(ctx)
}

// ReplacePlayer overwrites an existing player wholesale
func (a *App) ReplacePlayer(ctx context.Context, player models.Player) (*models.Player, error) {
	if err := validatePlayer(player); err != nil {
		return nil, err
	}
	return a.repo.ReplacePlayer(ctx, player)
}

// SavePlayer creates the player when it has no ID and replaces it otherwise
func (a *App) SavePlayer(ctx context.Context, player models.Player) (*models.Player, error) {
	if player.ID == "" {
		if err := validatePlayer(player); err != nil {
			return nil, err
		}
		return a.repo.CreatePlayer(ctx, player)
	}
	return a.ReplacePlayer(ctx, player)
}

// UpdatePlayer shallow-merges patch onto the stored player. It reports
// false, writing nothing, when no player has the ID.
func (a *App) UpdatePlayer(ctx context.Context, id string, patch PlayerPatch) (bool, error) {
	if patch.Email != nil && *patch.Email != "" {
		if err := validation.Validate(*patch.Email, is.Email); err != nil {
			return false, fmt.Errorf("%w: email: %w", ErrInvalidPlayer, err)
		}
	}
	if (patch.FirstName != nil && *patch.FirstName == "") || (patch.LastName != nil && *patch.LastName == "") {
		return false, fmt.Errorf("%w: name cannot be blank", ErrInvalidPlayer)
	}

	_, found, err := a.repo.PatchPlayer(ctx, id, patch)
	if err != nil {
		return false, err
	}
	if !found {
		log.Debug().Str("player_id", id).Msg("update skipped, player not found")
		return false, nil
	}
	return true, nil
}

// DeletePlayer deletes a player by ID
func (a *App) DeletePlayer(ctx context.Context, id string) error {
	if err := a.repo.DeletePlayer(ctx, id); err != nil {
		return err
	}

	log.Info().Str("player_id", id).Msg("deleted player")
	return nil
}

// ListPlayersWithTeams joins every player with its team name and age.
// Dangling or missing team IDs resolve to models.UnknownTeam.
func (a *App) ListPlayersWithTeams(ctx context.Context) []PlayerWithTeam {
	players := a.repo.ListPlayers(ctx)
	names := a.teamApp.TeamNames(ctx)
	now := a.clock.Now()

	out := make([]PlayerWithTeam, 0, len(players))
	for _, p := range players {
		row := PlayerWithTeam{Player: p, TeamName: models.UnknownTeam}
		if p.TeamID != nil {
			if name, ok := names[*p.TeamID]; ok {
				row.TeamName = name
			}
		}
		if age, ok := p.Age(now); ok {
			row.Age = &age
		}
		out = append(out, row)
	}
	return out
}

// ListPlayersByTeam retrieves the players whose teamId is teamID
func (a *App) ListPlayersByTeam(ctx context.Context, teamID string) []models.Player {
	var players []models.Player
	for _, p := range a.repo.ListPlayers(ctx) {
		if p.TeamID != nil && *p.TeamID == teamID {
			players = append(players, p)
		}
	}
	return players
}

// SearchPlayers matches query case-insensitively against full name, team
// name and position
func (a *App) SearchPlayers(ctx context.Context, query string) []models.Player {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return a.repo.ListPlayers(ctx)
	}

	names := a.teamApp.TeamNames(ctx)
	var players []models.Player
	for _, p := range a.repo.ListPlayers(ctx) {
		teamName := ""
		if p.TeamID != nil {
			teamName = names[*p.TeamID]
		}
		for _, field := range []string{p.FullName(), teamName, p.Position} {
			if strings.Contains(strings.ToLower(field), q) {
				players = append(players, p)
				break
			}
		}
	}
	return players
}

func validatePlayer(p models.Player) error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required),
		validation.Field(&p.LastName, validation.Required),
		validation.Field(&p.Email, is.Email),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlayer, err)
	}
	return nil
}
