package teams

import (
	"context"
	"fmt"

	"github.com/mcdev12/hockeyfed/go/internal/collection"
	"github.com/mcdev12/hockeyfed/go/internal/models"
)

// Collection defines what the repository needs from the storage layer
type Collection interface {
	List(ctx context.Context) []models.Team
	Get(ctx context.Context, id string) (models.Team, error)
	Create(ctx context.Context, team models.Team, guards ...collection.Guard[models.Team]) (models.Team, error)
	Replace(ctx context.Context, team models.Team) (models.Team, error)
	Remove(ctx context.Context, id string) error
}

// Repository implements team data access operations
type Repository struct {
	teams Collection
}

// NewRepository creates a new teams repository
func NewRepository(teams Collection) *Repository {
	return &Repository{
		teams: teams,
	}
}

// CreateTeam stores a new team under a generated ID
func (r *Repository) CreateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	created, err := r.teams.Create(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return &created, nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	team, err := r.teams.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return &team, nil
}

// ListTeams retrieves all teams
func (r *Repository) ListTeams(ctx context.Context) []models.Team {
	return r.teams.List(ctx)
}

// ReplaceTeam overwrites the stored team with the same ID
func (r *Repository) ReplaceTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	replaced, err := r.teams.Replace(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("failed to replace team: %w", err)
	}
	return &replaced, nil
}

// DeleteTeam deletes a team by ID
func (r *Repository) DeleteTeam(ctx context.Context, id string) error {
	if err := r.teams.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}
