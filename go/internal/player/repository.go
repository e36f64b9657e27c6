package player

import (
	"context"
	"fmt"

	"github.com/mcdev12/hockeyfed/go/internal/collection"
	"github.com/mcdev12/hockeyfed/go/internal/models"
)

// Collection defines what the repository needs from the storage layer
type Collection interface {
	List(ctx context.Context) []models.Player
	Get(ctx context.Context, id string) (models.Player, error)
	Create(ctx context.Context, player models.Player, guards ...collection.Guard[models.Player]) (models.Player, error)
	Replace(ctx context.Context, player models.Player) (models.Player, error)
	Update(ctx context.Context, id string, fn func(*models.Player)) (models.Player, bool, error)
	Remove(ctx context.Context, id string) error
}

// Repository implements player data access operations
type Repository struct {
	players Collection
}

// NewRepository creates a new player repository
func NewRepository(players Collection) *Repository {
	return &Repository{players: players}
}

// CreatePlayer stores a new player under a generated ID
func (r *Repository) CreatePlayer(ctx context.Context, player models.Player) (*models.Player, error) {
	created, err := r.players.Create(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return &created, nil
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	player, err := r.players.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return &player, nil
}

// ListPlayers retrieves all players
func (r *Repository) ListPlayers(ctx context.Context) []models.Player {
	return r.players.List(ctx)
}

// ReplacePlayer overwrites the stored player with the same ID
func (r *Repository) ReplacePlayer(ctx context.Context, player models.Player) (*models.Player, error) {
	replaced, err := r.players.Replace(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to replace player: %w", err)
	}
	return &replaced, nil
}

// PatchPlayer merges patch onto the stored player; false when ID is unknown
func (r *Repository) PatchPlayer(ctx context.Context, id string, patch PlayerPatch) (*models.Player, bool, error) {
	updated, found, err := r.players.Update(ctx, id, patch.apply)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update player: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	return &updated, true, nil
}

// DeletePlayer deletes a player by ID
func (r *Repository) DeletePlayer(ctx context.Context, id string) error {
	if err := r.players.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}
