// Package seed writes the canonical federation dataset into empty
// collections.
package seed

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/hockeyfed/go/internal/collection"
	"github.com/mcdev12/hockeyfed/go/internal/idgen"
	"github.com/mcdev12/hockeyfed/go/internal/models"
	"github.com/mcdev12/hockeyfed/go/internal/users"
)

// Collection is the slice of collection.Repository the seeder uses
type Collection[T any] interface {
	List(ctx context.Context) []T
	Put(ctx context.Context, items []T) error
}

// Targets are the collections the seeder fills
type Targets struct {
	Teams         Collection[models.Team]
	Players       Collection[models.Player]
	Events        Collection[models.Event]
	Users         Collection[models.User]
	Announcements Collection[models.Announcement]
}

// Seeder fills every empty collection with its fixtures. Collections are
// handled independently; a failure on one never stops the others.
type Seeder struct {
	targets  Targets
	ids      idgen.Generator
	clock    clockwork.Clock
	hashCost int
}

func NewSeeder(targets Targets, ids idgen.Generator, clock clockwork.Clock, hashCost int) *Seeder {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Seeder{
		targets:  targets,
		ids:      ids,
		clock:    clock,
		hashCost: hashCost,
	}
}

// EnsureSeeded seeds each empty collection and leaves the rest untouched.
// It never fails; problems are logged and listed in the Result.
func (s *Seeder) EnsureSeeded(ctx context.Context) Result {
	result := newResult()

	fixtures, err := LoadFixtures()
	if err != nil {
		log.Error().Err(err).Msg("seeding skipped")
		result.AddErrorf("fixtures: %v", err)
		return result
	}

	now := s.clock.Now()
	seedKind(ctx, &result, collection.Teams, s.targets.Teams, func() ([]models.Team, error) {
		return fixtures.teams(), nil
	})
	seedKind(ctx, &result, collection.Players, s.targets.Players, func() ([]models.Player, error) {
		return fixtures.players(), nil
	})
	seedKind(ctx, &result, collection.Events, s.targets.Events, func() ([]models.Event, error) {
		return fixtures.events(), nil
	})
	seedKind(ctx, &result, collection.Users, s.targets.Users, func() ([]models.User, error) {
		hash, err := users.HashPassword(fixtures.Admin.Password, s.hashCost)
		if err != nil {
			return nil, err
		}
		return []models.User{{
			ID:        s.ids.NewID(),
			Username:  fixtures.Admin.Username,
			Password:  hash,
			Email:     fixtures.Admin.Email,
			IsAdmin:   true,
			CreatedAt: now,
		}}, nil
	})
	seedKind(ctx, &result, collection.Announcements, s.targets.Announcements, func() ([]models.Announcement, error) {
		return []models.Announcement{{
			ID:        s.ids.NewID(),
			Title:     fixtures.Welcome.Title,
			Content:   fixtures.Welcome.Content,
			CreatedBy: fixtures.Admin.Username,
			CreatedAt: now,
			Important: fixtures.Welcome.Important,
		}}, nil
	})

	log.Info().Str("summary", result.Summary()).Msg("storage initialization check complete")
	return result
}

func seedKind[T any](ctx context.Context, result *Result, kind collection.Kind, target Collection[T], build func() ([]T, error)) {
	if target == nil {
		return
	}
	logger := log.With().Str("kind", kind.String()).Logger()

	// An unreadable collection lists as empty and is reseeded.
	if len(target.List(ctx)) > 0 {
		logger.Debug().Msg("collection already populated")
		result.Skipped = append(result.Skipped, kind)
		return
	}

	items, err := build()
	if err != nil {
		logger.Error().Err(err).Msg("failed to build fixtures")
		result.AddErrorf("%s: %v", kind, err)
		return
	}
	if err := target.Put(ctx, items); err != nil {
		logger.Error().Err(err).Msg("failed to seed collection")
		result.AddErrorf("%s: %v", kind, err)
		return
	}

	logger.Info().Int("count", len(items)).Msg("seeded collection")
	result.Seeded[kind] = len(items)
}
