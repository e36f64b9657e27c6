// Package federation wires every domain app over a single key-value store.
package federation

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/hockeyfed/go/internal/announcements"
	"github.com/mcdev12/hockeyfed/go/internal/collection"
	"github.com/mcdev12/hockeyfed/go/internal/events"
	"github.com/mcdev12/hockeyfed/go/internal/idgen"
	"github.com/mcdev12/hockeyfed/go/internal/kvstore"
	"github.com/mcdev12/hockeyfed/go/internal/models"
	"github.com/mcdev12/hockeyfed/go/internal/player"
	"github.com/mcdev12/hockeyfed/go/internal/registrations"
	"github.com/mcdev12/hockeyfed/go/internal/seed"
	"github.com/mcdev12/hockeyfed/go/internal/teams"
	"github.com/mcdev12/hockeyfed/go/internal/users"
)

// Options tune how the services are built. The zero value is usable.
type Options struct {
	// KeyPrefix namespaces every storage key, e.g. "hockey_".
	KeyPrefix string
	// SerializeWrites holds a per-collection lock across each
	// read-modify-write cycle.
	SerializeWrites bool
	IDs             idgen.Generator
	Clock           clockwork.Clock
	// HashCost is the bcrypt cost for new passwords; zero means default.
	HashCost int
}

// Collections are the raw per-kind repositories the apps are built on
type Collections struct {
	Teams              *collection.Repository[models.Team]
	Players            *collection.Repository[models.Player]
	Events             *collection.Repository[models.Event]
	EventRegistrations *collection.Repository[models.EventRegistration]
	Users              *collection.Repository[models.User]
	Announcements      *collection.Repository[models.Announcement]
}

type Services struct {
	Store         kvstore.Store
	Collections   Collections
	Teams         *teams.App
	Players       *player.App
	Events        *events.App
	Registrations *registrations.App
	Users         *users.App
	Announcements *announcements.App
	Seeder        *seed.Seeder
}

// New builds every repository and app once over store
func New(store kvstore.Store, opts Options) *Services {
	if opts.IDs == nil {
		opts.IDs = idgen.UUIDv7{}
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	store = kvstore.WithPrefix(store, opts.KeyPrefix)

	var collOpts []collection.Option
	if opts.SerializeWrites {
		collOpts = append(collOpts, collection.Serialized(collection.NewLocks()))
	}

	// Wire up dependency injection chain
	// Store → Collection → Repository → App

	// Teams
	teamColl := collection.New[models.Team](collection.Teams, store, opts.IDs, collOpts...)
	teamsApp := teams.NewApp(teams.NewRepository(teamColl))

	// Players
	playerColl := collection.New[models.Player](collection.Players, store, opts.IDs, collOpts...)
	playerApp := player.NewApp(player.NewRepository(playerColl), teamsApp, opts.Clock)

	// Events
	eventColl := collection.New[models.Event](collection.Events, store, opts.IDs, collOpts...)
	eventsApp := events.NewApp(events.NewRepository(eventColl), opts.Clock)

	// Registrations
	regColl := collection.New[models.EventRegistration](collection.EventRegistrations, store, opts.IDs, collOpts...)
	registrationsApp := registrations.NewApp(registrations.NewRepository(regColl), eventsApp, teamsApp, playerApp, opts.Clock)

	// Users
	userColl := collection.New[models.User](collection.Users, store, opts.IDs, collOpts...)
	usersApp := users.NewApp(users.NewRepository(userColl), users.NewSessionStore(store), opts.Clock, opts.HashCost)

	// Announcements
	annOpts := append([]collection.Option{collection.NewestFirst()}, collOpts...)
	annColl := collection.New[models.Announcement](collection.Announcements, store, opts.IDs, annOpts...)
	announcementsApp := announcements.NewApp(announcements.NewRepository(annColl), opts.Clock)

	seeder := seed.NewSeeder(seed.Targets{
		Teams:         teamColl,
		Players:       playerColl,
		Events:        eventColl,
		Users:         userColl,
		Announcements: annColl,
	}, opts.IDs, opts.Clock, opts.HashCost)

	colls := Collections{
		Teams:              teamColl,
		Players:            playerColl,
		Events:             eventColl,
		EventRegistrations: regColl,
		Users:              userColl,
		Announcements:      annColl,
	}

	return &Services{
		Store:         store,
		Collections:   colls,
		Teams:         teamsApp,
		Players:       playerApp,
		Events:        eventsApp,
		Registrations: registrationsApp,
		Users:         usersApp,
		Announcements: announcementsApp,
		Seeder:        seeder,
	}
}

// Reset clears all storage, including the current session
func (s *Services) Reset(ctx context.Context) error {
	if err := s.Store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	log.Info().Msg("storage cleared")
	return nil
}

// List returns the raw contents of one collection for inspection
func (s *Services) List(ctx context.Context, kind collection.Kind) (any, error) {
	switch kind {
	case collection.Teams:
		return s.Teams.ListTeams(ctx), nil
	case collection.Players:
		return s.Players.ListPlayersWithTeams(ctx), nil
	case collection.Events:
		return s.Events.ListEvents(ctx), nil
	case collection.EventRegistrations:
		return s.Registrations.ListRegistrations(ctx), nil
	case collection.Users:
		return s.Users.ListUsers(ctx), nil
	case collection.Announcements:
		return s.Announcements.ListAnnouncements(ctx), nil
	}
	return nil, fmt.Errorf("unknown collection %s", kind)
}
