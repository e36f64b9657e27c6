// Package snapshot moves whole collections between a store and a JSON file.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/hockeyfed/go/internal/collection"
	"github.com/mcdev12/hockeyfed/go/internal/federation"
	"github.com/mcdev12/hockeyfed/go/internal/models"
)

// Snapshot mirrors the stored layout: one array per collection key
type Snapshot struct {
	Teams              []models.Team              `json:"teams,omitempty"`
	Players            []models.Player            `json:"players,omitempty"`
	Events             []models.Event             `json:"events,omitempty"`
	EventRegistrations []models.EventRegistration `json:"event_registrations,omitempty"`
	Users              []models.User              `json:"users,omitempty"`
	Announcements      []models.Announcement      `json:"announcements,omitempty"`
}

// Result counts collections, not items
type Result struct {
	Total    int
	Imported int
	Skipped  int
	Errors   []string
}

func (r Result) Summary() string {
	return fmt.Sprintf("snapshot import complete: %d total, %d imported, %d skipped, %d errors",
		r.Total, r.Imported, r.Skipped, len(r.Errors))
}

// Read parses a snapshot document
func Read(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}

// Write encodes snap as indented JSON
func Write(w io.Writer, snap *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// Export lists every collection
func Export(ctx context.Context, c federation.Collections) *Snapshot {
	return &Snapshot{
		Teams:              c.Teams.List(ctx),
		Players:            c.Players.List(ctx),
		Events:             c.Events.List(ctx),
		EventRegistrations: c.EventRegistrations.List(ctx),
		Users:              c.Users.List(ctx),
		Announcements:      c.Announcements.List(ctx),
	}
}

// Import writes each non-empty collection of snap. Populated collections are
// left alone unless overwrite is set. A collection with a missing or repeated
// id is rejected whole.
func Import(ctx context.Context, c federation.Collections, snap *Snapshot, overwrite bool) Result {
	var r Result
	importKind(ctx, &r, c.Teams, snap.Teams, overwrite)
	importKind(ctx, &r, c.Players, snap.Players, overwrite)
	importKind(ctx, &r, c.Events, snap.Events, overwrite)
	importKind(ctx, &r, c.EventRegistrations, snap.EventRegistrations, overwrite)
	importKind(ctx, &r, c.Users, snap.Users, overwrite)
	importKind(ctx, &r, c.Announcements, snap.Announcements, overwrite)

	log.Info().Str("summary", r.Summary()).Msg("snapshot imported")
	return r
}

func importKind[T collection.Entity[T]](ctx context.Context, r *Result, repo *collection.Repository[T], items []T, overwrite bool) {
	if len(items) == 0 {
		return
	}
	r.Total++
	kind := repo.Kind()

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		id := item.EntityID()
		if id == "" {
			r.Errors = append(r.Errors, fmt.Sprintf("%s: item without id", kind))
			return
		}
		if _, dup := seen[id]; dup {
			r.Errors = append(r.Errors, fmt.Sprintf("%s: duplicate id %q", kind, id))
			return
		}
		seen[id] = struct{}{}
	}
	if !overwrite && len(repo.List(ctx)) > 0 {
		log.Debug().Str("kind", kind.String()).Msg("collection populated, skipping")
		r.Skipped++
		return
	}
	if err := repo.Put(ctx, items); err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", kind, err))
		return
	}
	r.Imported++
}
