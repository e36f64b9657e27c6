// Package collection stores each entity kind as one JSON array in a
// kvstore.Store and implements create, replace, update and delete over it.
//
// Every write is a full read-modify-write of the collection. Without the
// Serialized option two concurrent writers on the same Kind can lose one of
// the updates (last write wins).
package collection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/hockeyfed/go/internal/idgen"
	"github.com/mcdev12/hockeyfed/go/internal/kvstore"
)

var (
	// ErrNotFound is returned when no item carries the requested id.
	ErrNotFound = errors.New("not found")
	// ErrIDAssigned is returned by Create for an item that already has an id.
	ErrIDAssigned = errors.New("id already assigned")
	// ErrMissingID is returned by Replace for an item without an id.
	ErrMissingID = errors.New("id is required")
)

// Entity is implemented by value types stored in a collection.
type Entity[T any] interface {
	EntityID() string
	WithID(id string) T
}

// Guard inspects the current collection before a Create is applied and
// aborts it by returning an error.
type Guard[T any] func(existing []T) error

type options struct {
	newestFirst bool
	locks       *Locks
}

type Option func(*options)

// NewestFirst makes Create prepend instead of append.
func NewestFirst() Option {
	return func(o *options) { o.newestFirst = true }
}

// Serialized holds the Kind's mutex from locks across each read-modify-write.
func Serialized(locks *Locks) Option {
	return func(o *options) { o.locks = locks }
}

// Repository is the CRUD engine for one Kind.
type Repository[T Entity[T]] struct {
	kind        Kind
	store       kvstore.Store
	ids         idgen.Generator
	newestFirst bool
	mu          sync.Locker
}

func New[T Entity[T]](kind Kind, store kvstore.Store, ids idgen.Generator, opts ...Option) *Repository[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	r := &Repository[T]{
		kind:        kind,
		store:       store,
		ids:         ids,
		newestFirst: o.newestFirst,
	}
	if o.locks != nil {
		r.mu = o.locks.For(kind)
	}
	return r
}

func (r *Repository[T]) Kind() Kind { return r.kind }

// List returns every item. A missing collection and a failed read both
// yield an empty slice; the failure is logged.
func (r *Repository[T]) List(ctx context.Context) []T {
	items, err := r.load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("kind", r.kind.String()).Msg("failed to read collection, returning empty list")
		return []T{}
	}
	return items
}

// Get returns the item with id, ErrNotFound when absent.
func (r *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := r.load(ctx)
	if err != nil {
		return zero, err
	}
	if i := indexOf(items, id); i >= 0 {
		return items[i], nil
	}
	return zero, fmt.Errorf("%s %q: %w", r.kind, id, ErrNotFound)
}

// Create assigns a fresh id to item and stores it. Guards run against the
// collection as read inside the same cycle.
func (r *Repository[T]) Create(ctx context.Context, item T, guards ...Guard[T]) (T, error) {
	var zero T
	if item.EntityID() != "" {
		return zero, fmt.Errorf("create %s: %w", r.kind, ErrIDAssigned)
	}
	var created T
	err := r.mutate(ctx, func(items []T) ([]T, bool, error) {
		for _, guard := range guards {
			if err := guard(items); err != nil {
				return nil, false, err
			}
		}
		created = item.WithID(r.ids.NewID())
		if r.newestFirst {
			return append([]T{created}, items...), true, nil
		}
		return append(items, created), true, nil
	})
	if err != nil {
		return zero, err
	}
	log.Debug().Str("kind", r.kind.String()).Str("id", created.EntityID()).Msg("created")
	return created, nil
}

// Replace swaps the stored item carrying item's id for item. Nothing is
// written when the id is unknown.
func (r *Repository[T]) Replace(ctx context.Context, item T) (T, error) {
	var zero T
	id := item.EntityID()
	if id == "" {
		return zero, fmt.Errorf("replace %s: %w", r.kind, ErrMissingID)
	}
	err := r.mutate(ctx, func(items []T) ([]T, bool, error) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%s %q: %w", r.kind, id, ErrNotFound)
		}
		items[i] = item
		return items, true, nil
	})
	if err != nil {
		return zero, err
	}
	return item, nil
}

// Save creates item when it has no id and replaces it otherwise.
func (r *Repository[T]) Save(ctx context.Context, item T) (T, error) {
	if item.EntityID() == "" {
		return r.Create(ctx, item)
	}
	return r.Replace(ctx, item)
}

// Update applies fn to the stored item with id and persists the result.
// It reports false, without writing, when id is absent. fn cannot change
// the item's id.
func (r *Repository[T]) Update(ctx context.Context, id string, fn func(*T)) (T, bool, error) {
	var (
		updated T
		found   bool
	)
	err := r.mutate(ctx, func(items []T) ([]T, bool, error) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, false, nil
		}
		fn(&items[i])
		items[i] = items[i].WithID(id)
		updated, found = items[i], true
		return items, true, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return updated, found, nil
}

// Remove deletes the item with id. Removing an unknown id succeeds.
func (r *Repository[T]) Remove(ctx context.Context, id string) error {
	return r.mutate(ctx, func(items []T) ([]T, bool, error) {
		kept := items[:0]
		for _, item := range items {
			if item.EntityID() != id {
				kept = append(kept, item)
			}
		}
		return kept, len(kept) != len(items), nil
	})
}

// Put overwrites the whole collection.
func (r *Repository[T]) Put(ctx context.Context, items []T) error {
	if r.mu != nil {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	if items == nil {
		items = []T{}
	}
	if err := r.store.Set(ctx, r.kind.Key(), items); err != nil {
		return fmt.Errorf("failed to persist %s: %w", r.kind, err)
	}
	return nil
}

func (r *Repository[T]) load(ctx context.Context) ([]T, error) {
	var items []T
	found, err := r.store.Get(ctx, r.kind.Key(), &items)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.kind, err)
	}
	if !found || items == nil {
		return []T{}, nil
	}
	return items, nil
}

// mutate runs one read-modify-write cycle. A read failure aborts the write
// so a collection that cannot be decoded is never overwritten.
func (r *Repository[T]) mutate(ctx context.Context, fn func([]T) ([]T, bool, error)) error {
	if r.mu != nil {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	next, write, err := fn(items)
	if err != nil || !write {
		return err
	}
	if err := r.store.Set(ctx, r.kind.Key(), next); err != nil {
		return fmt.Errorf("failed to persist %s: %w", r.kind, err)
	}
	return nil
}

func indexOf[T Entity[T]](items []T, id string) int {
	for i, item := range items {
		if item.EntityID() == id {
			return i
		}
	}
	return -1
}
