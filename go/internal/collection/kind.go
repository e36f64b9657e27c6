package collection

import (
	"fmt"
	"sync"
)

// Kind enumerates the persisted entity collections.
type Kind uint8

const (
	Teams Kind = iota + 1
	Players
	Events
	EventRegistrations
	Users
	Announcements
)

var kindKeys = map[Kind]string{
	Teams:              "teams",
	Players:            "players",
	Events:             "events",
	EventRegistrations: "event_registrations",
	Users:              "users",
	Announcements:      "announcements",
}

// Kinds lists every collection in seeding order.
func Kinds() []Kind {
	return []Kind{Teams, Players, Events, EventRegistrations, Users, Announcements}
}

// ParseKind resolves a storage key such as "players" back to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, key := range kindKeys {
		if key == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown collection %q", s)
}

// Key is the storage key the collection lives under.
func (k Kind) Key() string {
	key, ok := kindKeys[k]
	if !ok {
		panic(fmt.Sprintf("collection: invalid kind %d", k))
	}
	return key
}

func (k Kind) String() string {
	if key, ok := kindKeys[k]; ok {
		return key
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Locks hands out one mutex per Kind so that every repository over the
// same collection serializes its read-modify-write cycles.
type Locks struct {
	mu     sync.Mutex
	byKind map[Kind]*sync.Mutex
}

func NewLocks() *Locks {
	return &Locks{byKind: make(map[Kind]*sync.Mutex)}
}

func (l *Locks) For(k Kind) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.byKind[k]
	if !ok {
		m = &sync.Mutex{}
		l.byKind[k] = m
	}
	return m
}
