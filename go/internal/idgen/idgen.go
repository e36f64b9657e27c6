// Package idgen produces entity identifiers.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a new unique identifier on every call.
type Generator interface {
	NewID() string
}

// UUIDv7 generates time-ordered ids: a millisecond timestamp followed by a
// per-process monotonic counter and random bits. Two calls in the same
// millisecond still yield distinct, increasing ids.
type UUIDv7 struct{}

func (UUIDv7) NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Sequence yields prefix1, prefix2, ... and is meant for tests.
type Sequence struct {
	prefix string
	n      atomic.Uint64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	return s.prefix + strconv.FormatUint(s.n.Add(1), 10)
}
