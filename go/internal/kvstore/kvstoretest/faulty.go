// Package kvstoretest provides Store doubles for exercising failure paths.
package kvstoretest

import (
	"context"
	"errors"
	"sync"

	"github.com/mcdev12/hockeyfed/go/internal/kvstore"
)

// ErrInjected is the cause carried by every injected failure.
var ErrInjected = errors.New("injected failure")

// Faulty wraps a Store and fails the operations switched on.
type Faulty struct {
	kvstore.Store

	mu         sync.Mutex
	failGet    bool
	failSet    bool
	failRemove bool
	sets       int
}

func NewFaulty(store kvstore.Store) *Faulty {
	return &Faulty{Store: store}
}

func (f *Faulty) FailGet(on bool) {
	f.mu.Lock()
	f.failGet = on
	f.mu.Unlock()
}

func (f *Faulty) FailSet(on bool) {
	f.mu.Lock()
	f.failSet = on
	f.mu.Unlock()
}

func (f *Faulty) FailRemove(on bool) {
	f.mu.Lock()
	f.failRemove = on
	f.mu.Unlock()
}

// Sets reports how many Set calls reached the wrapped store.
func (f *Faulty) Sets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

func (f *Faulty) Get(ctx context.Context, key string, dst any) (bool, error) {
	f.mu.Lock()
	fail := f.failGet
	f.mu.Unlock()
	if fail {
		return false, &kvstore.IOError{Op: "get", Key: key, Err: ErrInjected}
	}
	return f.Store.Get(ctx, key, dst)
}

func (f *Faulty) Set(ctx context.Context, key string, value any) error {
	f.mu.Lock()
	fail := f.failSet
	if !fail {
		f.sets++
	}
	f.mu.Unlock()
	if fail {
		return &kvstore.IOError{Op: "set", Key: key, Err: ErrInjected}
	}
	return f.Store.Set(ctx, key, value)
}

func (f *Faulty) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	fail := f.failRemove
	f.mu.Unlock()
	if fail {
		return &kvstore.IOError{Op: "remove", Key: key, Err: ErrInjected}
	}
	return f.Store.Remove(ctx, key)
}
