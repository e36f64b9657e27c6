package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrStorage matches every failure reported by a Store backend.
var ErrStorage = errors.New("storage failure")

// Store is the string-keyed persistent store the data layer sits on.
// Values are JSON encoded. Get reports found=false with a nil error when
// the key is absent; Remove of an absent key succeeds.
type Store interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// IOError describes a failed store operation.
type IOError struct {
	Op  string
	Key string
	Err error
}

func (e *IOError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is makes every IOError match ErrStorage.
func (e *IOError) Is(target error) bool { return target == ErrStorage }

func ioError(op, key string, err error) error {
	return &IOError{Op: op, Key: key, Err: err}
}

func encode(key string, value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, ioError("encode", key, err)
	}
	return raw, nil
}

func decode(key string, raw []byte, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return ioError("decode", key, err)
	}
	return nil
}

// Prefixed namespaces every key of the wrapped store.
type Prefixed struct {
	store  Store
	prefix string
}

// WithPrefix returns store unchanged when prefix is empty.
func WithPrefix(store Store, prefix string) Store {
	if prefix == "" {
		return store
	}
	return &Prefixed{store: store, prefix: prefix}
}

func (p *Prefixed) Get(ctx context.Context, key string, dst any) (bool, error) {
	return p.store.Get(ctx, p.prefix+key, dst)
}

func (p *Prefixed) Set(ctx context.Context, key string, value any) error {
	return p.store.Set(ctx, p.prefix+key, value)
}

func (p *Prefixed) Remove(ctx context.Context, key string) error {
	return p.store.Remove(ctx, p.prefix+key)
}

// Clear wipes the whole underlying store, not only the prefixed keys.
func (p *Prefixed) Clear(ctx context.Context) error {
	return p.store.Clear(ctx)
}
