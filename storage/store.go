// Package storage persists the ledger to a local key-value store.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned by stores used after Close.
var ErrClosed = errors.New("store is closed")

// Entry is a key and its value.
type Entry struct {
	Key   string
	Value string
}

// Store is a durable string key-value store.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put writes every entry or none of them.
	Put(ctx context.Context, entries ...Entry) error
	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
