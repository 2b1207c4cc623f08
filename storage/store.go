// Package storage defines the string key-value port the ScoreMatch core
// persists through, plus the two stock implementations: a Redis-backed
// durable store and an in-memory volatile store.
package storage

import (
	"context"
	"errors"
)

// ErrUnavailable wraps backend failures from a concrete store. Callers
// treat it as "the write/read did not happen", never as corruption.
var ErrUnavailable = errors.New("storage backend unavailable")

// Store is a minimal string key-value port. Values are JSON documents;
// the port itself knows nothing about their shape. The second return of
// Get reports presence, so absent keys are not errors.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
