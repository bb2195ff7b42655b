package blobstore

import (
	"context"
	"errors"
)

// ErrNoBlob indicates no blob exists under the requested key.
var ErrNoBlob = errors.New("no blob under key")

// Store persists opaque collection snapshots by key. Each collection
// serializes its full state into a single blob on every mutation, so the
// store only needs whole-value semantics.
type Store interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Clear(ctx context.Context, key string) error
	Close() error
}
