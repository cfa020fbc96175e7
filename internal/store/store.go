package store

import (
	"context"
)

// Key identifies one stored design system blob.
type Key struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Store is the persistence contract of the client proxy: a key-value store
// of serialized design system blobs keyed by (name, version). Load reports a
// miss through its bool, not an error.
type Store interface {
	Save(ctx context.Context, name, version string, blob []byte) error
	Load(ctx context.Context, name, version string) ([]byte, bool, error)
	List(ctx context.Context) ([]Key, error)
	Remove(ctx context.Context, name, version string) error
}
