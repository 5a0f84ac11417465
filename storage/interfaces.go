package storage

import (
	"context"

	"github.com/omarkamelalwahsh/courseseek/core"
)

// CacheStore persists embedding artifacts keyed by dataset fingerprint.
// Implementations must be thread-safe and must commit writes atomically.
type CacheStore interface {
	// GetEntry retrieves the cache entry for a fingerprint.
	// Returns ErrNotFound if no entry exists and ErrCacheCorrupt if the
	// stored artifact cannot be deserialized.
	GetEntry(ctx context.Context, fp core.Fingerprint) (*core.CacheEntry, error)

	// PutEntry stores a cache entry under its fingerprint, replacing any
	// previous artifact for the same fingerprint.
	PutEntry(ctx context.Context, entry *core.CacheEntry) error

	// DeleteEntry removes the artifact for a fingerprint.
	// Deleting a missing entry is not an error.
	DeleteEntry(ctx context.Context, fp core.Fingerprint) error

	// Fingerprints lists the fingerprints with stored artifacts.
	Fingerprints(ctx context.Context) ([]core.Fingerprint, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
