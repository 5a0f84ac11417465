package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/omarkamelalwahsh/courseseek/core"
	"github.com/omarkamelalwahsh/courseseek/storage"
)

// CacheRepository implements storage.CacheStore for BadgerDB.
// Badger transactions commit atomically, so a reader never observes a
// partially written artifact.
type CacheRepository struct {
	backend *Backend
}

var _ storage.CacheStore = (*CacheRepository)(nil)

// NewCacheRepository creates a new CacheRepository.
func NewCacheRepository(backend *Backend) (*CacheRepository, error) {
	return &CacheRepository{
		backend: backend,
	}, nil
}

// GetEntry retrieves the cache entry for a fingerprint.
func (r *CacheRepository) GetEntry(ctx context.Context, fp core.Fingerprint) (*core.CacheEntry, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var entry *core.CacheEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCacheEntryKey(fp))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			entry, err = storage.UnmarshalCacheEntry(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// PutEntry stores a cache entry under its fingerprint.
func (r *CacheRepository) PutEntry(ctx context.Context, entry *core.CacheEntry) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if err := core.ValidateCacheEntry(entry); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeCacheEntryKey(entry.Fingerprint), storage.MarshalCacheEntry(entry)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteEntry removes the artifact for a fingerprint.
func (r *CacheRepository) DeleteEntry(ctx context.Context, fp core.Fingerprint) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeCacheEntryKey(fp)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Fingerprints lists the fingerprints with stored artifacts.
func (r *CacheRepository) Fingerprints(ctx context.Context) ([]core.Fingerprint, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var fps []core.Fingerprint
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(cacheEntryPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if fp := fingerprintFromKey(iter.Item().Key()); fp != "" {
				fps = append(fps, fp)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return fps, nil
}

// Close releases resources. CacheRepository has no resources of its own;
// the backend is closed separately by its owner.
func (r *CacheRepository) Close() error {
	return nil
}
