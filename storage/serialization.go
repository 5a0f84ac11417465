package storage

import (
	"fmt"

	"github.com/omarkamelalwahsh/courseseek/core"
)

// MarshalCacheEntry serializes a CacheEntry to bytes.
func MarshalCacheEntry(entry *core.CacheEntry) []byte {
	buf := make([]byte, core.CacheEntryMUS.Size(*entry))
	core.CacheEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalCacheEntry deserializes a CacheEntry from bytes.
// Decoding failures and invalid entries are reported as ErrCacheCorrupt.
func UnmarshalCacheEntry(data []byte) (*core.CacheEntry, error) {
	entry, _, err := core.CacheEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheCorrupt, err)
	}
	if err := core.ValidateCacheEntry(&entry); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheCorrupt, err)
	}
	return &entry, nil
}
