package badger

import (
	"strings"

	"github.com/omarkamelalwahsh/courseseek/core"
)

// Key prefix for cache entries. Fingerprints are hex, so ":" is a safe
// separator.
const cacheEntryPrefix = "veccache"

// makeCacheEntryKey generates the storage key for a fingerprint.
func makeCacheEntryKey(fp core.Fingerprint) []byte {
	return []byte(cacheEntryPrefix + ":" + string(fp))
}

// fingerprintFromKey recovers the fingerprint from a storage key.
func fingerprintFromKey(key []byte) core.Fingerprint {
	s := string(key)
	if rest, ok := strings.CutPrefix(s, cacheEntryPrefix+":"); ok {
		return core.Fingerprint(rest)
	}
	return ""
}
