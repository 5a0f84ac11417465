package cache

import "errors"

var (
	// ErrStoreRequired is returned when no cache store is provided.
	ErrStoreRequired = errors.New("cache store is required")

	// ErrEmbedderRequired is returned when no embedder is provided.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrEmbeddingCountMismatch is returned when the embedder yields a
	// different number of vectors than texts submitted.
	ErrEmbeddingCountMismatch = errors.New("embedding count mismatch")
)
