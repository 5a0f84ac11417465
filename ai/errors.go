package ai

import "errors"

var (
	// ErrModelLoad indicates the embedding client could not be initialized.
	// It is fatal: pipeline initialization must abort rather than return
	// partial state.
	ErrModelLoad = errors.New("embedding model load failed")

	// ErrEmptyEmbedding indicates the service returned no vector for a text.
	ErrEmptyEmbedding = errors.New("embedding service returned empty result")

	// ErrDimensionMismatch indicates a returned vector does not match the
	// configured dimensionality.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
