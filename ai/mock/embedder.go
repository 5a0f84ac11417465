// Package mock provides a test double for the ai.Embedder interface.
//
// The default behavior is a hashed bag-of-words embedding: each token is
// hashed into a fixed-dimension bucket and the vector is L2-normalized.
// Texts that share tokens therefore score high cosine similarity and
// unrelated texts score near zero, which lets pipeline tests exercise real
// ranking behavior without an embedding service.
package mock

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"sync"
)

// Dimension is the dimensionality of vectors produced by the mock.
// It mirrors the default production dimension.
const Dimension = 384

// MockEmbedder is a test double for ai.Embedder.
// It allows custom behavior injection via function fields.
type MockEmbedder struct {
	// EmbedTextFunc is called by EmbedText if set.
	// If nil, uses the default bag-of-words behavior.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc is called by EmbedTexts if set.
	// If nil, uses the default bag-of-words behavior.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	mu        sync.Mutex
	callCount int
}

// NewMockEmbedder creates a mock embedder with default deterministic behavior.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedText generates a deterministic bag-of-words embedding.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.incr()

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return bagOfWordsVector(text), nil
}

// EmbedTexts generates deterministic embeddings for multiple texts.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.incr()

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = bagOfWordsVector(text)
	}
	return vectors, nil
}

// CallCount returns the number of times any embed method was called.
func (m *MockEmbedder) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockEmbedder) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}

func (m *MockEmbedder) incr() {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()
}

// bagOfWordsVector hashes each token into one of Dimension buckets and
// L2-normalizes the result. Shared tokens between texts produce shared
// buckets, so cosine similarity tracks lexical overlap.
func bagOfWordsVector(text string) []float32 {
	vector := make([]float32, Dimension)
	for _, token := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vector[h.Sum32()%Dimension]++
	}

	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares > 0 {
		norm := float32(math.Sqrt(sumSquares))
		for i := range vector {
			vector[i] /= norm
		}
	}
	return vector
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}
