package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cosine(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func TestMockEmbedder_SimilarityTracksOverlap(t *testing.T) {
	m := NewMockEmbedder()
	ctx := context.Background()

	vectors, err := m.EmbedTexts(ctx, []string{
		"machine learning with python",
		"advanced machine learning",
		"french cooking recipes",
	})
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	related := cosine(vectors[0], vectors[1])
	unrelated := cosine(vectors[0], vectors[2])
	assert.Greater(t, related, unrelated,
		"texts sharing tokens must score higher than disjoint texts")
	assert.Less(t, unrelated, float32(0.25))
}

func TestMockEmbedder_Deterministic(t *testing.T) {
	m := NewMockEmbedder()
	ctx := context.Background()

	a, err := m.EmbedText(ctx, "data analysis")
	require.NoError(t, err)
	b, err := m.EmbedText(ctx, "data analysis")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, Dimension)
}

func TestMockEmbedder_CallCount(t *testing.T) {
	m := NewMockEmbedder()
	ctx := context.Background()

	_, _ = m.EmbedText(ctx, "one")
	_, _ = m.EmbedTexts(ctx, []string{"two", "three"})
	assert.Equal(t, 2, m.CallCount())

	m.Reset()
	assert.Equal(t, 0, m.CallCount())
}
