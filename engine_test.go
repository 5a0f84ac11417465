package courseseek

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarkamelalwahsh/courseseek/ai/mock"
	"github.com/omarkamelalwahsh/courseseek/catalog"
	"github.com/omarkamelalwahsh/courseseek/core"
	"github.com/omarkamelalwahsh/courseseek/search"
)

func TestNewEngine(t *testing.T) {
	t.Run("builds over fallback catalog", func(t *testing.T) {
		engine, err := NewEngine(context.Background(), catalog.FallbackCourses(), "",
			WithEmbedder(mock.NewMockEmbedder()))
		require.NoError(t, err)
		require.NotNil(t, engine)
		defer engine.Close()

		assert.NotEmpty(t, engine.Fingerprint())
		assert.NotEmpty(t, engine.Categories())
		assert.Len(t, engine.Courses(), len(catalog.FallbackCourses()))
	})

	t.Run("rejects empty catalog", func(t *testing.T) {
		_, err := NewEngine(context.Background(), nil, "",
			WithEmbedder(mock.NewMockEmbedder()))
		assert.ErrorIs(t, err, catalog.ErrEmptyDataset)
	})
}

func TestEngine_SearchEndToEnd(t *testing.T) {
	engine, err := NewEngine(context.Background(), catalog.FallbackCourses(), "",
		WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	defer engine.Close()

	outcome, err := engine.Search(context.Background(), search.Request{Query: "python data analysis"})
	require.NoError(t, err)
	require.Equal(t, search.StatusOK, outcome.Status)
	require.NotEmpty(t, outcome.Results)

	for _, r := range outcome.Results {
		assert.GreaterOrEqual(t, r.Score, float32(search.DefaultFloor))
		assert.GreaterOrEqual(t, r.Rank, 0)
		assert.LessOrEqual(t, r.Rank, 10)
	}
}

func TestEngine_SecondRunHitsCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	courses := catalog.FallbackCourses()
	ctx := context.Background()

	first := mock.NewMockEmbedder()
	engine, err := NewEngine(ctx, courses, dir, WithEmbedder(first))
	require.NoError(t, err)
	fp := engine.Fingerprint()
	require.NoError(t, engine.Close())
	require.Positive(t, first.CallCount())

	// Rebuilding over the same catalog must load the persisted artifact
	// without invoking the embedder for the catalog.
	second := mock.NewMockEmbedder()
	engine, err = NewEngine(ctx, courses, dir, WithEmbedder(second))
	require.NoError(t, err)
	defer engine.Close()

	assert.Equal(t, fp, engine.Fingerprint())
	assert.Zero(t, second.CallCount(), "cache hit must not re-embed the catalog")
}

func TestEngine_VocabularySurvivesCacheHit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	rows := []catalog.Row{
		{"title": "Natural Language Processing (NLP)", "description": "Tokenization and language models", "level": "advanced", "category": "Data Science"},
		{"title": "Intro to Statistics", "description": "Probability and inference", "level": "beginner", "category": "Data Science"},
	}
	courses, err := catalog.Normalize(rows)
	require.NoError(t, err)

	ctx := context.Background()
	engine, err := NewEngine(ctx, courses, dir, WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	require.Contains(t, engine.Vocabulary(), "nlp")
	require.NoError(t, engine.Close())

	engine, err = NewEngine(ctx, courses, dir, WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	defer engine.Close()

	assert.Equal(t, "natural language processing nlp", engine.Vocabulary()["nlp"])

	outcome, err := engine.Search(ctx, search.Request{Query: "nlp"})
	require.NoError(t, err)
	require.Equal(t, search.StatusOK, outcome.Status)
	require.NotEmpty(t, outcome.Results)
	assert.Contains(t, outcome.Results[0].Course.Title, "Natural Language Processing")
}

func TestEngine_Categories(t *testing.T) {
	courses := []core.Course{
		{Id: 1, Title: "A", Level: core.LevelBeginner, Category: "Cloud", CombinedText: "cloud"},
		{Id: 2, Title: "B", Level: core.LevelBeginner, Category: "cloud", CombinedText: "cloud"},
		{Id: 3, Title: "C", Level: core.LevelBeginner, Category: "Data Science", CombinedText: "data"},
	}

	engine, err := NewEngine(context.Background(), courses, "",
		WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	defer engine.Close()

	assert.Equal(t, []string{"Cloud", "Data Science"}, engine.Categories())
}
