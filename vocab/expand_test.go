package vocab

import (
	"strings"
	"testing"

	"github.com/omarkamelalwahsh/courseseek/core"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  I want to LEARN Python!  ", "i want to learn python"},
		{"what's machine-learning?", "what is machine learning"},
		{"c++ & go", "c go"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeQuery(tt.input), "input %q", tt.input)
	}
}

func TestContainsArabic(t *testing.T) {
	assert.True(t, ContainsArabic("دورة بايثون"))
	assert.False(t, ContainsArabic("python course"))
	assert.False(t, ContainsArabic(""))
}

func TestExpandQuery_StopwordsRemoved(t *testing.T) {
	exp := ExpandQuery("I want to learn python please", nil, nil)
	assert.Equal(t, "python", exp.Expanded)
	assert.Equal(t, []string{"python"}, exp.Keywords)
	assert.Equal(t, core.LevelAny, exp.InferredLevel)
}

func TestExpandQuery_AbbreviationKeepsOriginalToken(t *testing.T) {
	abbr := core.AbbreviationMap{"ml": "machine learning ml"}

	exp := ExpandQuery("ML", abbr, nil)
	assert.Equal(t, "ml machine learning ml", exp.Expanded)
	assert.Empty(t, exp.Keywords, "two-letter tokens are not gate keywords")
}

func TestExpandQuery_AdvancedIntent(t *testing.T) {
	exp := ExpandQuery("advanced machine learning course", nil, nil)
	assert.Equal(t, core.LevelAdvanced, exp.InferredLevel)
	// "advanced" is an intent signal, not searchable text.
	assert.Equal(t, "machine learning", exp.Expanded)
	assert.Equal(t, []string{"machine", "learning"}, exp.Keywords)

	exp = ExpandQuery("deep reinforcement learning", nil, nil)
	assert.Equal(t, core.LevelAdvanced, exp.InferredLevel)
}

func TestExpandQuery_CustomOptions(t *testing.T) {
	opts := &ExpandOptions{
		Stopwords:       map[string]bool{"foo": true},
		AdvancedSignals: map[string]bool{"hardcore": true},
	}

	exp := ExpandQuery("foo hardcore python", nil, opts)
	assert.Equal(t, core.LevelAdvanced, exp.InferredLevel)
	assert.Equal(t, "hardcore python", exp.Expanded)
	assert.NotContains(t, exp.Expanded, "foo")
}

func TestExpandQuery_EmptyQuery(t *testing.T) {
	exp := ExpandQuery("   ", nil, nil)
	assert.Empty(t, exp.Expanded)
	assert.Empty(t, exp.Keywords)
	assert.Equal(t, core.LevelAny, exp.InferredLevel)
}

func TestExpandText(t *testing.T) {
	abbr := core.AbbreviationMap{"nlp": "natural language processing nlp"}

	t.Run("appends expansion for present abbreviation", func(t *testing.T) {
		out := ExpandText("Hands-on NLP projects", abbr)
		assert.Equal(t, "Hands-on NLP projects natural language processing nlp", out)
	})

	t.Run("appends each expansion once", func(t *testing.T) {
		out := ExpandText("NLP and more NLP", abbr)
		assert.Equal(t, 1, strings.Count(out, "natural language processing"))
	})

	t.Run("no abbreviation leaves text untouched", func(t *testing.T) {
		assert.Equal(t, "cloud security", ExpandText("cloud security", abbr))
		assert.Equal(t, "cloud security", ExpandText("cloud security", nil))
	})
}
