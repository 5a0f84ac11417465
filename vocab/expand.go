package vocab

import (
	"strings"
	"unicode"

	"github.com/omarkamelalwahsh/courseseek/core"
)

// DefaultStopwords is the conversational filler removed from queries before
// matching. Level words are included: they are stripped from the searchable
// text but still drive level inference. The set is configuration, not a
// linguistic model; tune it per deployment.
var DefaultStopwords = map[string]bool{
	"i": true, "want": true, "to": true, "learn": true,
	"course": true, "courses": true, "please": true, "me": true, "show": true,
	"find": true, "need": true, "looking": true, "about": true, "some": true,
	"a": true, "an": true, "the": true, "in": true, "of": true, "for": true,
	"and": true, "with": true, "on": true, "is": true, "am": true, "not": true,
	"advanced": true, "beginner": true, "intermediate": true,
}

// DefaultAdvancedSignals is the advanced-intent vocabulary used for
// implicit level inference.
var DefaultAdvancedSignals = map[string]bool{
	"advanced": true, "expert": true, "deep": true, "master": true,
	"professional": true,
}

// contractions are unfolded before punctuation stripping.
var contractions = map[string]string{
	"i'm": "i am", "i've": "i have", "i'd": "i would", "don't": "do not",
	"can't": "cannot", "won't": "will not", "it's": "it is",
	"what's": "what is", "let's": "let us",
}

// ExpandOptions tunes query expansion. A nil value means defaults.
type ExpandOptions struct {
	Stopwords       map[string]bool
	AdvancedSignals map[string]bool
}

// Expansion is the result of expanding a raw user query.
type Expansion struct {
	// Original is the raw query as supplied.
	Original string

	// Normalized is the cleaned query before stopword removal.
	Normalized string

	// Expanded is the searchable text: stopwords removed, abbreviations
	// substituted with the original token kept alongside the expansion.
	Expanded string

	// Keywords are the specific tokens the relevance gate checks for:
	// normalized tokens surviving stopword removal, longer than two runes.
	Keywords []string

	// InferredLevel is LevelAdvanced when the query overlaps the
	// advanced-intent vocabulary, LevelAny otherwise. Callers apply it only
	// when no explicit level was requested.
	InferredLevel core.Level
}

// NormalizeQuery lowercases, unfolds contractions, replaces punctuation
// with spaces and collapses whitespace. Arabic script is preserved.
func NormalizeQuery(raw string) string {
	text := strings.ToLower(strings.TrimSpace(raw))
	for from, to := range contractions {
		text = strings.ReplaceAll(text, from, to)
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ContainsArabic reports whether the text contains Arabic script. Such
// queries bypass Latin keyword gating downstream.
func ContainsArabic(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}

// ExpandText appends abbreviation expansions to document text wherever an
// abbreviation appears as a standalone token. The original text is kept
// intact so exact-match signal is preserved.
func ExpandText(text string, abbr core.AbbreviationMap) string {
	if len(abbr) == 0 {
		return text
	}

	var extra []string
	seen := make(map[string]bool)
	for _, token := range strings.Fields(NormalizeQuery(text)) {
		if expansion, ok := abbr[token]; ok && !seen[token] {
			seen[token] = true
			extra = append(extra, expansion)
		}
	}
	if len(extra) == 0 {
		return text
	}
	return text + " " + strings.Join(extra, " ")
}

// ExpandQuery cleans a raw query and expands it with the mined abbreviation
// map. Tokens matching a map key keep their original form and gain the
// expansion alongside it, so exact-match signal is never lost.
func ExpandQuery(raw string, abbr core.AbbreviationMap, opts *ExpandOptions) Expansion {
	stopwords := DefaultStopwords
	signals := DefaultAdvancedSignals
	if opts != nil {
		if opts.Stopwords != nil {
			stopwords = opts.Stopwords
		}
		if opts.AdvancedSignals != nil {
			signals = opts.AdvancedSignals
		}
	}

	normalized := NormalizeQuery(raw)
	tokens := strings.Fields(normalized)

	expanded := make([]string, 0, len(tokens)*2)
	keywords := make([]string, 0, len(tokens))
	level := core.LevelAny

	for _, token := range tokens {
		if signals[token] {
			level = core.LevelAdvanced
		}
		if stopwords[token] {
			continue
		}

		expanded = append(expanded, token)
		if expansion, ok := abbr[token]; ok {
			expanded = append(expanded, expansion)
		}
		if len([]rune(token)) > 2 {
			keywords = append(keywords, token)
		}
	}

	return Expansion{
		Original:      raw,
		Normalized:    normalized,
		Expanded:      strings.Join(expanded, " "),
		Keywords:      keywords,
		InferredLevel: level,
	}
}
