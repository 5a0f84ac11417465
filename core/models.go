package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for catalog entries.
// It is taken from the source data when present, or generated from content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Fingerprint identifies a dataset version for cache keying.
// It is derived from normalized field values, not raw file bytes, so
// formatting-only differences do not change it.
type Fingerprint string

// Level is the difficulty level of a course.
type Level int

const (
	// LevelAny matches every level. Only valid as a filter value.
	LevelAny Level = iota
	// LevelBeginner is the default level for unrecognized input.
	LevelBeginner
	// LevelIntermediate represents mid-level courses.
	LevelIntermediate
	// LevelAdvanced represents expert-level courses.
	LevelAdvanced
)

// String returns the canonical display name of the level.
func (l Level) String() string {
	switch l {
	case LevelBeginner:
		return "Beginner"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	default:
		return "Any"
	}
}

// Matches reports whether a course level satisfies a filter level.
func (l Level) Matches(filter Level) bool {
	return filter == LevelAny || l == filter
}

// NormalizeLevel maps arbitrary level text from a dataset to a concrete level.
// Unrecognized values fall back to LevelBeginner, never to LevelAny, so every
// normalized course carries a usable level.
func NormalizeLevel(s string) Level {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(v, "expert"), strings.Contains(v, "advanced"), strings.Contains(v, "deep"):
		return LevelAdvanced
	case strings.Contains(v, "inter"), strings.Contains(v, "mid"):
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// ParseLevel parses a user-supplied filter value.
// Empty input and "any" mean no level constraint.
func ParseLevel(s string) Level {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "any" || v == "all" {
		return LevelAny
	}
	return NormalizeLevel(v)
}

// DurationUnknown marks a course whose duration could not be extracted.
const DurationUnknown float64 = -1

// Course is a normalized catalog entry.
// Instances are immutable after normalization and safely shared across
// concurrent searches.
type Course struct {
	Id            ID
	Title         string
	Description   string
	Skills        []string
	Level         Level
	Category      string
	DurationHours float64 // hours, or DurationUnknown
	CombinedText  string  // derived: title + skills + description
}

// HasDuration reports whether the course carries a usable duration.
func (c *Course) HasDuration() bool {
	return c.DurationHours >= 0
}

// AbbreviationMap maps a lowercase acronym to its expansion. The expansion
// always contains the acronym itself, so substituting it reinforces rather
// than replaces the original term.
type AbbreviationMap map[string]string

// CacheEntry holds the persisted embedding artifact for one dataset version.
// CourseIds and Vectors are parallel slices in catalog order.
type CacheEntry struct {
	Fingerprint   Fingerprint
	Dimension     int
	CourseIds     []ID
	Vectors       [][]float32
	Abbreviations AbbreviationMap
	CreatedAt     time.Time
}

// VectorsByID builds a lookup from course ID to its embedding.
// The returned map borrows the entry's vectors; callers must not mutate them.
func (e *CacheEntry) VectorsByID() map[ID][]float32 {
	m := make(map[ID][]float32, len(e.CourseIds))
	for i, id := range e.CourseIds {
		if i < len(e.Vectors) {
			m[id] = e.Vectors[i]
		}
	}
	return m
}

// Result is a single ranked search hit.
type Result struct {
	Course *Course
	Score  float32 // raw cosine similarity, floor-clamped to [0,1]
	Rank   int     // min-max rescaled integer rank, 0-10
}
