package catalog

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/omarkamelalwahsh/courseseek/core"
)

// Row is an untyped catalog row as read from tabular input, keyed by the
// source column name.
type Row map[string]string

// Column name fragments recognized during schema repair, in priority order.
var (
	titleColumns       = []string{"title", "course_name", "name"}
	idColumns          = []string{"course_id", "id"}
	categoryColumns    = []string{"category", "topic", "subject"}
	levelColumns       = []string{"level", "difficulty"}
	durationColumns    = []string{"duration", "hours", "length"}
	skillsColumns      = []string{"skills", "tags", "keywords"}
	descriptionColumns = []string{"description", "summary", "about"}
)

var durationRe = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// DefaultCategory is assigned to rows without a recognizable category.
const DefaultCategory = "General"

// Normalize repairs arbitrary tabular rows into canonical Course records.
// It is total over recoverable defects: missing categories, levels, durations
// and identifiers are defaulted or derived, and rows without a title are
// dropped. It fails only when the input is structurally unrecoverable: no
// rows, no title-equivalent column, or nothing left after repair.
func Normalize(rows []Row) ([]core.Course, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	titleCol := findColumn(rows, titleColumns)
	if titleCol == "" {
		return nil, fmt.Errorf("%w: %w", ErrSchema, ErrNoTitleColumn)
	}

	idCol := findColumn(rows, idColumns)
	categoryCol := findColumn(rows, categoryColumns)
	levelCol := findColumn(rows, levelColumns)
	durationCol := findColumn(rows, durationColumns)
	skillsCol := findColumn(rows, skillsColumns)
	descriptionCol := findColumn(rows, descriptionColumns)

	courses := make([]core.Course, 0, len(rows))
	seen := make(map[core.ID]bool, len(rows))
	for _, row := range rows {
		title := strings.TrimSpace(row[titleCol])
		if title == "" {
			continue
		}

		course := core.Course{
			Title:         title,
			Description:   strings.TrimSpace(row[descriptionCol]),
			Skills:        splitSkills(row[skillsCol]),
			Level:         core.NormalizeLevel(row[levelCol]),
			Category:      normalizeCategory(row[categoryCol]),
			DurationHours: extractDuration(row[durationCol]),
		}
		course.Id = rowID(row[idCol], &course)
		course.CombinedText = CombinedText(&course)

		if err := core.ValidateCourse(&course); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSchema, err)
		}
		if seen[course.Id] {
			continue
		}
		seen[course.Id] = true
		courses = append(courses, course)
	}

	if len(courses) == 0 {
		return nil, ErrEmptyDataset
	}
	return courses, nil
}

// CombinedText derives the single text used for embedding and keyword
// matching: title, skills and description concatenated.
func CombinedText(c *core.Course) string {
	return fmt.Sprintf("%s. Skills: %s. %s", c.Title, strings.Join(c.Skills, ", "), c.Description)
}

// findColumn locates the column matching one of the candidate fragments.
// Candidates are tried in priority order; exact matches win over substring
// matches. Header names are scanned in sorted order so the selection is
// stable across runs regardless of map iteration — the fingerprint of an
// unchanged dataset must never move.
func findColumn(rows []Row, candidates []string) string {
	if len(rows) == 0 {
		return ""
	}

	names := make([]string, 0, len(rows[0]))
	for name := range rows[0] {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, candidate := range candidates {
		for _, name := range names {
			if strings.ToLower(strings.TrimSpace(name)) == candidate {
				return name
			}
		}
	}
	for _, candidate := range candidates {
		for _, name := range names {
			if strings.Contains(strings.ToLower(strings.TrimSpace(name)), candidate) {
				return name
			}
		}
	}
	return ""
}

func normalizeCategory(raw string) string {
	category := strings.TrimSpace(raw)
	if category == "" {
		return DefaultCategory
	}
	return category
}

// extractDuration pulls the first run of digits (with an optional decimal
// part) out of a free-text duration field. Absence of digits is not an
// error; it yields the unknown marker.
func extractDuration(raw string) float64 {
	match := durationRe.FindString(raw)
	if match == "" {
		return core.DurationUnknown
	}
	hours, err := strconv.ParseFloat(match, 64)
	if err != nil || hours < 0 {
		return core.DurationUnknown
	}
	return hours
}

// splitSkills tokenizes a skills field. Both "|" and "," separators occur in
// the wild.
func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '|' || r == ','
	})
	skills := make([]string, 0, len(fields))
	for _, f := range fields {
		if s := strings.TrimSpace(f); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// rowID uses the source identifier when it parses, otherwise derives a
// stable content ID so repeated loads assign the same identity.
func rowID(raw string, course *core.Course) core.ID {
	if v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64); err == nil && v > 0 {
		return core.ID(v)
	}
	return core.IDFromContent(course.Title + "\x00" + course.Description)
}
