package search

import (
	"strings"

	"github.com/omarkamelalwahsh/courseseek/core"
)

// Filters holds the hard attribute constraints applied before scoring.
// Zero values mean unconstrained.
type Filters struct {
	Level    core.Level
	Category string
	MinHours float64
	MaxHours float64
}

// PreFilter returns the subset of courses satisfying every constraint.
// Pure attribute masking, no ranking semantics. Courses with an unknown
// duration are excluded whenever a duration bound is active, since the
// bound cannot be verified for them.
func PreFilter(courses []core.Course, f Filters) []core.Course {
	category := strings.ToLower(strings.TrimSpace(f.Category))
	boundDuration := f.MinHours > 0 || f.MaxHours > 0

	subset := make([]core.Course, 0, len(courses))
	for i := range courses {
		c := &courses[i]

		if !c.Level.Matches(f.Level) {
			continue
		}
		if category != "" && strings.ToLower(c.Category) != category {
			continue
		}
		if boundDuration {
			if !c.HasDuration() {
				continue
			}
			if f.MinHours > 0 && c.DurationHours < f.MinHours {
				continue
			}
			if f.MaxHours > 0 && c.DurationHours > f.MaxHours {
				continue
			}
		}

		subset = append(subset, *c)
	}
	return subset
}
