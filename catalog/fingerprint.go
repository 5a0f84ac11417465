package catalog

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/go-crypt/x/blake2b"
	"github.com/omarkamelalwahsh/courseseek/core"
)

// FingerprintCourses computes the dataset fingerprint over normalized field
// values. Per-course content lines are sorted before hashing, so two
// datasets with identical normalized content resolve to the same
// fingerprint regardless of row order. Any content mutation yields a new
// fingerprint and therefore a new cache entry.
func FingerprintCourses(courses []core.Course) core.Fingerprint {
	lines := make([]string, len(courses))
	for i := range courses {
		lines[i] = fingerprintLine(&courses[i])
	}
	sort.Strings(lines)

	h, _ := blake2b.New(16, nil)
	for _, line := range lines {
		h.Write([]byte(line))
		h.Write([]byte{'\n'})
	}
	return core.Fingerprint(hex.EncodeToString(h.Sum(nil)))
}

func fingerprintLine(c *core.Course) string {
	return fmt.Sprintf("%d\x1f%s\x1f%s\x1f%s\x1f%s\x1f%g\x1f%s",
		c.Id, c.Title, c.Level, c.Category,
		strings.Join(c.Skills, "|"), c.DurationHours, c.Description)
}
