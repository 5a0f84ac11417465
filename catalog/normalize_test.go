package catalog

import (
	"strings"
	"testing"

	"github.com/omarkamelalwahsh/courseseek/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_RecognizedSchema(t *testing.T) {
	rows := []Row{
		{
			"course_id":      "7",
			"title":          "Advanced Machine Learning",
			"category":       "Data Science",
			"level":          "Advanced",
			"duration_hours": "25.5",
			"skills":         "Deep Learning|Neural Networks",
			"description":    "Master advanced ML concepts.",
		},
	}

	courses, err := Normalize(rows)
	require.NoError(t, err)
	require.Len(t, courses, 1)

	c := courses[0]
	assert.Equal(t, core.ID(7), c.Id)
	assert.Equal(t, "Advanced Machine Learning", c.Title)
	assert.Equal(t, core.LevelAdvanced, c.Level)
	assert.Equal(t, "Data Science", c.Category)
	assert.Equal(t, 25.5, c.DurationHours)
	assert.Equal(t, []string{"Deep Learning", "Neural Networks"}, c.Skills)
	assert.Contains(t, c.CombinedText, "Advanced Machine Learning")
	assert.Contains(t, c.CombinedText, "Deep Learning")
	assert.Contains(t, c.CombinedText, "Master advanced ML concepts.")
}

func TestNormalize_RepairsUnrecognizedSchema(t *testing.T) {
	rows := []Row{
		{
			"Course Title":      "Intro to Cloud",
			"Difficulty Rating": "junior",
			"Course Length":     "about 12 hours total",
			"Key Skills":        "AWS, Networking",
		},
	}

	courses, err := Normalize(rows)
	require.NoError(t, err)
	require.Len(t, courses, 1)

	c := courses[0]
	assert.Equal(t, "Intro to Cloud", c.Title)
	assert.Equal(t, core.LevelBeginner, c.Level)
	assert.Equal(t, DefaultCategory, c.Category)
	assert.Equal(t, 12.0, c.DurationHours)
	assert.Equal(t, []string{"AWS", "Networking"}, c.Skills)
	assert.NotZero(t, c.Id, "content ID should be derived when no id column exists")
}

func TestNormalize_Totality(t *testing.T) {
	// Every surviving course must carry a concrete level and a category.
	rows := []Row{
		{"title": "A", "level": "??", "category": ""},
		{"title": "B", "level": "", "category": "  "},
		{"title": "C"},
	}

	courses, err := Normalize(rows)
	require.NoError(t, err)
	require.Len(t, courses, 3)
	for _, c := range courses {
		assert.NotEqual(t, core.LevelAny, c.Level)
		assert.NotEmpty(t, c.Category)
		assert.NoError(t, core.ValidateCourse(&c))
	}
}

func TestNormalize_DurationAbsence(t *testing.T) {
	rows := []Row{
		{"title": "No digits", "duration": "self-paced"},
		{"title": "With digits", "duration": "6 weeks"},
	}

	courses, err := Normalize(rows)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, core.DurationUnknown, courses[0].DurationHours)
	assert.False(t, courses[0].HasDuration())
	assert.Equal(t, 6.0, courses[1].DurationHours)
}

func TestNormalize_StructuralFailures(t *testing.T) {
	t.Run("zero rows", func(t *testing.T) {
		_, err := Normalize(nil)
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	t.Run("no title-equivalent column", func(t *testing.T) {
		_, err := Normalize([]Row{{"price": "10", "category": "General"}})
		assert.ErrorIs(t, err, ErrSchema)
		assert.ErrorIs(t, err, ErrNoTitleColumn)
	})

	t.Run("all titles empty", func(t *testing.T) {
		_, err := Normalize([]Row{{"title": ""}, {"title": "   "}})
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})
}

func TestNormalize_DropsDuplicateIDs(t *testing.T) {
	rows := []Row{
		{"course_id": "1", "title": "First"},
		{"course_id": "1", "title": "Duplicate of first"},
		{"course_id": "2", "title": "Second"},
	}

	courses, err := Normalize(rows)
	require.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.Equal(t, "First", courses[0].Title)
}

func TestReadCSV(t *testing.T) {
	input := "title,level,duration_hours\n" +
		"Intro to SQL,Beginner,8\n" +
		"Advanced Go,expert,20\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Intro to SQL", rows[0]["title"])
	assert.Equal(t, "expert", rows[1]["level"])

	courses, err := Normalize(rows)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, core.LevelAdvanced, courses[1].Level)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestFallbackCourses(t *testing.T) {
	courses := FallbackCourses()
	require.Len(t, courses, 5)
	for i := range courses {
		assert.NoError(t, core.ValidateCourse(&courses[i]))
		assert.NotEmpty(t, courses[i].CombinedText)
	}
}

func TestNormalize_ColumnSelectionIsDeterministic(t *testing.T) {
	// Two columns from the same family: course_id must win over id, and
	// the choice must not drift with map iteration order.
	rows := []Row{
		{
			"title":     "Distributed Systems",
			"id":        "5",
			"course_id": "900",
			"level":     "advanced",
		},
	}

	first, err := Normalize(rows)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, core.ID(900), first[0].Id, "course_id takes priority over id")

	fp := FingerprintCourses(first)
	for range 100 {
		courses, err := Normalize(rows)
		require.NoError(t, err)
		assert.Equal(t, core.ID(900), courses[0].Id)
		assert.Equal(t, fp, FingerprintCourses(courses),
			"an unchanged dataset must keep the same fingerprint")
	}
}

func TestNormalize_AmbiguousTitleColumnStable(t *testing.T) {
	rows := []Row{
		{
			"title":       "Kept Title",
			"course_name": "Shadowed Title",
			"level":       "beginner",
		},
	}

	for range 100 {
		courses, err := Normalize(rows)
		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, "Kept Title", courses[0].Title)
	}
}
