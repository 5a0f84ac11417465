package catalog

import "github.com/omarkamelalwahsh/courseseek/core"

// FallbackCourses returns the built-in catalog used when the configured
// dataset cannot be loaded. It is small but spans the level and category
// vocabulary, so the pipeline stays demonstrable without external data.
func FallbackCourses() []core.Course {
	courses := []core.Course{
		{
			Id:            1,
			Title:         "Python for Beginners",
			Category:      "Programming",
			Level:         core.LevelBeginner,
			DurationHours: 10.5,
			Skills:        []string{"Python", "Basic Syntax", "Loops"},
			Description:   "Learn Python programming from scratch.",
		},
		{
			Id:            2,
			Title:         "Advanced Machine Learning",
			Category:      "Data Science",
			Level:         core.LevelAdvanced,
			DurationHours: 25.0,
			Skills:        []string{"Deep Learning", "Neural Networks", "TensorFlow", "NLP"},
			Description:   "Master advanced ML concepts and frameworks including Natural Language Processing (NLP).",
		},
		{
			Id:            3,
			Title:         "Web Development Bootcamp",
			Category:      "Web Development",
			Level:         core.LevelIntermediate,
			DurationHours: 40.0,
			Skills:        []string{"HTML", "CSS", "JavaScript", "React"},
			Description:   "Complete guide to modern web development.",
		},
		{
			Id:            4,
			Title:         "Data Analysis with Pandas",
			Category:      "Data Science",
			Level:         core.LevelIntermediate,
			DurationHours: 12.0,
			Skills:        []string{"Pandas", "NumPy", "Data Cleaning"},
			Description:   "Analyze real-world data using Python libraries.",
		},
		{
			Id:            5,
			Title:         "Introduction to SQL",
			Category:      "Database",
			Level:         core.LevelBeginner,
			DurationHours: 8.0,
			Skills:        []string{"SQL", "Database Design", "Querying"},
			Description:   "Learn to manage and query relational databases.",
		},
	}
	for i := range courses {
		courses[i].CombinedText = CombinedText(&courses[i])
	}
	return courses
}
