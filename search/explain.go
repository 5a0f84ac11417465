package search

import (
	"fmt"
	"strings"

	"github.com/omarkamelalwahsh/courseseek/core"
	"github.com/omarkamelalwahsh/courseseek/vocab"
)

// Explain produces human-readable reasons why a result matched the query
// keywords: skills the query asks for, keyword mentions in the title, and
// the semantic score band. Reasons never alter scores or ordering.
func Explain(result *core.Result, keywords []string) []string {
	var reasons []string
	course := result.Course

	for _, skill := range course.Skills {
		if keywordInText(skill, keywords) {
			reasons = append(reasons, fmt.Sprintf("covers %s", skill))
		}
	}

	if keywordInText(course.Title, keywords) {
		reasons = append(reasons, "title matches your topic")
	}

	switch {
	case result.Score >= 0.6:
		reasons = append(reasons, fmt.Sprintf("strong semantic match (%.2f)", result.Score))
	case result.Score >= 0.4:
		reasons = append(reasons, fmt.Sprintf("good semantic match (%.2f)", result.Score))
	default:
		reasons = append(reasons, fmt.Sprintf("related content (%.2f)", result.Score))
	}

	return reasons
}

// keywordInText reports whether any keyword occurs as a word in the text.
func keywordInText(text string, keywords []string) bool {
	tokens := make(map[string]bool)
	for _, token := range strings.Fields(vocab.NormalizeQuery(text)) {
		tokens[token] = true
	}
	for _, keyword := range keywords {
		if tokens[keyword] {
			return true
		}
	}
	return false
}
