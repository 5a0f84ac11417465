package search

import (
	"strings"

	"github.com/omarkamelalwahsh/courseseek/core"
	"github.com/omarkamelalwahsh/courseseek/vocab"
)

// subsetTokens builds the set of normalized word tokens occurring anywhere
// in the combined text of the subset.
func subsetTokens(subset []core.Course) map[string]bool {
	tokens := make(map[string]bool)
	for i := range subset {
		for _, token := range strings.Fields(vocab.NormalizeQuery(subset[i].CombinedText)) {
			tokens[token] = true
		}
	}
	return tokens
}

// missingKeywords returns the query keywords with no word match in the
// subset tokens. A keyword carrying an abbreviation expansion counts as
// matched when any word of the expansion appears.
func missingKeywords(keywords []string, tokens map[string]bool, abbr core.AbbreviationMap) []string {
	var missing []string
	for _, keyword := range keywords {
		if tokens[keyword] {
			continue
		}
		if matchesExpansion(keyword, tokens, abbr) {
			continue
		}
		missing = append(missing, keyword)
	}
	return missing
}

func matchesExpansion(keyword string, tokens map[string]bool, abbr core.AbbreviationMap) bool {
	expansion, ok := abbr[keyword]
	if !ok {
		return false
	}
	for _, word := range strings.Fields(expansion) {
		if tokens[word] {
			return true
		}
	}
	return false
}
