package vocab

import (
	"regexp"
	"strings"

	"github.com/omarkamelalwahsh/courseseek/core"
)

// parentheticalRe matches a short acronym in parentheses, e.g. "(NLP)".
var parentheticalRe = regexp.MustCompile(`\(([A-Za-z]{2,5})\)`)

// uppercaseTokenRe matches free-standing all-uppercase tokens of length 2-5.
var uppercaseTokenRe = regexp.MustCompile(`\b([A-Z]{2,5})\b`)

// MineAbbreviations scans normalized courses for acronym-to-expansion pairs.
//
// Two patterns are recognized:
//   - a parenthetical acronym following a longer phrase, e.g.
//     "Natural Language Processing (NLP)" binds nlp -> "natural language processing nlp"
//   - a free-standing uppercase token whose spelled-out form appears
//     elsewhere in the same record's text
//
// The map is additive across records; the first-seen expansion for an
// acronym wins, which keeps the result deterministic for a stable input
// ordering. Expansions always contain the acronym itself, so substituting
// them reinforces rather than replaces the term.
func MineAbbreviations(courses []core.Course) core.AbbreviationMap {
	abbr := make(core.AbbreviationMap)
	for i := range courses {
		mineCourse(&courses[i], abbr)
	}
	return abbr
}

func mineCourse(c *core.Course, abbr core.AbbreviationMap) {
	sources := make([]string, 0, len(c.Skills)+1)
	sources = append(sources, c.Title)
	sources = append(sources, c.Skills...)

	for _, text := range sources {
		mineParenthetical(text, abbr)
	}
	for _, text := range sources {
		mineSpelledOut(text, c.CombinedText, abbr)
	}
}

// mineParenthetical binds "... Longer Phrase (ACRO)" occurrences. The
// expansion takes the words directly before the parenthesis, one per
// acronym letter.
func mineParenthetical(text string, abbr core.AbbreviationMap) {
	for _, match := range parentheticalRe.FindAllStringSubmatchIndex(text, -1) {
		acro := strings.ToLower(text[match[2]:match[3]])
		if _, exists := abbr[acro]; exists {
			continue
		}

		phrase := precedingWords(text[:match[0]], len(acro))
		if len(phrase) == 0 {
			continue
		}
		abbr[acro] = strings.ToLower(strings.Join(phrase, " ")) + " " + acro
	}
}

// mineSpelledOut binds free-standing uppercase tokens whose initials are
// spelled out somewhere else in the record, e.g. a skill "NLP" with
// "natural language processing" in the description.
func mineSpelledOut(text, recordText string, abbr core.AbbreviationMap) {
	words := tokenizeWords(recordText)
	for _, match := range uppercaseTokenRe.FindAllString(text, -1) {
		acro := strings.ToLower(match)
		if _, exists := abbr[acro]; exists {
			continue
		}

		phrase := findSpelledOut(words, acro)
		if len(phrase) == 0 {
			continue
		}
		abbr[acro] = strings.Join(phrase, " ") + " " + acro
	}
}

// precedingWords returns up to n trailing words of text, in order.
func precedingWords(text string, n int) []string {
	words := tokenizeWords(text)
	if len(words) < n {
		n = len(words)
	}
	return words[len(words)-n:]
}

// findSpelledOut scans word windows for a phrase whose initials spell the
// acronym. The window must be actual words, not the acronym itself.
func findSpelledOut(words []string, acro string) []string {
	n := len(acro)
	if n < 2 || len(words) < n {
		return nil
	}
outer:
	for i := 0; i+n <= len(words); i++ {
		window := words[i : i+n]
		for j, w := range window {
			if len(w) <= 1 || w[0] != acro[j] || w == acro {
				continue outer
			}
		}
		return window
	}
	return nil
}

func tokenizeWords(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return fields
}
