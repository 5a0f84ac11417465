package search

import (
	"math"
	"sort"

	"github.com/omarkamelalwahsh/courseseek/core"
)

// Rank orders results by descending raw score (ties broken by ascending
// course id) and rescales the surviving scores to integer ranks 0-10 using
// min-max normalization. A single result, or a set where every score is
// equal, maps to rank 10.
func Rank(results []core.Result) []core.Result {
	if len(results) == 0 {
		return results
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Course.Id < results[j].Course.Id
	})

	minScore := results[len(results)-1].Score
	maxScore := results[0].Score
	spread := maxScore - minScore

	for i := range results {
		if spread == 0 {
			results[i].Rank = 10
			continue
		}
		normalized := float64(results[i].Score-minScore) / float64(spread)
		results[i].Rank = int(math.Round(normalized * 10))
	}
	return results
}

// PostFilter re-slices an already-ranked list by an attribute predicate.
// Scores and ranks are untouched; no re-scoring happens.
func PostFilter(results []core.Result, keep func(*core.Result) bool) []core.Result {
	filtered := make([]core.Result, 0, len(results))
	for i := range results {
		if keep(&results[i]) {
			filtered = append(filtered, results[i])
		}
	}
	return filtered
}

// ShortestN keeps the n shortest courses with a known duration, preserving
// rank order among them.
func ShortestN(results []core.Result, n int) []core.Result {
	withDuration := PostFilter(results, func(r *core.Result) bool {
		return r.Course.HasDuration()
	})

	byDuration := make([]core.Result, len(withDuration))
	copy(byDuration, withDuration)
	sort.SliceStable(byDuration, func(i, j int) bool {
		return byDuration[i].Course.DurationHours < byDuration[j].Course.DurationHours
	})
	if n < len(byDuration) {
		byDuration = byDuration[:n]
	}

	keep := make(map[core.ID]bool, len(byDuration))
	for i := range byDuration {
		keep[byDuration[i].Course.Id] = true
	}
	return PostFilter(results, func(r *core.Result) bool {
		return keep[r.Course.Id]
	})
}

// ByCategory keeps results in the given category, case-insensitively.
func ByCategory(results []core.Result, category string) []core.Result {
	want := normalizeCategoryKey(category)
	return PostFilter(results, func(r *core.Result) bool {
		return normalizeCategoryKey(r.Course.Category) == want
	})
}

func normalizeCategoryKey(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r == ' ' || r == '-' || r == '_' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
