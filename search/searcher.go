// Copyright 2025 Omar Alwahsh
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/omarkamelalwahsh/courseseek/ai"
	"github.com/omarkamelalwahsh/courseseek/core"
	"github.com/omarkamelalwahsh/courseseek/vocab"
)

// Request describes a single search call. Zero-valued fields are
// unconstrained; Limit <= 0 uses the configured default.
type Request struct {
	Query    string
	Level    core.Level
	Category string
	MinHours float64
	MaxHours float64
	Limit    int
}

// Status classifies a search outcome.
type Status int

const (
	// StatusOK means results were found.
	StatusOK Status = iota

	// StatusNoCandidates means the pre-filter left nothing to score.
	StatusNoCandidates

	// StatusRejected means the relevance gate refused to answer.
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoCandidates:
		return "no-candidates"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of a search call. Empty and rejected
// searches are variants here, never errors; Reason is human-readable and
// names the unmatched terms or the violated constraint.
type Outcome struct {
	Status    Status
	Reason    string
	Results   []core.Result
	Expansion vocab.Expansion
}

// Searcher runs the query pipeline against one immutable catalog snapshot.
// It holds borrowed references into the embedding artifact and never
// mutates cached vectors, so a single Searcher is safe for concurrent use.
type Searcher struct {
	courses  []core.Course
	vectors  map[core.ID][]float32
	abbr     core.AbbreviationMap
	embedder ai.Embedder
	config   *Config
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over a catalog and its embedding
// artifact. A nil config uses defaults.
func NewSearcher(courses []core.Course, entry *core.CacheEntry, embedder ai.Embedder, config *Config, opts ...Option) (*Searcher, error) {
	if len(courses) == 0 {
		return nil, ErrCoursesRequired
	}
	if entry == nil {
		return nil, ErrCacheEntryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = NewConfig()
	}

	s := &Searcher{
		courses:  courses,
		vectors:  entry.VectorsByID(),
		abbr:     entry.Abbreviations,
		embedder: embedder,
		config:   config,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search runs the full pipeline for one request.
func (s *Searcher) Search(ctx context.Context, req Request) (*Outcome, error) {
	return s.SearchWithMonitor(ctx, req, nil)
}

// SearchWithMonitor runs the full pipeline with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, req Request, monitor SearchMonitor) (*Outcome, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(req.Query)

	expansion := vocab.ExpandQuery(req.Query, s.abbr, &vocab.ExpandOptions{
		Stopwords:       s.config.Stopwords,
		AdvancedSignals: s.config.AdvancedSignals,
	})
	if expansion.Expanded == "" {
		return nil, ErrEmptyQuery
	}
	monitor.AfterExpansion(expansion)

	// Inferred level applies only when the caller set none.
	level := req.Level
	if level == core.LevelAny {
		level = expansion.InferredLevel
	}

	subset := PreFilter(s.courses, Filters{
		Level:    level,
		Category: req.Category,
		MinHours: req.MinHours,
		MaxHours: req.MaxHours,
	})
	ids := make([]core.ID, len(subset))
	for i := range subset {
		ids[i] = subset[i].Id
	}
	monitor.AfterPreFilter(ids)

	if len(subset) == 0 {
		outcome := &Outcome{
			Status:    StatusNoCandidates,
			Reason:    "no courses satisfy the requested filters",
			Expansion: expansion,
		}
		s.logger.Debug("pre-filter left no candidates", "query", req.Query, "level", level)
		monitor.Finish(outcome)
		return outcome, nil
	}

	queryVector, err := s.embedder.EmbedText(ctx, expansion.Expanded)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", req.Query, "err", err)
		return nil, err
	}

	scores := make(map[core.ID]float32)
	results := make([]core.Result, 0, len(subset))
	for i := range subset {
		vector, ok := s.vectors[subset[i].Id]
		if !ok {
			s.logger.Warn("course missing from embedding artifact", "id", subset[i].Id)
			continue
		}
		score := cosineSimilarity(queryVector, vector)
		scores[subset[i].Id] = score
		if score >= s.config.Floor {
			results = append(results, core.Result{Course: &subset[i], Score: score})
		}
	}
	monitor.AfterSimilarity(scores)

	// Arabic queries carry no Latin keywords; they are judged on the
	// similarity floor alone.
	var missing []string
	if !vocab.ContainsArabic(req.Query) {
		missing = missingKeywords(expansion.Keywords, subsetTokens(subset), s.abbr)
	}

	if len(results) == 0 {
		reason := "no courses scored above the relevance floor"
		if len(missing) > 0 {
			reason = "no matching content found for: " + strings.Join(missing, ", ")
		}
		outcome := &Outcome{
			Status:    StatusRejected,
			Reason:    reason,
			Expansion: expansion,
		}
		s.logger.Debug("relevance gate rejected query", "query", req.Query, "reason", reason)
		monitor.GateRejected(reason)
		monitor.Finish(outcome)
		return outcome, nil
	}

	results = Rank(results)

	limit := req.Limit
	if limit <= 0 {
		limit = s.config.Limit
	}
	if len(results) > limit {
		results = results[:limit]
	}

	outcome := &Outcome{
		Status:    StatusOK,
		Results:   results,
		Expansion: expansion,
	}
	monitor.Finish(outcome)
	return outcome, nil
}
