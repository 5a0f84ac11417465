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


package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/sync/singleflight"

	"github.com/omarkamelalwahsh/courseseek/ai"
	"github.com/omarkamelalwahsh/courseseek/catalog"
	"github.com/omarkamelalwahsh/courseseek/core"
	"github.com/omarkamelalwahsh/courseseek/storage"
	"github.com/omarkamelalwahsh/courseseek/vocab"
)

// Config holds configuration for artifact rebuilds.
type Config struct {
	// BatchSize is the number of courses embedded per embedder call
	BatchSize int

	// ReportInterval is how often to report progress (number of courses)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for embedding calls
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// PoolSize is the number of concurrent embedding workers
	PoolSize int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	return &Config{
		BatchSize:      32,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
		PoolSize:       poolSize,
	}
}

// Manager resolves the embedding artifact for a catalog, rebuilding it when
// the fingerprint has no stored entry. Concurrent resolves of the same
// fingerprint are collapsed into a single rebuild.
type Manager struct {
	store    storage.CacheStore
	embedder ai.Embedder
	config   *Config
	pool     *ants.Pool
	group    singleflight.Group
	progress io.Writer
	logger   *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// WithProgress sets the writer for rebuild progress output.
// Default is io.Discard.
func WithProgress(w io.Writer) Option {
	return func(m *Manager) error {
		if w == nil {
			w = io.Discard
		}
		m.progress = w
		return nil
	}
}

// NewManager creates a new cache manager. A nil config uses defaults.
func NewManager(store storage.CacheStore, embedder ai.Embedder, config *Config, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}

	pool, err := ants.NewPool(config.PoolSize)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		store:    store,
		embedder: embedder,
		config:   config,
		pool:     pool,
		progress: io.Discard,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(m); optErr != nil {
			m.Release()
			return nil, optErr
		}
	}

	return m, nil
}

// Release releases the worker pool.
// The manager should not be used after calling Release.
func (m *Manager) Release() {
	if m.pool != nil {
		m.pool.Release()
	}
}

// Resolve returns the embedding artifact for the given catalog, computing
// and persisting it if the catalog fingerprint has no valid stored entry.
// An unchanged catalog never triggers re-embedding.
func (m *Manager) Resolve(ctx context.Context, courses []core.Course) (*core.CacheEntry, error) {
	if len(courses) == 0 {
		return nil, catalog.ErrEmptyDataset
	}

	fp := catalog.FingerprintCourses(courses)
	v, err, _ := m.group.Do(string(fp), func() (any, error) {
		return m.resolve(ctx, fp, courses)
	})
	if err != nil {
		return nil, err
	}
	return v.(*core.CacheEntry), nil
}

func (m *Manager) resolve(ctx context.Context, fp core.Fingerprint, courses []core.Course) (*core.CacheEntry, error) {
	entry, err := m.store.GetEntry(ctx, fp)
	if err == nil {
		m.logger.Debug("cache hit", "fingerprint", fp, "courses", len(entry.CourseIds))
		return entry, nil
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		m.logger.Info("no cached artifact, rebuilding", "fingerprint", fp)
	case errors.Is(err, storage.ErrCacheCorrupt):
		// A corrupt artifact is a cache miss, not a failure.
		m.logger.Warn("discarding corrupt cache artifact", "fingerprint", fp, "err", err)
		if delErr := m.store.DeleteEntry(ctx, fp); delErr != nil {
			m.logger.Error("error deleting corrupt artifact", "fingerprint", fp, "err", delErr)
		}
	default:
		return nil, err
	}

	return m.build(ctx, fp, courses)
}

// build mines the vocabulary, embeds every course and persists the artifact.
func (m *Manager) build(ctx context.Context, fp core.Fingerprint, courses []core.Course) (*core.CacheEntry, error) {
	abbr := vocab.MineAbbreviations(courses)

	texts := make([]string, len(courses))
	for i := range courses {
		texts[i] = vocab.ExpandText(courses[i].CombinedText, abbr)
	}

	tracker := NewProgressTracker(m.progress, len(texts), m.config.ReportInterval)
	tracker.Start()

	vectors := make([][]float32, len(texts))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for start := 0; start < len(texts); start += m.config.BatchSize {
		end := start + m.config.BatchSize
		if end > len(texts) {
			end = len(texts)
		}
		offset, batch := start, texts[start:end]

		wg.Add(1)
		submitErr := m.pool.Submit(func() {
			defer wg.Done()

			var embeddings [][]float32
			err := RetryWithBackoff(ctx, func() error {
				var embErr error
				embeddings, embErr = m.embedder.EmbedTexts(ctx, batch)
				return embErr
			}, m.config.MaxRetries, m.config.RetryDelay)
			if err != nil {
				fail(fmt.Errorf("failed to generate embeddings after %d attempts: %w", m.config.MaxRetries, err))
				return
			}
			if len(embeddings) != len(batch) {
				fail(fmt.Errorf("%w: expected %d, got %d", ErrEmbeddingCountMismatch, len(batch), len(embeddings)))
				return
			}

			// Stored vectors are unit length.
			for i, vec := range embeddings {
				vectors[offset+i] = NormalizeVector(vec)
			}
			tracker.Increment(len(batch))
		})
		if submitErr != nil {
			wg.Done()
			fail(submitErr)
			break
		}
	}

	wg.Wait()
	tracker.Finish()

	if firstErr != nil {
		return nil, firstErr
	}

	ids := make([]core.ID, len(courses))
	for i := range courses {
		ids[i] = courses[i].Id
	}

	dimension := 0
	if len(vectors) > 0 {
		dimension = len(vectors[0])
	}

	entry := &core.CacheEntry{
		Fingerprint:   fp,
		Dimension:     dimension,
		CourseIds:     ids,
		Vectors:       vectors,
		Abbreviations: abbr,
		CreatedAt:     time.Now().UTC(),
	}
	if err := core.ValidateCacheEntry(entry); err != nil {
		return nil, err
	}
	if err := m.store.PutEntry(ctx, entry); err != nil {
		return nil, err
	}

	m.logger.Info("embedding artifact built",
		"fingerprint", fp,
		"courses", len(ids),
		"dimension", dimension,
		"abbreviations", len(abbr),
		"elapsed", tracker.Elapsed())

	return entry, nil
}
