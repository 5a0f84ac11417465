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


package courseseek

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/omarkamelalwahsh/courseseek/ai"
	"github.com/omarkamelalwahsh/courseseek/ai/openai"
	"github.com/omarkamelalwahsh/courseseek/cache"
	"github.com/omarkamelalwahsh/courseseek/catalog"
	"github.com/omarkamelalwahsh/courseseek/core"
	"github.com/omarkamelalwahsh/courseseek/search"
	"github.com/omarkamelalwahsh/courseseek/storage"
	"github.com/omarkamelalwahsh/courseseek/storage/badger"
)

// Engine is the process-wide course discovery pipeline. It is built once:
// construction loads or computes the embedding artifact for the catalog,
// after which the catalog, vectors and vocabulary are immutable and the
// engine is safe for concurrent Search calls.
type Engine struct {
	courses  []core.Course
	backend  *badger.Backend
	store    storage.CacheStore
	manager  *cache.Manager
	embedder ai.Embedder
	entry    *core.CacheEntry
	searcher *search.Searcher
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig     *ai.Config
	cacheConfig  *cache.Config
	searchConfig *search.Config
	embedder     ai.Embedder
	progress     io.Writer
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithCacheConfig sets the artifact rebuild configuration.
func WithCacheConfig(config *cache.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.cacheConfig = config
		}
	}
}

// WithSearchConfig sets the search tuning configuration.
func WithSearchConfig(config *search.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.searchConfig = config
		}
	}
}

// WithEmbedder overrides the embedding client. When set, the AI
// configuration is ignored.
func WithEmbedder(embedder ai.Embedder) EngineOption {
	return func(o *engineOptions) {
		o.embedder = embedder
	}
}

// WithProgress sets the writer for index-build progress output.
func WithProgress(w io.Writer) EngineOption {
	return func(o *engineOptions) {
		o.progress = w
	}
}

// NewEngine builds the pipeline over a normalized catalog. cachePath is
// the directory for the persisted vector cache; an empty path keeps the
// cache in memory. A cancellation of ctx during the initial embedding
// fails the whole initialization rather than returning partial state.
func NewEngine(ctx context.Context, courses []core.Course, cachePath string, opts ...EngineOption) (*Engine, error) {
	if len(courses) == 0 {
		return nil, catalog.ErrEmptyDataset
	}

	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(cachePath, cachePath == "")
	if err != nil {
		return nil, err
	}

	store, err := badger.NewCacheRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			store.Close()
			backend.Close()
			return nil, err
		}
	}

	manager, err := cache.NewManager(store, embedder, options.cacheConfig,
		cache.WithProgress(options.progress))
	if err != nil {
		store.Close()
		backend.Close()
		return nil, err
	}

	entry, err := manager.Resolve(ctx, courses)
	if err != nil {
		manager.Release()
		store.Close()
		backend.Close()
		return nil, err
	}

	searcher, err := search.NewSearcher(courses, entry, embedder, options.searchConfig)
	if err != nil {
		manager.Release()
		store.Close()
		backend.Close()
		return nil, err
	}

	return &Engine{
		courses:  courses,
		backend:  backend,
		store:    store,
		manager:  manager,
		embedder: embedder,
		entry:    entry,
		searcher: searcher,
		logger:   slog.Default(),
	}, nil
}

// Search runs one query through the pipeline.
func (e *Engine) Search(ctx context.Context, req search.Request) (*search.Outcome, error) {
	return e.searcher.Search(ctx, req)
}

// SearchWithMonitor runs one query with stage callbacks.
func (e *Engine) SearchWithMonitor(ctx context.Context, req search.Request, monitor search.SearchMonitor) (*search.Outcome, error) {
	return e.searcher.SearchWithMonitor(ctx, req, monitor)
}

// Courses returns the normalized catalog the engine was built over.
func (e *Engine) Courses() []core.Course {
	return e.courses
}

// Categories returns the distinct catalog categories, sorted.
func (e *Engine) Categories() []string {
	seen := make(map[string]string)
	for i := range e.courses {
		key := strings.ToLower(e.courses[i].Category)
		if _, ok := seen[key]; !ok {
			seen[key] = e.courses[i].Category
		}
	}

	categories := make([]string, 0, len(seen))
	for _, category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Fingerprint returns the fingerprint of the loaded catalog.
func (e *Engine) Fingerprint() core.Fingerprint {
	return e.entry.Fingerprint
}

// Vocabulary returns the mined abbreviation map.
func (e *Engine) Vocabulary() core.AbbreviationMap {
	return e.entry.Abbreviations
}

// Close releases the worker pool and closes the cache store.
func (e *Engine) Close() error {
	e.manager.Release()

	if err := e.store.Close(); err != nil {
		e.logger.Error("error closing cache store", "err", err)
		return err
	}
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
