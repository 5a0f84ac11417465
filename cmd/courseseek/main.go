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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	courseseek "github.com/omarkamelalwahsh/courseseek"
	"github.com/omarkamelalwahsh/courseseek/ai"
	"github.com/omarkamelalwahsh/courseseek/cache"
	"github.com/omarkamelalwahsh/courseseek/catalog"
	"github.com/omarkamelalwahsh/courseseek/core"
	"github.com/omarkamelalwahsh/courseseek/search"
	"github.com/omarkamelalwahsh/courseseek/vocab"
)

func main() {
	app := &cli.App{
		Name:  "courseseek",
		Usage: "Semantic course discovery over tabular catalogs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Build or refresh the embedding cache for a catalog",
				Action: indexCommand,
				Flags:  append(catalogFlags(), embeddingFlags()...),
			},
			{
				Name:      "search",
				Usage:     "Search the catalog with a natural-language query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: append(append(catalogFlags(), embeddingFlags()...),
					&cli.StringFlag{
						Name:  "level",
						Usage: "Filter by level (any, beginner, intermediate, advanced)",
						Value: "any",
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Filter by category",
					},
					&cli.Float64Flag{
						Name:  "max-hours",
						Usage: "Maximum course duration in hours (0 = unbounded)",
					},
					&cli.Float64Flag{
						Name:  "min-hours",
						Usage: "Minimum course duration in hours (0 = unbounded)",
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   search.DefaultLimit,
					},
					&cli.Float64Flag{
						Name:  "floor",
						Usage: "Minimum similarity score",
						Value: search.DefaultFloor,
					},
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "Print match reasons for each result",
					},
				),
			},
			{
				Name:   "vocab",
				Usage:  "Print the abbreviation vocabulary mined from a catalog",
				Action: vocabCommand,
				Flags:  catalogFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func catalogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "catalog",
			Aliases: []string{"c"},
			Usage:   "Path to the course catalog CSV (omit for the built-in catalog)",
		},
		&cli.StringFlag{
			Name:  "cache",
			Usage: "Directory for the persisted vector cache",
			Value: ".courseseek-cache",
		},
	}
}

func embeddingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "all-minilm",
		},
		&cli.IntFlag{
			Name:  "batch-size",
			Usage: "Number of courses to embed per request",
			Value: 32,
		},
		&cli.IntFlag{
			Name:  "report-interval",
			Usage: "Report progress every N courses",
			Value: 100,
		},
		&cli.IntFlag{
			Name:  "max-retries",
			Usage: "Maximum retry attempts for embedding calls",
			Value: 3,
		},
		&cli.DurationFlag{
			Name:  "retry-delay",
			Usage: "Base delay for exponential backoff",
			Value: 1 * time.Second,
		},
	}
}

// loadCatalog normalizes the configured CSV, falling back to the built-in
// catalog when no path is given.
func loadCatalog(c *cli.Context) ([]core.Course, error) {
	path := c.String("catalog")
	if path == "" {
		fmt.Fprintln(os.Stderr, "No catalog given, using the built-in courses")
		return catalog.FallbackCourses(), nil
	}

	courses, err := catalog.LoadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return courses, nil
}

func cacheConfig(c *cli.Context) (*cache.Config, error) {
	config := cache.DefaultConfig()
	config.BatchSize = c.Int("batch-size")
	config.ReportInterval = c.Int("report-interval")
	config.MaxRetries = c.Int("max-retries")
	config.RetryDelay = c.Duration("retry-delay")

	if config.BatchSize <= 0 {
		return nil, fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return nil, fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return nil, fmt.Errorf("max-retries must be greater than 0")
	}
	return config, nil
}

func newEngine(ctx context.Context, c *cli.Context, searchConfig *search.Config) (*courseseek.Engine, error) {
	courses, err := loadCatalog(c)
	if err != nil {
		return nil, err
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	config, err := cacheConfig(c)
	if err != nil {
		return nil, err
	}

	return courseseek.NewEngine(ctx, courses, c.String("cache"),
		courseseek.WithAIConfig(aiConfig),
		courseseek.WithCacheConfig(config),
		courseseek.WithSearchConfig(searchConfig),
		courseseek.WithProgress(os.Stderr),
	)
}

func indexCommand(c *cli.Context) error {
	engine, err := newEngine(context.Background(), c, nil)
	if err != nil {
		return err
	}
	defer engine.Close()

	fmt.Fprintf(os.Stderr, "Catalog: %d courses\n", len(engine.Courses()))
	fmt.Fprintf(os.Stderr, "Fingerprint: %s\n", engine.Fingerprint())
	fmt.Fprintf(os.Stderr, "Vocabulary: %d abbreviations\n", len(engine.Vocabulary()))
	fmt.Fprintf(os.Stderr, "Categories: %s\n", strings.Join(engine.Categories(), ", "))
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a query is required")
	}

	searchConfig := search.NewConfig(
		search.WithFloor(float32(c.Float64("floor"))),
		search.WithLimit(c.Int("limit")),
	)

	ctx := context.Background()
	engine, err := newEngine(ctx, c, searchConfig)
	if err != nil {
		return err
	}
	defer engine.Close()

	outcome, err := engine.Search(ctx, search.Request{
		Query:    query,
		Level:    core.ParseLevel(c.String("level")),
		Category: c.String("category"),
		MinHours: c.Float64("min-hours"),
		MaxHours: c.Float64("max-hours"),
		Limit:    c.Int("limit"),
	})
	if err != nil {
		return err
	}

	switch outcome.Status {
	case search.StatusOK:
		printResults(outcome, c.Bool("explain"))
	default:
		fmt.Printf("No results: %s\n", outcome.Reason)
	}
	return nil
}

func printResults(outcome *search.Outcome, explain bool) {
	for i, r := range outcome.Results {
		duration := "unknown duration"
		if r.Course.HasDuration() {
			duration = fmt.Sprintf("%.1fh", r.Course.DurationHours)
		}
		fmt.Printf("%d. [%2d/10] %s (%s, %s, %s) score=%.3f\n",
			i+1, r.Rank, r.Course.Title, r.Course.Level, r.Course.Category, duration, r.Score)

		if explain {
			for _, reason := range search.Explain(&outcome.Results[i], outcome.Expansion.Keywords) {
				fmt.Printf("     - %s\n", reason)
			}
		}
	}
}

func vocabCommand(c *cli.Context) error {
	courses, err := loadCatalog(c)
	if err != nil {
		return err
	}

	abbr := vocab.MineAbbreviations(courses)
	if len(abbr) == 0 {
		fmt.Println("No abbreviations mined")
		return nil
	}

	acronyms := make([]string, 0, len(abbr))
	for acro := range abbr {
		acronyms = append(acronyms, acro)
	}
	sort.Strings(acronyms)

	for _, acro := range acronyms {
		fmt.Printf("%-8s %s\n", acro, abbr[acro])
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
