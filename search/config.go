package search

// Default tuning values. The floor suppresses weak coincidental matches
// rather than surfacing them at a low rank.
const (
	DefaultFloor = 0.25
	DefaultLimit = 5
)

// Config holds tunable search parameters.
type Config struct {
	// Floor is the minimum cosine similarity a candidate must reach.
	Floor float32

	// Limit is the default result count when a request does not set one.
	Limit int

	// Stopwords overrides the query stopword set. Nil uses the default.
	Stopwords map[string]bool

	// AdvancedSignals overrides the advanced-intent vocabulary. Nil uses
	// the default.
	AdvancedSignals map[string]bool
}

// ConfigOption configures a Config.
type ConfigOption func(*Config)

// WithFloor sets the relevance floor.
func WithFloor(floor float32) ConfigOption {
	return func(c *Config) {
		c.Floor = floor
	}
}

// WithLimit sets the default result count.
func WithLimit(limit int) ConfigOption {
	return func(c *Config) {
		if limit > 0 {
			c.Limit = limit
		}
	}
}

// WithStopwords sets the query stopword set.
func WithStopwords(stopwords map[string]bool) ConfigOption {
	return func(c *Config) {
		c.Stopwords = stopwords
	}
}

// WithAdvancedSignals sets the advanced-intent vocabulary.
func WithAdvancedSignals(signals map[string]bool) ConfigOption {
	return func(c *Config) {
		c.AdvancedSignals = signals
	}
}

// NewConfig returns a Config with defaults, modified by the given options.
func NewConfig(opts ...ConfigOption) *Config {
	c := &Config{
		Floor: DefaultFloor,
		Limit: DefaultLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
