package multicase

import (
	"github.com/erraggy/keycase/keyerrors"
	"github.com/erraggy/keycase/logging"
)

// DefaultMaxDepth is the nesting depth allowed when no WithMaxDepth option
// is given.
const DefaultMaxDepth = 10000

// Option is a function that configures how a Dict is built and updated.
type Option func(*config) error

// config holds the settings shared by a Dict and everything derived from it.
type config struct {
	logger            logging.Logger
	maxDepth          int
	insertUnknownKeys bool
}

// WithLogger sets the logger that receives debug output such as dropped
// colliding keys. A nil logger disables logging.
func WithLogger(l logging.Logger) Option {
	return func(c *config) error {
		c.logger = logging.OrNop(l)
		return nil
	}
}

// WithMaxDepth limits how deeply mappings and sequences may nest.
func WithMaxDepth(depth int) Option {
	return func(c *config) error {
		if depth <= 0 {
			return &keyerrors.ConfigError{Option: "max depth", Value: depth, Message: "must be positive"}
		}
		c.maxDepth = depth
		return nil
	}
}

// WithInsertUnknownKeys controls Set for keys that were not part of the
// source. By default such updates fail with a LookupError; when enabled the
// key is appended and recorded in the reverse map.
func WithInsertUnknownKeys(enabled bool) Option {
	return func(c *config) error {
		c.insertUnknownKeys = enabled
		return nil
	}
}

func defaultConfig() *config {
	return &config{
		logger:   logging.NopLogger{},
		maxDepth: DefaultMaxDepth,
	}
}

// applyOptions applies option functions over the defaults.
func applyOptions(opts ...Option) (*config, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
