package match

import (
	"log/slog"
	"math"
)

// Option configures a matching call.
type Option func(*config)

type config struct {
	threshold float64
	legacy    bool
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		threshold: math.Inf(1),
		logger:    slog.New(slog.DiscardHandler),
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithThreshold sets the maximum admitted distance of a [Greedy] pass.
// Without it every best candidate is admitted. [Hierarchical] overrides it
// with the threshold of each pass.
func WithThreshold(th float64) Option {
	return func(c *config) {
		c.threshold = th
	}
}

// WithLegacyExhaustion keeps the historical behaviour for rows of the first
// array that find no unused row in the second one: they are paired with
// index 0 at infinite distance whenever the threshold admits +Inf. Such
// matches reuse b[0], so the at-most-once guarantee no longer holds.
func WithLegacyExhaustion() Option {
	return func(c *config) {
		c.legacy = true
	}
}

// WithLogger routes per-pass debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
