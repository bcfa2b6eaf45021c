package peerassign

import (
	"math/rand"
	"time"
)

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	logger  Logger
	metrics MetricsCollector
	hooks   *Hooks
	clock   func() time.Time
	rng     *rand.Rand
}

// WithLogger sets a structured logger. Defaults to a no-op logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	engine, err := peerassign.New(&cfg, roster, deadlines, mappings,
//	    peerassign.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector. Defaults to a no-op collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithHooks sets mapping lifecycle hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	hooks := &peerassign.Hooks{
//	    OnMappingCreated: func(ctx context.Context, m peerassign.Mapping) error {
//	        return notify(m)
//	    },
//	}
//	engine, err := peerassign.New(&cfg, roster, deadlines, mappings,
//	    peerassign.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *engineOptions) {
		o.hooks = hooks
	}
}

// WithClock sets the time source used for "now" in permission checks.
// Defaults to time.Now. Tests inject a fixed clock so deadline decisions are
// reproducible.
//
// Parameters:
//   - clock: Function returning the current time
//
// Returns:
//   - Option: Functional option for New
func WithClock(clock func() time.Time) Option {
	return func(o *engineOptions) {
		o.clock = clock
	}
}

// WithRand sets the random source handed to the random strategy. Defaults
// to a time-seeded source; tests inject a seeded one to make random
// allocation deterministic.
//
// Parameters:
//   - rng: Random source for shuffling and sampling
//
// Returns:
//   - Option: Functional option for New
func WithRand(rng *rand.Rand) Option {
	return func(o *engineOptions) {
		o.rng = rng
	}
}
