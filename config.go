package peerassign

import (
	"fmt"
	"time"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// Config holds the engine's tuning knobs. The zero value is usable after
// ApplyDefaults; New applies defaults and validates automatically.
type Config struct {
	// FairnessThreshold is the topic-fairness k: a sign-up topic stays
	// eligible for allocation while its review count is within k of the
	// minimum across topics.
	//
	// Default: 1
	FairnessThreshold int `yaml:"fairnessThreshold"`

	// DefaultStrategy is the strategy kind BuildDefaultStrategy uses, by
	// its snake_case name.
	//
	// Default: "round_robin"
	DefaultStrategy string `yaml:"defaultStrategy"`

	// DefaultRound is the round recorded on mappings created through
	// AssignAll and AssignOne when the caller passes a round below 1.
	//
	// Default: 1
	DefaultRound int `yaml:"defaultRound"`

	// OperationTimeout bounds one bulk allocation (AssignAll) including its
	// roster and store lookups. Zero disables the bound; overall timeout
	// budgets are otherwise the caller's responsibility.
	//
	// Default: 10 seconds
	OperationTimeout time.Duration `yaml:"operationTimeout"`
}

// DefaultConfig returns a Config populated with the default values.
func DefaultConfig() Config {
	cfg := Config{}
	ApplyDefaults(&cfg)

	return cfg
}

// ApplyDefaults fills unset fields with their default values. Explicitly
// set fields are preserved.
func ApplyDefaults(cfg *Config) {
	if cfg.FairnessThreshold == 0 {
		cfg.FairnessThreshold = 1
	}
	if cfg.DefaultStrategy == "" {
		cfg.DefaultStrategy = types.StrategyRoundRobin.String()
	}
	if cfg.DefaultRound == 0 {
		cfg.DefaultRound = 1
	}
	if cfg.OperationTimeout == 0 {
		cfg.OperationTimeout = 10 * time.Second
	}
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: A wrapped ErrInvalidConfig describing the first violation
func (c *Config) Validate() error {
	if c.FairnessThreshold < 1 {
		return fmt.Errorf("%w: fairnessThreshold must be >= 1, got %d", types.ErrInvalidConfig, c.FairnessThreshold)
	}
	if _, err := types.ParseStrategyKind(c.DefaultStrategy); err != nil {
		return fmt.Errorf("%w: defaultStrategy: %w", types.ErrInvalidConfig, err)
	}
	if c.DefaultRound < 1 {
		return fmt.Errorf("%w: defaultRound must be >= 1, got %d", types.ErrInvalidConfig, c.DefaultRound)
	}
	if c.OperationTimeout < 0 {
		return fmt.Errorf("%w: operationTimeout must not be negative, got %s", types.ErrInvalidConfig, c.OperationTimeout)
	}

	return nil
}
