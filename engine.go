package peerassign

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/expertiza/reimplementation-back-end-sub003/deadline"
	"github.com/expertiza/reimplementation-back-end-sub003/internal/logger"
	"github.com/expertiza/reimplementation-back-end-sub003/internal/metrics"
	"github.com/expertiza/reimplementation-back-end-sub003/strategy"
	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// Engine is the main entry point of the peerassign library. It wires the
// deadline permission engine to the assignment strategies and materializes
// produced pairs as mappings.
//
// Thread safety: all methods are safe for concurrent use provided the
// injected providers and stores are. The engine holds no mutable state of
// its own; every call recomputes from the current persisted state.
//
// Lifecycle: create with New; there is nothing to start or stop.
type Engine struct {
	cfg       Config
	roster    RosterProvider
	deadlines *deadline.Engine
	store     MappingStore

	hooks   *Hooks
	log     Logger
	metrics MetricsCollector
	clock   func() time.Time
	rng     *rand.Rand
}

// New creates an Engine over the given providers.
//
// Returns a concrete *Engine following the "accept interfaces, return
// structs" principle; consumers define minimal interfaces for mocking if
// they need to.
//
// Parameters:
//   - cfg: Configuration; nil means defaults. Defaults are applied and the
//     result validated
//   - roster: Read-only participant/team/count view. Required
//   - deadlineStore: Source of truth for deadline rows. Required
//   - mappings: Durable mapping store owning the uniqueness constraint.
//     Required
//   - opts: Optional logger, metrics, hooks, clock, and random source
//
// Returns:
//   - *Engine: Initialized engine
//   - error: ErrInvalidConfig or a missing-dependency sentinel
func New(cfg *Config, roster RosterProvider, deadlineStore DeadlineStore, mappings MappingStore, opts ...Option) (*Engine, error) {
	if roster == nil {
		return nil, ErrRosterRequired
	}
	if deadlineStore == nil {
		return nil, ErrDeadlineStoreRequired
	}
	if mappings == nil {
		return nil, ErrMappingStoreRequired
	}

	var config Config
	if cfg != nil {
		config = *cfg
	}
	ApplyDefaults(&config)
	if err := config.Validate(); err != nil {
		return nil, err
	}

	options := engineOptions{
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(&options)
	}

	e := &Engine{
		cfg:     config,
		roster:  roster,
		store:   mappings,
		hooks:   options.hooks,
		log:     options.logger,
		metrics: options.metrics,
		clock:   options.clock,
		rng:     options.rng,
	}
	e.deadlines = deadline.New(deadlineStore,
		deadline.WithLogger(e.log),
		deadline.WithMetrics(e.metrics),
		deadline.WithClock(e.clock),
	)

	return e, nil
}

// Deadlines exposes the deadline permission engine for direct permission
// queries and schedule management.
func (e *Engine) Deadlines() *deadline.Engine {
	return e.deadlines
}

// Eligibility builds the predicate strategies use to gate reviewers on
// deadline-derived review permission for the assignment.
//
// The predicate resolves the review status fresh on every call, so a
// deadline passing mid-allocation is observed by the next check.
func (e *Engine) Eligibility(assignment ParentRef) EligibilityPredicate {
	return func(ctx context.Context, _ Reviewer) (bool, error) {
		return e.deadlines.IsPermitted(ctx, assignment, ActivityReview)
	}
}

// StrategyOption tunes one BuildStrategy call.
type StrategyOption func(*strategy.Params)

// WithCSVRows supplies the parsed rows for the csv strategy kind.
func WithCSVRows(rows []CSVRow) StrategyOption {
	return func(p *strategy.Params) {
		p.Rows = rows
	}
}

// WithFairnessThreshold overrides the configured topic-fairness k for one
// strategy.
func WithFairnessThreshold(k int) StrategyOption {
	return func(p *strategy.Params) {
		p.FairnessThreshold = k
	}
}

// BuildStrategy constructs a strategy of the given kind wired to the
// engine's roster, mapping store, and eligibility predicate.
//
// Parameters:
//   - kind: One of the closed StrategyKind set
//   - assignment: The assignment to allocate for
//   - opts: Per-call tuning (CSV rows, fairness threshold)
//
// Returns:
//   - Strategy: The constructed strategy; assert to BulkStrategy or
//     OnDemandStrategy per kind
//   - error: ErrUnsupportedStrategy for an unknown kind
func (e *Engine) BuildStrategy(kind StrategyKind, assignment ParentRef, opts ...StrategyOption) (Strategy, error) {
	params := strategy.Params{
		Assignment:        assignment,
		Roster:            e.roster,
		Store:             e.store,
		Eligible:          e.Eligibility(assignment),
		Logger:            e.log,
		Metrics:           e.metrics,
		FairnessThreshold: e.cfg.FairnessThreshold,
		Rand:              e.rng,
	}
	for _, opt := range opts {
		opt(&params)
	}

	return strategy.Build(kind, params)
}

// BuildDefaultStrategy constructs the configured default strategy kind.
func (e *Engine) BuildDefaultStrategy(assignment ParentRef, opts ...StrategyOption) (Strategy, error) {
	kind, err := types.ParseStrategyKind(e.cfg.DefaultStrategy)
	if err != nil {
		return nil, err
	}

	return e.BuildStrategy(kind, assignment, opts...)
}

// Apply materializes a pair as a durable mapping.
//
// A duplicate conflict (a concurrent allocation won the race) is surfaced
// as ErrDuplicateMapping; the engine does not retry, the caller decides
// retry vs. skip.
//
// Parameters:
//   - ctx: Context for the store write
//   - assignment: The owning assignment
//   - p: The pair to persist
//   - round: Round recorded on the mapping; values below 1 use the
//     configured default
//
// Returns:
//   - Mapping: The persisted (or conflicting) mapping
//   - error: ErrDuplicateMapping on a uniqueness conflict, or a propagated
//     store failure
func (e *Engine) Apply(ctx context.Context, assignment ParentRef, p Pair, round int) (Mapping, error) {
	if round < 1 {
		round = e.cfg.DefaultRound
	}
	m := types.NewMapping(p, assignment, round)

	if err := e.store.Create(ctx, m); err != nil {
		if errors.Is(err, ErrDuplicateMapping) {
			e.metrics.RecordDuplicateConflict()
			e.runHook(ctx, e.hookOnDuplicate(), m, "duplicate conflict hook")
			e.log.Debug("mapping creation lost uniqueness race",
				"assignment", assignment.String(),
				"reviewer", m.ReviewerID,
				"reviewee", m.RevieweeID,
			)
		}

		return m, err
	}

	e.metrics.RecordMappingCreated()
	e.runHook(ctx, e.hookOnCreated(), m, "mapping created hook")

	return m, nil
}

// AssignReport summarizes one bulk allocation.
type AssignReport struct {
	// Created holds the mappings durably persisted.
	Created []Mapping

	// Duplicates holds the pairs that lost the uniqueness race at commit
	// time. The caller decides whether to retry them.
	Duplicates []Mapping

	// Skipped counts input rows the strategy dropped (csv kind only).
	Skipped int
}

// AssignAll runs a bulk strategy and applies every produced pair.
//
// Duplicate conflicts do not abort the pass; they are collected in the
// report. Any other failure stops the pass and returns the report of what
// was committed before it.
//
// Parameters:
//   - ctx: Context; additionally bounded by Config.OperationTimeout
//   - s: A bulk strategy built for one assignment
//   - round: Round recorded on created mappings
//
// Returns:
//   - AssignReport: Created and conflicting mappings plus skip count
//   - error: The strategy or store failure that stopped the pass, nil when
//     the pass completed
func (e *Engine) AssignAll(ctx context.Context, s BulkStrategy, round int) (AssignReport, error) {
	if e.cfg.OperationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.OperationTimeout)
		defer cancel()
	}

	var report AssignReport

	pairs, err := s.Pairs(ctx)
	if err != nil {
		return report, fmt.Errorf("produce pairs with %s: %w", s.Kind(), err)
	}

	for _, p := range pairs {
		m, err := e.Apply(ctx, s.Assignment(), p, round)
		if err != nil {
			if errors.Is(err, ErrDuplicateMapping) {
				report.Duplicates = append(report.Duplicates, m)
				continue
			}

			return report, err
		}
		report.Created = append(report.Created, m)
	}

	if counter, ok := s.(interface{ Skipped() int }); ok {
		report.Skipped = counter.Skipped()
	}

	e.log.Info("bulk assignment applied",
		"assignment", s.Assignment().String(),
		"strategy", s.Kind().String(),
		"created", len(report.Created),
		"duplicates", len(report.Duplicates),
		"skipped", report.Skipped,
	)

	return report, nil
}

// AssignOne runs an on-demand strategy for one reviewer and applies the
// produced pair.
//
// Returns:
//   - Mapping: The persisted mapping
//   - error: The strategy's allocation error (check with IsExhausted or
//     errors.Is against ErrNotPermitted), ErrDuplicateMapping when a
//     concurrent allocation won the commit race, or a propagated failure
func (e *Engine) AssignOne(ctx context.Context, s OnDemandStrategy, reviewer Reviewer, round int) (Mapping, error) {
	p, err := s.AssignOne(ctx, reviewer)
	if err != nil {
		return Mapping{}, err
	}

	return e.Apply(ctx, s.Assignment(), p, round)
}

// Revoke removes a persisted mapping. Re-assignment is deletion plus
// recreation; mappings are never mutated in place.
func (e *Engine) Revoke(ctx context.Context, m Mapping) error {
	if err := e.store.Delete(ctx, m); err != nil {
		return fmt.Errorf("revoke mapping %s: %w", m.Key(), err)
	}

	e.log.Info("mapping revoked",
		"assignment", m.Assignment.String(),
		"reviewer", m.ReviewerID,
		"reviewee", m.RevieweeID,
	)

	return nil
}

func (e *Engine) hookOnCreated() func(context.Context, Mapping) error {
	if e.hooks == nil {
		return nil
	}

	return e.hooks.OnMappingCreated
}

func (e *Engine) hookOnDuplicate() func(context.Context, Mapping) error {
	if e.hooks == nil {
		return nil
	}

	return e.hooks.OnDuplicateConflict
}

// runHook invokes a lifecycle hook, logging failures without changing the
// operation's outcome.
func (e *Engine) runHook(ctx context.Context, hook func(context.Context, Mapping) error, m Mapping, name string) {
	if hook == nil {
		return
	}
	if err := hook(ctx, m); err != nil {
		e.log.Warn(name+" failed", "error", err, "reviewer", m.ReviewerID, "reviewee", m.RevieweeID)
	}
}
