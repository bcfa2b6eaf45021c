package strategy

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/expertiza/reimplementation-back-end-sub003/internal/logger"
	"github.com/expertiza/reimplementation-back-end-sub003/internal/metrics"
	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// Skip reasons reported to the metrics collector.
const (
	skipNotPermitted = "not_permitted"
	skipSelfReview   = "self_review"
	skipDuplicate    = "duplicate"
	skipUnresolved   = "unresolved"
)

// Params carries the dependencies and tuning knobs shared by all strategy
// constructors. Assignment, Roster, and Store are required; the rest default
// sensibly.
type Params struct {
	// Assignment is the assignment pairs are allocated for. Required.
	Assignment types.ParentRef

	// Roster supplies reviewers, teams, members, counts, and topics. Required.
	Roster types.RosterProvider

	// Store is consulted for the no-duplicate precondition. Required.
	Store types.MappingStore

	// Eligible gates each reviewer on deadline-derived review permission.
	// Nil disables the gate; the root engine always supplies one, so nil is
	// for direct construction in tests and callers that pre-filter.
	Eligible types.EligibilityPredicate

	// Logger defaults to a no-op logger.
	Logger types.Logger

	// Metrics defaults to a no-op collector.
	Metrics types.MetricsCollector

	// FairnessThreshold is the topic-fairness k: a topic stays eligible
	// while its review count is within k of the minimum. Values below 1
	// default to 1.
	FairnessThreshold int

	// Rand is the random source for the Random strategy. Defaults to a
	// time-seeded source; tests inject a seeded one for determinism.
	Rand *rand.Rand

	// Rows are the parsed rows for the CSVImport strategy.
	Rows []types.CSVRow
}

func (p *Params) validate() error {
	if !p.Assignment.Valid() {
		return fmt.Errorf("%w: assignment reference %q is not valid", types.ErrInvalidConfig, p.Assignment.String())
	}
	if p.Roster == nil {
		return types.ErrRosterRequired
	}
	if p.Store == nil {
		return types.ErrMappingStoreRequired
	}

	return nil
}

// Build constructs the strategy for the given kind.
//
// Parameters:
//   - kind: One of the closed StrategyKind set
//   - p: Shared dependencies and options
//
// Returns:
//   - types.Strategy: The constructed strategy; also implements
//     types.BulkStrategy (round_robin, random, csv) or
//     types.OnDemandStrategy (fewest_reviews, topic_fairness)
//   - error: types.ErrUnsupportedStrategy for an unknown kind, or a
//     construction error for missing dependencies
func Build(kind types.StrategyKind, p Params) (types.Strategy, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	switch kind {
	case types.StrategyRoundRobin:
		return NewRoundRobin(p), nil
	case types.StrategyRandom:
		return NewRandom(p), nil
	case types.StrategyFewestReviews:
		return NewFewestReviews(p), nil
	case types.StrategyTopicFairness:
		return NewTopicFairness(p), nil
	case types.StrategyCSV:
		return NewCSVImport(p), nil
	default:
		return nil, fmt.Errorf("%w: kind %d", types.ErrUnsupportedStrategy, int(kind))
	}
}

// core holds the dependencies and precondition checks shared by every
// strategy implementation.
type core struct {
	assignment types.ParentRef
	roster     types.RosterProvider
	store      types.MappingStore
	eligible   types.EligibilityPredicate
	log        types.Logger
	metrics    types.MetricsCollector
}

func newCore(p Params) core {
	c := core{
		assignment: p.Assignment,
		roster:     p.Roster,
		store:      p.Store,
		eligible:   p.Eligible,
		log:        p.Logger,
		metrics:    p.Metrics,
	}
	if c.log == nil {
		c.log = logger.NewNop()
	}
	if c.metrics == nil {
		c.metrics = metrics.NewNop()
	}

	return c
}

// Assignment returns the assignment the strategy allocates for.
func (c *core) Assignment() types.ParentRef {
	return c.assignment
}

// permitted applies precondition 1: deadline-derived review permission.
func (c *core) permitted(ctx context.Context, r types.Reviewer) (bool, error) {
	if c.eligible == nil {
		return true, nil
	}

	ok, err := c.eligible(ctx, r)
	if err != nil {
		return false, fmt.Errorf("eligibility check for reviewer %s: %w", r.ID, err)
	}

	return ok, nil
}

// eligibleReviewers returns the roster's reviewer list filtered through the
// permission gate, preserving roster order.
func (c *core) eligibleReviewers(ctx context.Context) ([]types.Reviewer, error) {
	reviewers, err := c.roster.EligibleReviewers(ctx, c.assignment)
	if err != nil {
		return nil, fmt.Errorf("load reviewers for %s: %w", c.assignment, err)
	}

	eligible := make([]types.Reviewer, 0, len(reviewers))
	for _, r := range reviewers {
		ok, err := c.permitted(ctx, r)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		eligible = append(eligible, r)
	}

	return eligible, nil
}

// isMember applies precondition 2: no reviewer reviews their own team.
func (c *core) isMember(ctx context.Context, r types.Reviewer, teamID string) (bool, error) {
	if r.TeamID != "" && r.TeamID == teamID {
		return true, nil
	}

	members, err := c.roster.TeamMembers(ctx, teamID)
	if err != nil {
		return false, fmt.Errorf("load members of team %s: %w", teamID, err)
	}
	for _, m := range members {
		if m.ID == r.ID {
			return true, nil
		}
	}

	return false, nil
}

// alreadyMapped applies precondition 3: no duplicate
// (reviewer, reviewee, assignment) triple.
func (c *core) alreadyMapped(ctx context.Context, r types.Reviewer, teamID string) (bool, error) {
	exists, err := c.store.Exists(ctx, r.ID, teamID, c.assignment)
	if err != nil {
		return false, fmt.Errorf("mapping existence check for reviewer %s team %s: %w", r.ID, teamID, err)
	}

	return exists, nil
}

// admissible checks preconditions 2 and 3 for a candidate pair, reporting
// the skip reason when one fails. Precondition 1 is applied to the reviewer
// list up front by eligibleReviewers (bulk) or permitted (on-demand).
func (c *core) admissible(ctx context.Context, kind types.StrategyKind, r types.Reviewer, team types.Team) (bool, error) {
	member, err := c.isMember(ctx, r, team.ID)
	if err != nil {
		return false, err
	}
	if member {
		c.metrics.RecordPairSkipped(kind, skipSelfReview)
		return false, nil
	}

	mapped, err := c.alreadyMapped(ctx, r, team.ID)
	if err != nil {
		return false, err
	}
	if mapped {
		c.metrics.RecordPairSkipped(kind, skipDuplicate)
		return false, nil
	}

	return true, nil
}

// defaultRand returns a time-seeded random source for callers that did not
// inject one.
func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // shuffle order, not secrets
}
