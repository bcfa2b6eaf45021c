package types

import (
	"context"
	"fmt"
)

// StrategyKind is the closed set of review-assignment strategies. Dispatch is
// through this enum and the Strategy interfaces; there is no open-ended
// name-based dispatch.
type StrategyKind int

const (
	// StrategyRoundRobin pairs each reviewee with the next reviewer from an
	// infinitely-cycling rotation over eligible reviewers.
	StrategyRoundRobin StrategyKind = iota

	// StrategyRandom shuffles both lists and samples one reviewer per
	// reviewee uniformly at random, with replacement across reviewees.
	StrategyRandom

	// StrategyFewestReviews assigns one reviewer on demand to the reviewee
	// team with the fewest existing reviews.
	StrategyFewestReviews

	// StrategyTopicFairness assigns one reviewer on demand within the
	// least-reviewed sign-up topics, bounded by a fairness threshold.
	StrategyTopicFairness

	// StrategyCSV materializes externally-supplied (reviewer email, team
	// name) rows, skipping rows that do not resolve.
	StrategyCSV
)

var strategyKindNames = map[StrategyKind]string{
	StrategyRoundRobin:    "round_robin",
	StrategyRandom:        "random",
	StrategyFewestReviews: "fewest_reviews",
	StrategyTopicFairness: "topic_fairness",
	StrategyCSV:           "csv",
}

// String returns the canonical snake_case name of the strategy kind.
func (k StrategyKind) String() string {
	if name, ok := strategyKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("strategy(%d)", int(k))
}

// Valid reports whether k is a known strategy kind.
func (k StrategyKind) Valid() bool {
	_, ok := strategyKindNames[k]
	return ok
}

// ParseStrategyKind resolves a snake_case strategy name.
//
// Returns:
//   - StrategyKind: The parsed kind
//   - error: ErrUnsupportedStrategy for unrecognized names
func ParseStrategyKind(name string) (StrategyKind, error) {
	for k, n := range strategyKindNames {
		if n == name {
			return k, nil
		}
	}

	return StrategyKind(-1), fmt.Errorf("%w: %q", ErrUnsupportedStrategy, name)
}

// Strategy is the capability common to every review-assignment strategy.
//
// Concrete strategies additionally implement BulkStrategy (static pair
// production over the whole reviewee list) or OnDemandStrategy (one pair per
// call), and some implement both capabilities' shared preconditions:
//
//  1. The reviewer currently holds review permission for the assignment.
//  2. The reviewee team does not include the reviewer as a member.
//  3. No existing mapping already links the (reviewer, reviewee, assignment)
//     triple.
type Strategy interface {
	// Kind identifies the strategy variant.
	Kind() StrategyKind

	// Assignment returns the assignment the strategy allocates for.
	Assignment() ParentRef
}

// BulkStrategy produces a finite sequence of pairs in one deterministic pass
// over the reviewee list. Within one invocation no two pairs race each other;
// re-invoking restarts the pass from scratch.
type BulkStrategy interface {
	Strategy

	// Pairs produces the allocation for every reviewee that admits one.
	// Reviewees with no admissible reviewer are skipped, not errored.
	//
	// Parameters:
	//   - ctx: Context for the underlying roster and store lookups
	//
	// Returns:
	//   - []Pair: Produced pairs in reviewee-list order
	//   - error: ErrNoEligibleReviewee when no reviewer is eligible at all,
	//     or a propagated data-source failure
	Pairs(ctx context.Context) ([]Pair, error)
}

// OnDemandStrategy produces a single pair for one requesting reviewer.
type OnDemandStrategy interface {
	Strategy

	// AssignOne selects a reviewee for the given reviewer.
	//
	// Parameters:
	//   - ctx: Context for the underlying roster and store lookups
	//   - reviewer: The reviewer requesting work
	//
	// Returns:
	//   - Pair: The selected allocation
	//   - error: ErrNotPermitted, ErrNoEligibleReviewee, ErrNoEligibleTopic,
	//     or a propagated data-source failure
	AssignOne(ctx context.Context, reviewer Reviewer) (Pair, error)
}

// EligibilityPredicate answers "may this participant currently perform the
// gated action for this assignment?". It is the thin adapter between the
// deadline permission engine and the assignment strategies; the engine builds
// one per assignment and strategies consult it before yielding a pair.
type EligibilityPredicate func(ctx context.Context, reviewer Reviewer) (bool, error)
