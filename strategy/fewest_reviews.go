package strategy

import (
	"context"
	"fmt"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// FewestReviews allocates one pair on demand: the requesting reviewer is
// paired with the reviewee team holding the minimum number of existing
// reviews for the assignment.
type FewestReviews struct {
	core
}

var _ types.OnDemandStrategy = (*FewestReviews)(nil)

// NewFewestReviews creates a new fewest-reviews strategy.
//
// Counts are recomputed from the roster on every call, so fairness reflects
// the persisted state at call time. Concurrent callers may read the same
// minimum before either commits; the mapping store's uniqueness constraint
// is the serialization point, and callers retry selection on a duplicate
// conflict.
//
// Parameters:
//   - p: Shared strategy dependencies
//
// Returns:
//   - *FewestReviews: Initialized strategy
func NewFewestReviews(p Params) *FewestReviews {
	return &FewestReviews{core: newCore(p)}
}

// Kind returns types.StrategyFewestReviews.
func (s *FewestReviews) Kind() types.StrategyKind {
	return types.StrategyFewestReviews
}

// AssignOne selects the admissible team with the minimum review count.
//
// Teams the reviewer belongs to and teams already paired with the reviewer
// are filtered out; ties on the minimum count break toward the team first
// encountered in roster order.
//
// Parameters:
//   - ctx: Context for roster and store lookups
//   - reviewer: The reviewer requesting work
//
// Returns:
//   - types.Pair: The selected pair
//   - error: types.ErrNotPermitted when the reviewer lacks review
//     permission, types.ErrNoEligibleReviewee when the filtered set is
//     empty, or a propagated lookup failure
func (s *FewestReviews) AssignOne(ctx context.Context, reviewer types.Reviewer) (types.Pair, error) {
	ok, err := s.permitted(ctx, reviewer)
	if err != nil {
		return types.Pair{}, err
	}
	if !ok {
		s.metrics.RecordPairSkipped(s.Kind(), skipNotPermitted)
		return types.Pair{}, fmt.Errorf("%w: reviewer %s on %s", types.ErrNotPermitted, reviewer.ID, s.assignment)
	}

	teams, err := s.roster.Teams(ctx, s.assignment)
	if err != nil {
		return types.Pair{}, fmt.Errorf("load teams for %s: %w", s.assignment, err)
	}
	counts, err := s.roster.ExistingMappingCounts(ctx, s.assignment)
	if err != nil {
		return types.Pair{}, fmt.Errorf("load mapping counts for %s: %w", s.assignment, err)
	}

	team, found, err := s.leastReviewed(ctx, s.Kind(), reviewer, teams, counts)
	if err != nil {
		return types.Pair{}, err
	}
	if !found {
		return types.Pair{}, fmt.Errorf("%w: reviewer %s on %s", types.ErrNoEligibleReviewee, reviewer.ID, s.assignment)
	}

	s.metrics.RecordPairProduced(s.Kind())

	return types.Pair{Reviewer: reviewer, Reviewee: team}, nil
}

// leastReviewed picks the admissible team with the minimum count, first
// encountered winning ties. Shared with the topic-fairness strategy, which
// applies it within one topic's teams.
func (c *core) leastReviewed(ctx context.Context, kind types.StrategyKind, reviewer types.Reviewer, teams []types.Team, counts map[string]int) (types.Team, bool, error) {
	var (
		best      types.Team
		bestCount int
		found     bool
	)

	for _, team := range teams {
		ok, err := c.admissible(ctx, kind, reviewer, team)
		if err != nil {
			return types.Team{}, false, err
		}
		if !ok {
			continue
		}

		count := counts[team.ID]
		if !found || count < bestCount {
			best = team
			bestCount = count
			found = true
		}
	}

	return best, found, nil
}
