package strategy

import (
	"context"
	"fmt"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// RoundRobin pairs each reviewee team, in roster order, with the next
// reviewer drawn from an infinitely-cycling rotation over the eligible
// reviewers.
type RoundRobin struct {
	core
}

var _ types.BulkStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// The produced sequence is deterministic given a fixed roster order and is
// restartable: re-invoking Pairs with the same inputs yields the same pairs.
//
// Parameters:
//   - p: Shared strategy dependencies
//
// Returns:
//   - *RoundRobin: Initialized strategy
func NewRoundRobin(p Params) *RoundRobin {
	return &RoundRobin{core: newCore(p)}
}

// Kind returns types.StrategyRoundRobin.
func (s *RoundRobin) Kind() types.StrategyKind {
	return types.StrategyRoundRobin
}

// Pairs produces one pair per reviewee team in a single deterministic pass.
//
// The rotation cursor advances only when a pair is produced. When the next
// reviewer in rotation is inadmissible for a team (own team, or already
// mapped), later rotation slots are tried; a team with no admissible
// reviewer in a full cycle is skipped and the cursor is left where the team
// found it.
//
// Returns:
//   - []types.Pair: Pairs in reviewee-list order
//   - error: types.ErrNoEligibleReviewee when no reviewer passes the
//     permission gate, or a propagated lookup failure
func (s *RoundRobin) Pairs(ctx context.Context) ([]types.Pair, error) {
	reviewers, err := s.eligibleReviewers(ctx)
	if err != nil {
		return nil, err
	}
	if len(reviewers) == 0 {
		return nil, fmt.Errorf("%w: no reviewer currently permitted to review %s", types.ErrNoEligibleReviewee, s.assignment)
	}

	teams, err := s.roster.Teams(ctx, s.assignment)
	if err != nil {
		return nil, fmt.Errorf("load teams for %s: %w", s.assignment, err)
	}

	pairs := make([]types.Pair, 0, len(teams))
	cursor := 0
	for _, team := range teams {
		produced := false
		for i := 0; i < len(reviewers); i++ {
			candidate := reviewers[(cursor+i)%len(reviewers)]
			ok, err := s.admissible(ctx, s.Kind(), candidate, team)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}

			pairs = append(pairs, types.Pair{Reviewer: candidate, Reviewee: team})
			s.metrics.RecordPairProduced(s.Kind())
			cursor += i + 1
			produced = true

			break
		}

		if !produced {
			s.log.Debug("no admissible reviewer for team, skipping",
				"assignment", s.assignment.String(),
				"team", team.ID,
			)
		}
	}

	return pairs, nil
}
