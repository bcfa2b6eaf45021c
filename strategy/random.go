package strategy

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// Random shuffles the eligible-reviewer and reviewee lists independently,
// then samples one reviewer per reviewee uniformly at random.
//
// Sampling is with replacement across reviewees: one reviewer may be picked
// several times while another is never picked. Whether true load balancing
// was intended upstream is ambiguous; the sampling behavior is preserved as
// specified rather than silently evened out.
type Random struct {
	core
	rng *rand.Rand
}

var _ types.BulkStrategy = (*Random)(nil)

// NewRandom creates a new random static strategy.
//
// The output depends on the injected random source, so repeated invocations
// are not identical. Test suites inject a seeded source through
// Params.Rand to make the sequence deterministic.
//
// Parameters:
//   - p: Shared strategy dependencies; Rand defaults to a time-seeded source
//
// Returns:
//   - *Random: Initialized strategy
func NewRandom(p Params) *Random {
	rng := p.Rand
	if rng == nil {
		rng = defaultRand()
	}

	return &Random{core: newCore(p), rng: rng}
}

// Kind returns types.StrategyRandom.
func (s *Random) Kind() types.StrategyKind {
	return types.StrategyRandom
}

// Pairs produces one pair per reviewee team in a single pass over the
// shuffled team list.
//
// For each team, reviewers are drawn uniformly at random until an admissible
// one is found, bounded by the reviewer count; a team that exhausts its
// draws without an admissible reviewer is skipped.
//
// Returns:
//   - []types.Pair: Produced pairs, one per admissible team
//   - error: types.ErrNoEligibleReviewee when no reviewer passes the
//     permission gate, or a propagated lookup failure
func (s *Random) Pairs(ctx context.Context) ([]types.Pair, error) {
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

	// Shuffle copies so the caller's slices stay untouched; the two lists
	// are shuffled independently.
	shuffledReviewers := make([]types.Reviewer, len(reviewers))
	copy(shuffledReviewers, reviewers)
	s.rng.Shuffle(len(shuffledReviewers), func(i, j int) {
		shuffledReviewers[i], shuffledReviewers[j] = shuffledReviewers[j], shuffledReviewers[i]
	})

	shuffledTeams := make([]types.Team, len(teams))
	copy(shuffledTeams, teams)
	s.rng.Shuffle(len(shuffledTeams), func(i, j int) {
		shuffledTeams[i], shuffledTeams[j] = shuffledTeams[j], shuffledTeams[i]
	})

	pairs := make([]types.Pair, 0, len(shuffledTeams))
	for _, team := range shuffledTeams {
		produced := false
		for range shuffledReviewers {
			candidate := shuffledReviewers[s.rng.Intn(len(shuffledReviewers))]
			ok, err := s.admissible(ctx, s.Kind(), candidate, team)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}

			pairs = append(pairs, types.Pair{Reviewer: candidate, Reviewee: team})
			s.metrics.RecordPairProduced(s.Kind())
			produced = true

			break
		}

		if !produced {
			s.log.Debug("no admissible reviewer drawn for team, skipping",
				"assignment", s.assignment.String(),
				"team", team.ID,
			)
		}
	}

	return pairs, nil
}
