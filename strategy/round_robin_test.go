package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

func TestRoundRobin_CyclicRotation(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	f.setReviewers(reviewer("r1"), reviewer("r2"))
	f.setTeams(team("t1"), team("t2"), team("t3"))

	s := NewRoundRobin(f.params)

	pairs, err := s.Pairs(ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	// Exact cyclic reuse in roster order
	require.Equal(t, "r1", pairs[0].Reviewer.ID)
	require.Equal(t, "t1", pairs[0].Reviewee.ID)
	require.Equal(t, "r2", pairs[1].Reviewer.ID)
	require.Equal(t, "t2", pairs[1].Reviewee.ID)
	require.Equal(t, "r1", pairs[2].Reviewer.ID)
	require.Equal(t, "t3", pairs[2].Reviewee.ID)
}

func TestRoundRobin_Restartable(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	f.setReviewers(reviewer("r1"), reviewer("r2"), reviewer("r3"))
	f.setTeams(team("t1"), team("t2"), team("t3"), team("t4"))

	s := NewRoundRobin(f.params)

	first, err := s.Pairs(ctx)
	require.NoError(t, err)

	second, err := s.Pairs(ctx)
	require.NoError(t, err)

	require.Equal(t, first, second, "re-invocation restarts the rotation from scratch")
}

func TestRoundRobin_SkipsInadmissibleSlot(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	f.setReviewers(
		types.Reviewer{ID: "r1", TeamID: "t1"},
		reviewer("r2"),
	)
	f.setTeams(team("t1"), team("t2"))
	f.roster.SetTeamMembers("t1", []types.Reviewer{{ID: "r1"}})

	s := NewRoundRobin(f.params)

	pairs, err := s.Pairs(ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	// r1 would review its own team, so t1 takes the next rotation slot
	require.Equal(t, "r2", pairs[0].Reviewer.ID)
	require.Equal(t, "t1", pairs[0].Reviewee.ID)
	require.Equal(t, "r1", pairs[1].Reviewer.ID)
	require.Equal(t, "t2", pairs[1].Reviewee.ID)
}

func TestRoundRobin_SkipsAlreadyMappedPair(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	f.setReviewers(reviewer("r1"), reviewer("r2"))
	f.setTeams(team("t1"))

	existing := types.NewMapping(
		types.Pair{Reviewer: reviewer("r1"), Reviewee: team("t1")},
		testAssignment, 1,
	)
	require.NoError(t, f.store.Create(ctx, existing))

	s := NewRoundRobin(f.params)

	pairs, err := s.Pairs(ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	require.Equal(t, "r2", pairs[0].Reviewer.ID)
}

func TestRoundRobin_PermissionGate(t *testing.T) {
	ctx := context.Background()

	t.Run("ineligible reviewers are excluded from the rotation", func(t *testing.T) {
		f := newFixture(t)
		f.setReviewers(reviewer("r1"), reviewer("r2"))
		f.setTeams(team("t1"), team("t2"))
		f.params.Eligible = denyReviewers("r1")

		s := NewRoundRobin(f.params)

		pairs, err := s.Pairs(ctx)
		require.NoError(t, err)
		require.Len(t, pairs, 2)
		for _, p := range pairs {
			require.Equal(t, "r2", p.Reviewer.ID)
		}
	})

	t.Run("no permitted reviewer at all", func(t *testing.T) {
		f := newFixture(t)
		f.setReviewers(reviewer("r1"))
		f.setTeams(team("t1"))
		f.params.Eligible = denyReviewers("r1")

		s := NewRoundRobin(f.params)

		_, err := s.Pairs(ctx)
		require.ErrorIs(t, err, types.ErrNoEligibleReviewee)
		require.True(t, types.IsExhausted(err))
	})
}

func TestRoundRobin_TeamWithNoAdmissibleReviewerIsSkipped(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	f.setReviewers(types.Reviewer{ID: "r1", TeamID: "t1"})
	f.setTeams(team("t1"), team("t2"))
	f.roster.SetTeamMembers("t1", []types.Reviewer{{ID: "r1"}})

	s := NewRoundRobin(f.params)

	pairs, err := s.Pairs(ctx)
	require.NoError(t, err)

	// t1 has no admissible reviewer and is skipped without error
	require.Len(t, pairs, 1)
	require.Equal(t, "t2", pairs[0].Reviewee.ID)
}

func TestRoundRobin_NoTeams(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	f.setReviewers(reviewer("r1"))

	s := NewRoundRobin(f.params)

	pairs, err := s.Pairs(ctx)
	require.NoError(t, err)
	require.Empty(t, pairs)
}
