package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/expertiza/reimplementation-back-end-sub003/source"
	"github.com/expertiza/reimplementation-back-end-sub003/store"
	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

func TestFewestReviews_AssignOne(t *testing.T) {
	ctx := context.Background()

	t.Run("picks the least reviewed team", func(t *testing.T) {
		f := newFixture(t)
		f.setReviewers(reviewer("alice"))
		f.setTeams(team("t1"), team("t2"), team("t3"))
		f.roster.SetCounts(testAssignment, map[string]int{"t1": 2, "t2": 0, "t3": 1})

		s := NewFewestReviews(f.params)

		pair, err := s.AssignOne(ctx, reviewer("alice"))
		require.NoError(t, err)
		require.Equal(t, "t2", pair.Reviewee.ID)
		require.Equal(t, "alice", pair.Reviewer.ID)
	})

	t.Run("ties break toward roster order", func(t *testing.T) {
		f := newFixture(t)
		f.setReviewers(reviewer("alice"))
		f.setTeams(team("t1"), team("t2"), team("t3"))
		f.roster.SetCounts(testAssignment, map[string]int{"t1": 1, "t2": 1, "t3": 1})

		s := NewFewestReviews(f.params)

		pair, err := s.AssignOne(ctx, reviewer("alice"))
		require.NoError(t, err)
		require.Equal(t, "t1", pair.Reviewee.ID)
	})

	t.Run("own team is excluded even at the minimum", func(t *testing.T) {
		f := newFixture(t)
		alice := types.Reviewer{ID: "alice", TeamID: "t2"}
		f.setReviewers(alice)
		f.setTeams(team("t1"), team("t2"))
		f.roster.SetTeamMembers("t2", []types.Reviewer{{ID: "alice"}})
		f.roster.SetCounts(testAssignment, map[string]int{"t1": 5, "t2": 0})

		s := NewFewestReviews(f.params)

		pair, err := s.AssignOne(ctx, alice)
		require.NoError(t, err)
		require.Equal(t, "t1", pair.Reviewee.ID)
	})

	t.Run("already mapped team is excluded", func(t *testing.T) {
		f := newFixture(t)
		f.setReviewers(reviewer("alice"))
		f.setTeams(team("t1"), team("t2"))
		f.roster.SetCounts(testAssignment, map[string]int{"t1": 0, "t2": 3})

		existing := types.NewMapping(
			types.Pair{Reviewer: reviewer("alice"), Reviewee: team("t1")},
			testAssignment, 1,
		)
		require.NoError(t, f.store.Create(ctx, existing))

		s := NewFewestReviews(f.params)

		pair, err := s.AssignOne(ctx, reviewer("alice"))
		require.NoError(t, err)
		require.Equal(t, "t2", pair.Reviewee.ID)
	})

	t.Run("not permitted", func(t *testing.T) {
		f := newFixture(t)
		f.setReviewers(reviewer("alice"))
		f.setTeams(team("t1"))
		f.params.Eligible = denyReviewers("alice")

		s := NewFewestReviews(f.params)

		_, err := s.AssignOne(ctx, reviewer("alice"))
		require.ErrorIs(t, err, types.ErrNotPermitted)
		require.False(t, types.IsExhausted(err))
	})

	t.Run("everything excluded", func(t *testing.T) {
		f := newFixture(t)
		alice := types.Reviewer{ID: "alice", TeamID: "t1"}
		f.setReviewers(alice)
		f.setTeams(team("t1"))
		f.roster.SetTeamMembers("t1", []types.Reviewer{{ID: "alice"}})

		s := NewFewestReviews(f.params)

		_, err := s.AssignOne(ctx, alice)
		require.ErrorIs(t, err, types.ErrNoEligibleReviewee)
		require.True(t, types.IsExhausted(err))
	})

	t.Run("counts from mapping store reflect committed state", func(t *testing.T) {
		// Bind fairness counts to the mapping store so every committed
		// mapping shifts the next selection.
		mem := store.NewMemory()
		roster := source.NewStaticRoster(source.WithMappingCounts(mem))
		roster.SetReviewers(testAssignment, []types.Reviewer{reviewer("alice"), reviewer("bob")})
		roster.SetTeams(testAssignment, []types.Team{team("t1"), team("t2")})

		s := NewFewestReviews(Params{
			Assignment: testAssignment,
			Roster:     roster,
			Store:      mem,
		})

		first, err := s.AssignOne(ctx, reviewer("alice"))
		require.NoError(t, err)
		require.Equal(t, "t1", first.Reviewee.ID)

		require.NoError(t, mem.Create(ctx, types.NewMapping(first, testAssignment, 1)))

		second, err := s.AssignOne(ctx, reviewer("bob"))
		require.NoError(t, err)
		require.Equal(t, "t2", second.Reviewee.ID)
	})
}
