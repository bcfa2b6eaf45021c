package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// topicFixture seeds three topics with one team each and the given counts.
func topicFixture(t *testing.T, counts map[string]int) *fixture {
	t.Helper()

	f := newFixture(t)
	f.setReviewers(reviewer("alice"))
	f.setTeams(team("teamA"), team("teamB"), team("teamC"))
	f.roster.SetTopic("teamA", "topicA")
	f.roster.SetTopic("teamB", "topicB")
	f.roster.SetTopic("teamC", "topicC")
	f.roster.SetCounts(testAssignment, counts)

	return f
}

func TestTopicFairness_AssignOne(t *testing.T) {
	ctx := context.Background()

	t.Run("lowest identifier among eligible topics wins", func(t *testing.T) {
		f := topicFixture(t, map[string]int{"teamA": 0, "teamB": 1, "teamC": 3})
		f.params.FairnessThreshold = 1

		s := NewTopicFairness(f.params)

		// Eligible topics are {topicA, topicB}; topicC is out of range.
		// Determinism requires topicA every time.
		for i := 0; i < 5; i++ {
			pair, err := s.AssignOne(ctx, reviewer("alice"))
			require.NoError(t, err)
			require.Equal(t, "teamA", pair.Reviewee.ID)
		}
	})

	t.Run("over-reviewed topic is never selected", func(t *testing.T) {
		f := topicFixture(t, map[string]int{"teamA": 0, "teamB": 1, "teamC": 3})
		f.params.FairnessThreshold = 1

		// Exclude topicA's team so selection falls through to topicB,
		// still never topicC.
		alice := types.Reviewer{ID: "alice", TeamID: "teamA"}
		f.roster.SetTeamMembers("teamA", []types.Reviewer{{ID: "alice"}})

		s := NewTopicFairness(f.params)

		pair, err := s.AssignOne(ctx, alice)
		require.NoError(t, err)
		require.Equal(t, "teamB", pair.Reviewee.ID)
	})

	t.Run("threshold widens the candidate set", func(t *testing.T) {
		f := topicFixture(t, map[string]int{"teamA": 0, "teamB": 1, "teamC": 3})
		f.params.FairnessThreshold = 3

		alice := types.Reviewer{ID: "alice", TeamID: "teamA"}
		f.roster.SetTeamMembers("teamA", []types.Reviewer{{ID: "alice"}})
		bob := types.Reviewer{ID: "bob", TeamID: "teamB"}
		f.roster.SetTeamMembers("teamB", []types.Reviewer{{ID: "bob"}})
		f.setReviewers(alice, bob)

		s := NewTopicFairness(f.params)

		// With k=3 topicC (count 3 <= 0+3) is in range once A and B are
		// excluded for alice and bob respectively.
		pair, err := s.AssignOne(ctx, alice)
		require.NoError(t, err)
		require.Equal(t, "teamB", pair.Reviewee.ID)

		pair, err = s.AssignOne(ctx, bob)
		require.NoError(t, err)
		require.Equal(t, "teamA", pair.Reviewee.ID)
	})

	t.Run("teams without a topic are out of scope", func(t *testing.T) {
		f := newFixture(t)
		f.setReviewers(reviewer("alice"))
		f.setTeams(team("t1"), team("t2"))
		f.roster.SetTopic("t2", "topicX")

		s := NewTopicFairness(f.params)

		pair, err := s.AssignOne(ctx, reviewer("alice"))
		require.NoError(t, err)
		require.Equal(t, "t2", pair.Reviewee.ID)
	})

	t.Run("no topics at all", func(t *testing.T) {
		f := newFixture(t)
		f.setReviewers(reviewer("alice"))
		f.setTeams(team("t1"))

		s := NewTopicFairness(f.params)

		_, err := s.AssignOne(ctx, reviewer("alice"))
		require.ErrorIs(t, err, types.ErrNoEligibleTopic)
		require.True(t, types.IsExhausted(err))
	})

	t.Run("every candidate topic exhausted for the reviewer", func(t *testing.T) {
		f := newFixture(t)
		alice := types.Reviewer{ID: "alice", TeamID: "t1"}
		f.setReviewers(alice)
		f.setTeams(team("t1"))
		f.roster.SetTopic("t1", "topicA")
		f.roster.SetTeamMembers("t1", []types.Reviewer{{ID: "alice"}})

		s := NewTopicFairness(f.params)

		_, err := s.AssignOne(ctx, alice)
		require.ErrorIs(t, err, types.ErrNoEligibleReviewee)
	})

	t.Run("not permitted", func(t *testing.T) {
		f := topicFixture(t, nil)
		f.params.Eligible = denyReviewers("alice")

		s := NewTopicFairness(f.params)

		_, err := s.AssignOne(ctx, reviewer("alice"))
		require.ErrorIs(t, err, types.ErrNotPermitted)
	})
}

func TestTopicFairness_ThresholdDefaults(t *testing.T) {
	f := newFixture(t)

	s := NewTopicFairness(f.params)
	require.Equal(t, DefaultFairnessThreshold, s.Threshold())

	f.params.FairnessThreshold = 4
	s = NewTopicFairness(f.params)
	require.Equal(t, 4, s.Threshold())

	f.params.FairnessThreshold = -2
	s = NewTopicFairness(f.params)
	require.Equal(t, DefaultFairnessThreshold, s.Threshold())
}
