package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseActivityType(t *testing.T) {
	t.Run("known names resolve", func(t *testing.T) {
		cases := map[string]ActivityType{
			"submission":      ActivitySubmission,
			"review":          ActivityReview,
			"teammate_review": ActivityTeammateReview,
			"quiz":            ActivityQuiz,
			"metareview":      ActivityMetareview,
		}

		for name, want := range cases {
			got, err := ParseActivityType(name)
			require.NoError(t, err)
			require.Equal(t, want, got)
			require.Equal(t, name, got.String())
		}
	})

	t.Run("unknown name fails loudly", func(t *testing.T) {
		_, err := ParseActivityType("signup")
		require.ErrorIs(t, err, ErrUnknownActivity)

		_, err = ParseActivityType("")
		require.ErrorIs(t, err, ErrUnknownActivity)

		_, err = ParseActivityType("Review")
		require.ErrorIs(t, err, ErrUnknownActivity)
	})
}

func TestActivityType_DeadlineType(t *testing.T) {
	// Each activity maps one-to-one onto the deadline type of the same name
	for _, activity := range AllActivityTypes() {
		dt := activity.DeadlineType()
		require.True(t, dt.Valid())
		require.Equal(t, activity.String(), dt.String())
	}

	require.False(t, ActivityType(99).DeadlineType().Valid())
}

func TestAllActivityTypes(t *testing.T) {
	all := AllActivityTypes()

	require.Len(t, all, 5)
	for _, a := range all {
		require.True(t, a.Valid())
	}
}

func TestParseDeadlineType(t *testing.T) {
	t.Run("superset of activity vocabulary", func(t *testing.T) {
		names := []string{
			"submission", "review", "teammate_review", "quiz", "metareview",
			"team_formation", "signup", "drop_topic",
		}

		for _, name := range names {
			dt, err := ParseDeadlineType(name)
			require.NoError(t, err)
			require.True(t, dt.Valid())
			require.Equal(t, name, dt.String())
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseDeadlineType("grading")
		require.ErrorIs(t, err, ErrUnknownDeadlineType)
	})
}

func TestParseStrategyKind(t *testing.T) {
	t.Run("closed kind set", func(t *testing.T) {
		cases := map[string]StrategyKind{
			"round_robin":    StrategyRoundRobin,
			"random":         StrategyRandom,
			"fewest_reviews": StrategyFewestReviews,
			"topic_fairness": StrategyTopicFairness,
			"csv":            StrategyCSV,
		}

		for name, want := range cases {
			got, err := ParseStrategyKind(name)
			require.NoError(t, err)
			require.Equal(t, want, got)
			require.Equal(t, name, got.String())
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := ParseStrategyKind("greedy")
		require.ErrorIs(t, err, ErrUnsupportedStrategy)
	})
}

func TestParentRef(t *testing.T) {
	t.Run("string form", func(t *testing.T) {
		require.Equal(t, "assignment:42", AssignmentRef("42").String())
		require.Equal(t, "signup_topic:7", TopicRef("7").String())
	})

	t.Run("validity", func(t *testing.T) {
		require.True(t, AssignmentRef("42").Valid())
		require.False(t, AssignmentRef("").Valid())
		require.False(t, ParentRef{Kind: ParentKind(9), ID: "x"}.Valid())
	})

	t.Run("zero value", func(t *testing.T) {
		var p ParentRef
		require.True(t, p.IsZero())
		require.False(t, AssignmentRef("1").IsZero())
	})

	t.Run("usable as map key", func(t *testing.T) {
		m := map[ParentRef]int{
			AssignmentRef("42"): 1,
			TopicRef("42"):      2,
		}

		// Same ID under different kinds stays distinct
		require.Equal(t, 1, m[AssignmentRef("42")])
		require.Equal(t, 2, m[TopicRef("42")])
	})
}
