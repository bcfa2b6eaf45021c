package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

func TestStaticDeadlines_StoredOrder(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// Authored order is preserved even when it is not chronological
	store := NewStaticDeadlines(
		types.Deadline{Parent: assignment, Type: types.DeadlineReview, DueAt: base.Add(time.Hour)},
		types.Deadline{Parent: assignment, Type: types.DeadlineSubmission, DueAt: base},
	)

	rows, err := store.DeadlinesFor(ctx, assignment)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, types.DeadlineReview, rows[0].Type)
	require.Equal(t, types.DeadlineSubmission, rows[1].Type)
}

func TestStaticDeadlines_SaveDeadline(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	store := NewStaticDeadlines()

	t.Run("assigns identity on save", func(t *testing.T) {
		saved, err := store.SaveDeadline(ctx, types.Deadline{
			Parent: assignment,
			Type:   types.DeadlineSubmission,
			Round:  1,
			DueAt:  base,
		})
		require.NoError(t, err)
		require.NotEmpty(t, saved.ID)
	})

	t.Run("rejects duplicate type and round", func(t *testing.T) {
		_, err := store.SaveDeadline(ctx, types.Deadline{
			Parent: assignment,
			Type:   types.DeadlineSubmission,
			Round:  1,
			DueAt:  base.Add(time.Hour),
		})
		require.ErrorIs(t, err, types.ErrDuplicateDeadline)
	})

	t.Run("same type in another round is fine", func(t *testing.T) {
		_, err := store.SaveDeadline(ctx, types.Deadline{
			Parent: assignment,
			Type:   types.DeadlineSubmission,
			Round:  2,
			DueAt:  base.Add(time.Hour),
		})
		require.NoError(t, err)
	})

	t.Run("same type and round under another parent is fine", func(t *testing.T) {
		_, err := store.SaveDeadline(ctx, types.Deadline{
			Parent: types.AssignmentRef("other"),
			Type:   types.DeadlineSubmission,
			Round:  1,
			DueAt:  base,
		})
		require.NoError(t, err)
	})
}

func TestStaticDeadlines_SeedCollisionPanics(t *testing.T) {
	require.Panics(t, func() {
		NewStaticDeadlines(
			types.Deadline{Parent: assignment, Type: types.DeadlineReview, Round: 1},
			types.Deadline{Parent: assignment, Type: types.DeadlineReview, Round: 1},
		)
	})
}

func TestStaticDeadlines_ReplaceDeadlines(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	store := NewStaticDeadlines(
		types.Deadline{Parent: assignment, Type: types.DeadlineSubmission, DueAt: base},
		types.Deadline{Parent: assignment, Type: types.DeadlineReview, DueAt: base.Add(time.Hour)},
	)

	replacement := []types.Deadline{
		{Type: types.DeadlineQuiz, DueAt: base.Add(2 * time.Hour)},
	}
	require.NoError(t, store.ReplaceDeadlines(ctx, assignment, replacement))

	rows, err := store.DeadlinesFor(ctx, assignment)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, types.DeadlineQuiz, rows[0].Type)
	require.Equal(t, assignment, rows[0].Parent)
	require.NotEmpty(t, rows[0].ID)
}

func TestStaticDeadlines_RemoveParent(t *testing.T) {
	ctx := context.Background()

	store := NewStaticDeadlines(
		types.Deadline{Parent: assignment, Type: types.DeadlineSubmission},
		types.Deadline{Parent: types.TopicRef("7"), Type: types.DeadlineSubmission},
	)

	store.RemoveParent(assignment)

	rows, err := store.DeadlinesFor(ctx, assignment)
	require.NoError(t, err)
	require.Empty(t, rows)

	// Other parents are untouched
	rows, err = store.DeadlinesFor(ctx, types.TopicRef("7"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
