package deadline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// StageFinished is the stage reported when a parent has no upcoming
// deadline: every scheduled cutoff has passed (or none exists).
const StageFinished = "finished"

// ValidateSchedule walks the parent's deadlines in stored order and confirms
// that DueAt values are non-decreasing. A data-integrity check, not an
// allocation gate: permission resolution works on unordered schedules too.
//
// Returns:
//   - types.ScheduleReport: Ordered flag plus the first violating index
//   - error: Only a wrapped types.ErrUnavailable on store failure
func (e *Engine) ValidateSchedule(ctx context.Context, parent types.ParentRef) (types.ScheduleReport, error) {
	deadlines, err := e.load(ctx, parent)
	if err != nil {
		return types.ScheduleReport{}, err
	}

	for i := 1; i < len(deadlines); i++ {
		if deadlines[i].DueAt.Before(deadlines[i-1].DueAt) {
			e.log.Warn("deadline schedule out of order",
				"parent", parent.String(),
				"index", i,
				"dueAt", deadlines[i].DueAt,
			)

			return types.ScheduleReport{Ordered: false, FirstViolationIndex: i}, nil
		}
	}

	return types.ScheduleReport{Ordered: true, FirstViolationIndex: -1}, nil
}

// CopyTo clones every deadline owned by sourceParent onto newParent,
// preserving all fields except identity and parent reference. The originals
// are not modified. This is the single place collection-level duplication
// occurs; an individual deadline only ever clones itself.
//
// Parameters:
//   - ctx: Context for store operations
//   - sourceParent: Parent whose schedule is copied
//   - newParent: Parent that receives the clones
//
// Returns:
//   - int: Number of deadlines cloned
//   - error: Store failure; clones saved before the failure remain
func (e *Engine) CopyTo(ctx context.Context, sourceParent, newParent types.ParentRef) (int, error) {
	deadlines, err := e.load(ctx, sourceParent)
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, d := range deadlines {
		clone := d.Clone()
		clone.Parent = newParent
		if _, err := e.store.SaveDeadline(ctx, clone); err != nil {
			return copied, fmt.Errorf("copy deadline %s round %d: %w", d.Type, d.Round, err)
		}
		copied++
	}

	e.log.Info("schedule copied",
		"source", sourceParent.String(),
		"target", newParent.String(),
		"count", copied,
	)

	return copied, nil
}

// ShiftDeadlinesOfType adds interval to DueAt on every deadline of the
// parent matching the deadline type.
//
// The shift is deliberately permissive: it does not reject shifts that break
// chronological ordering, so administrators can stage multi-step edits.
// Callers that require strict ordering call ValidateSchedule afterward.
//
// Parameters:
//   - ctx: Context for store operations
//   - parent: Parent whose schedule is shifted
//   - dt: Deadline category to shift
//   - interval: Offset to add (negative moves deadlines earlier)
//
// Returns:
//   - int: Number of deadlines shifted
//   - error: Store failure
func (e *Engine) ShiftDeadlinesOfType(ctx context.Context, parent types.ParentRef, dt types.DeadlineType, interval time.Duration) (int, error) {
	deadlines, err := e.load(ctx, parent)
	if err != nil {
		return 0, err
	}

	shifted := 0
	for i := range deadlines {
		if deadlines[i].Type != dt {
			continue
		}
		deadlines[i].DueAt = deadlines[i].DueAt.Add(interval)
		shifted++
	}
	if shifted == 0 {
		return 0, nil
	}

	if err := e.store.ReplaceDeadlines(ctx, parent, deadlines); err != nil {
		return 0, fmt.Errorf("%w: persist shifted deadlines for %s: %w", types.ErrUnavailable, parent, err)
	}

	e.metrics.RecordScheduleShift(dt, shifted)
	e.log.Info("deadlines shifted",
		"parent", parent.String(),
		"type", dt.String(),
		"interval", interval.String(),
		"count", shifted,
	)

	return shifted, nil
}

// NextDueDate returns the earliest DueAt at or after the reference time.
//
// Returns:
//   - time.Time: The next cutoff
//   - error: types.ErrNoDeadline when nothing is upcoming
func (e *Engine) NextDueDate(ctx context.Context, parent types.ParentRef, at time.Time) (time.Time, error) {
	upcoming, err := e.Upcoming(ctx, parent, at)
	if err != nil {
		return time.Time{}, err
	}
	if len(upcoming) == 0 {
		return time.Time{}, fmt.Errorf("%w: no upcoming deadline for %s", types.ErrNoDeadline, parent)
	}

	return upcoming[0].DueAt, nil
}

// CurrentStage returns the name of the deadline type whose cutoff comes next
// at the reference time, or StageFinished when every deadline has passed.
// Derived purely from the parent's deadlines.
func (e *Engine) CurrentStage(ctx context.Context, parent types.ParentRef, at time.Time) (string, error) {
	upcoming, err := e.Upcoming(ctx, parent, at)
	if err != nil {
		return "", err
	}
	if len(upcoming) == 0 {
		return StageFinished, nil
	}

	return upcoming[0].Type.String(), nil
}

// Upcoming returns the parent's deadlines with DueAt at or after the
// reference time, sorted ascending by DueAt.
func (e *Engine) Upcoming(ctx context.Context, parent types.ParentRef, at time.Time) ([]types.Deadline, error) {
	return e.query(ctx, parent, func(d types.Deadline) bool { return !d.DueAt.Before(at) })
}

// Overdue returns the parent's deadlines with DueAt strictly before the
// reference time, sorted ascending by DueAt.
func (e *Engine) Overdue(ctx context.Context, parent types.ParentRef, at time.Time) ([]types.Deadline, error) {
	return e.query(ctx, parent, func(d types.Deadline) bool { return d.DueAt.Before(at) })
}

func (e *Engine) query(ctx context.Context, parent types.ParentRef, keep func(types.Deadline) bool) ([]types.Deadline, error) {
	deadlines, err := e.load(ctx, parent)
	if err != nil {
		return nil, err
	}

	matched := make([]types.Deadline, 0, len(deadlines))
	for _, d := range deadlines {
		if keep(d) {
			matched = append(matched, d)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Compare(matched[j]) < 0
	})

	return matched, nil
}
