package deadline

import (
	"context"
	"fmt"
	"time"

	"github.com/expertiza/reimplementation-back-end-sub003/internal/logger"
	"github.com/expertiza/reimplementation-back-end-sub003/internal/metrics"
	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// Engine computes activity eligibility for parent entities from their
// deadline schedules.
//
// The engine is stateless between invocations: every call re-reads the
// parent's deadlines from the store and recomputes the decision, so repeated
// calls with the same inputs return the same result absent intervening
// writes.
//
// Thread safety: all methods are safe for concurrent use provided the
// underlying DeadlineStore is.
type Engine struct {
	store   types.DeadlineStore
	log     types.Logger
	metrics types.MetricsCollector
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(log types.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithMetrics sets the metrics collector. Defaults to a no-op collector.
func WithMetrics(m types.MetricsCollector) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithClock sets the time source used by the non-At operation variants.
// Defaults to time.Now. Tests inject a fixed clock for reproducibility.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates a deadline permission engine backed by the given store.
//
// Parameters:
//   - store: Source of truth for deadline rows
//   - opts: Optional logger, metrics, and clock
//
// Returns:
//   - *Engine: Initialized engine
func New(store types.DeadlineStore, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		log:     logger.NewNop(),
		metrics: metrics.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// CurrentDeadline selects the deadline governing the activity at the
// engine's current clock time. See CurrentDeadlineAt.
func (e *Engine) CurrentDeadline(ctx context.Context, parent types.ParentRef, activity types.ActivityType) (types.Deadline, error) {
	return e.CurrentDeadlineAt(ctx, parent, activity, e.now())
}

// CurrentDeadlineAt selects, among the parent's deadlines whose type gates
// the activity, the one with the smallest DueAt at or after the reference
// time; when every deadline has passed, the most recently passed one.
//
// Parameters:
//   - ctx: Context for the store lookup
//   - parent: The owning assignment or sign-up topic
//   - activity: The gated activity
//   - at: Reference time
//
// Returns:
//   - types.Deadline: The governing deadline
//   - error: types.ErrNoDeadline when the parent has no deadline of the
//     activity's type, or a wrapped types.ErrUnavailable on store failure
func (e *Engine) CurrentDeadlineAt(ctx context.Context, parent types.ParentRef, activity types.ActivityType, at time.Time) (types.Deadline, error) {
	deadlines, err := e.load(ctx, parent)
	if err != nil {
		return types.Deadline{}, err
	}

	d, ok := selectCurrent(deadlines, activity.DeadlineType(), at)
	if !ok {
		return types.Deadline{}, fmt.Errorf("%w: parent=%s activity=%s", types.ErrNoDeadline, parent, activity)
	}

	return d, nil
}

// PermissionStatus resolves the activity's status at the engine's current
// clock time. See PermissionStatusAt.
func (e *Engine) PermissionStatus(ctx context.Context, parent types.ParentRef, activity types.ActivityType) (types.Right, error) {
	return e.PermissionStatusAt(ctx, parent, activity, e.now())
}

// PermissionStatusAt resolves the current deadline for the activity and maps
// its right field to a status.
//
// The result is always one of {RightOK, RightLate, RightNo}. An absent
// parent, an absent deadline of the activity's type, or an absent right all
// resolve to RightNo rather than an error: permission checks must never
// become a failure source on the allocation path.
//
// Returns:
//   - types.Right: The resolved status
//   - error: Only a wrapped types.ErrUnavailable on store failure
func (e *Engine) PermissionStatusAt(ctx context.Context, parent types.ParentRef, activity types.ActivityType, at time.Time) (types.Right, error) {
	deadlines, err := e.load(ctx, parent)
	if err != nil {
		return types.RightNo, err
	}

	status := resolveStatus(deadlines, activity, at)
	e.metrics.RecordPermissionCheck(activity, status)
	e.log.Debug("permission status resolved",
		"parent", parent.String(),
		"activity", activity.String(),
		"status", status.String(),
	)

	return status, nil
}

// IsPermitted reports whether the activity is currently allowed, with or
// without penalty, at the engine's current clock time.
func (e *Engine) IsPermitted(ctx context.Context, parent types.ParentRef, activity types.ActivityType) (bool, error) {
	return e.IsPermittedAt(ctx, parent, activity, e.now())
}

// IsPermittedAt reports whether the resolved status grants access at the
// reference time.
func (e *Engine) IsPermittedAt(ctx context.Context, parent types.ParentRef, activity types.ActivityType, at time.Time) (bool, error) {
	status, err := e.PermissionStatusAt(ctx, parent, activity, at)
	if err != nil {
		return false, err
	}

	return status.Grants(), nil
}

// ActivePermissionSummary resolves the status of every known activity type
// at the engine's current clock time. See ActivePermissionSummaryAt.
func (e *Engine) ActivePermissionSummary(ctx context.Context, parent types.ParentRef) (map[types.ActivityType]types.Right, error) {
	return e.ActivePermissionSummaryAt(ctx, parent, e.now())
}

// ActivePermissionSummaryAt resolves the status of every known activity type
// in one pass over the parent's deadlines. Intended for display and audit,
// not for allocation decisions.
//
// Returns:
//   - map[types.ActivityType]types.Right: Status per activity; every known
//     activity is present, never nil
//   - error: Only a wrapped types.ErrUnavailable on store failure
func (e *Engine) ActivePermissionSummaryAt(ctx context.Context, parent types.ParentRef, at time.Time) (map[types.ActivityType]types.Right, error) {
	deadlines, err := e.load(ctx, parent)
	if err != nil {
		return nil, err
	}

	summary := make(map[types.ActivityType]types.Right, len(types.AllActivityTypes()))
	for _, activity := range types.AllActivityTypes() {
		summary[activity] = resolveStatus(deadlines, activity, at)
	}

	return summary, nil
}

// SubmissionAllowed reports whether submission is currently permitted.
// Sugar over IsPermitted; all per-activity helpers share the one generic
// resolution path.
func (e *Engine) SubmissionAllowed(ctx context.Context, parent types.ParentRef) (bool, error) {
	return e.IsPermitted(ctx, parent, types.ActivitySubmission)
}

// ReviewAllowed reports whether reviewing is currently permitted.
func (e *Engine) ReviewAllowed(ctx context.Context, parent types.ParentRef) (bool, error) {
	return e.IsPermitted(ctx, parent, types.ActivityReview)
}

// QuizAllowed reports whether quiz-taking is currently permitted.
func (e *Engine) QuizAllowed(ctx context.Context, parent types.ParentRef) (bool, error) {
	return e.IsPermitted(ctx, parent, types.ActivityQuiz)
}

// TeammateReviewAllowed reports whether teammate review is currently
// permitted.
func (e *Engine) TeammateReviewAllowed(ctx context.Context, parent types.ParentRef) (bool, error) {
	return e.IsPermitted(ctx, parent, types.ActivityTeammateReview)
}

// MetareviewAllowed reports whether metareview is currently permitted.
func (e *Engine) MetareviewAllowed(ctx context.Context, parent types.ParentRef) (bool, error) {
	return e.IsPermitted(ctx, parent, types.ActivityMetareview)
}

// load reads the parent's deadlines, wrapping store failures so callers can
// distinguish infrastructure errors from data absence.
func (e *Engine) load(ctx context.Context, parent types.ParentRef) ([]types.Deadline, error) {
	deadlines, err := e.store.DeadlinesFor(ctx, parent)
	if err != nil {
		return nil, fmt.Errorf("%w: load deadlines for %s: %w", types.ErrUnavailable, parent, err)
	}

	return deadlines, nil
}

// resolveStatus maps the current deadline's right for the activity to a
// status, resolving absence to RightNo.
func resolveStatus(deadlines []types.Deadline, activity types.ActivityType, at time.Time) types.Right {
	d, ok := selectCurrent(deadlines, activity.DeadlineType(), at)
	if !ok {
		return types.RightNo
	}

	right := d.RightFor(activity)
	if !right.Valid() {
		return types.RightNo
	}

	return right
}

// selectCurrent picks the governing deadline of the given type at the
// reference time: the next upcoming one, else the most recently passed one.
func selectCurrent(deadlines []types.Deadline, dt types.DeadlineType, at time.Time) (types.Deadline, bool) {
	var (
		next, prev       types.Deadline
		hasNext, hasPrev bool
	)

	for _, d := range deadlines {
		if d.Type != dt {
			continue
		}
		if !d.DueAt.Before(at) {
			if !hasNext || d.DueAt.Before(next.DueAt) {
				next = d
				hasNext = true
			}
		} else {
			if !hasPrev || d.DueAt.After(prev.DueAt) {
				prev = d
				hasPrev = true
			}
		}
	}

	if hasNext {
		return next, true
	}
	if hasPrev {
		return prev, true
	}

	return types.Deadline{}, false
}
