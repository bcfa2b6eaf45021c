package types

import "time"

// RightSet carries the per-activity permission rights of one deadline.
//
// Each field references a Right; the zero value (RightNo) doubles as the
// "absent" state, so a schedule that never mentions an activity denies it.
type RightSet struct {
	Submission     Right `json:"submission"      yaml:"submission"`
	Review         Right `json:"review"          yaml:"review"`
	Quiz           Right `json:"quiz"            yaml:"quiz"`
	TeammateReview Right `json:"teammateReview"  yaml:"teammateReview"`
	Metareview     Right `json:"metareview"      yaml:"metareview"`
}

// For returns the right governing the given activity. Unknown activities
// resolve to RightNo.
func (rs RightSet) For(activity ActivityType) Right {
	switch activity {
	case ActivitySubmission:
		return rs.Submission
	case ActivityReview:
		return rs.Review
	case ActivityQuiz:
		return rs.Quiz
	case ActivityTeammateReview:
		return rs.TeammateReview
	case ActivityMetareview:
		return rs.Metareview
	default:
		return RightNo
	}
}

// Deadline is one scheduled cutoff for one parent entity.
//
// Invariants (enforced by DeadlineStore implementations):
//   - For a single parent, deadlines of the same Type and Round are unique.
//   - DueAt values in a well-formed schedule are non-decreasing in stored
//     order; deadline.Engine.ValidateSchedule detects violations.
//
// A deadline whose cutoff has passed stays queryable so that activities which
// already occurred against it can be audited retroactively.
type Deadline struct {
	// ID is the storage identity. Empty on a deadline that has not been
	// persisted yet; DeadlineStore implementations assign it on save.
	ID string `json:"id" yaml:"id"`

	// Parent is the owning assignment or sign-up topic.
	Parent ParentRef `json:"parent" yaml:"parent"`

	// Type is the deadline category.
	Type DeadlineType `json:"type" yaml:"type"`

	// Round distinguishes deadlines of the same type in multi-round
	// assignments. Zero means the assignment has a single round.
	Round int `json:"round" yaml:"round"`

	// DueAt is the scheduled cutoff instant.
	DueAt time.Time `json:"dueAt" yaml:"dueAt"`

	// Rights are the per-activity permissions that apply while this is the
	// current deadline.
	Rights RightSet `json:"rights" yaml:"rights"`
}

// RightFor returns the right this deadline grants for the given activity.
func (d Deadline) RightFor(activity ActivityType) Right {
	return d.Rights.For(activity)
}

// Clone returns an independent copy of the deadline with its identity and
// parent reference cleared. A deadline only ever duplicates itself; cloning a
// parent's whole collection is the deadline engine's CopyTo operation.
func (d Deadline) Clone() Deadline {
	c := d
	c.ID = ""
	c.Parent = ParentRef{}

	return c
}

// Compare orders deadlines by DueAt, then Type, then Round. Used for stable
// sorting of a parent's schedule.
//
// Returns:
//   - int: -1 if d sorts before q, 0 if equal, +1 if d sorts after q
func (d Deadline) Compare(q Deadline) int {
	if d.DueAt.Before(q.DueAt) {
		return -1
	}
	if d.DueAt.After(q.DueAt) {
		return 1
	}
	if d.Type != q.Type {
		if d.Type < q.Type {
			return -1
		}

		return 1
	}
	if d.Round != q.Round {
		if d.Round < q.Round {
			return -1
		}

		return 1
	}

	return 0
}

// ScheduleReport is the result of validating a parent's deadline ordering.
type ScheduleReport struct {
	// Ordered is true when DueAt values are non-decreasing in stored order.
	Ordered bool

	// FirstViolationIndex is the index of the first deadline whose DueAt
	// precedes its predecessor's, or -1 when the schedule is ordered.
	FirstViolationIndex int
}
