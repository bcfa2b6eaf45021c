package types

import "fmt"

// ActivityType identifies a time-gated activity a participant may perform
// against an assignment or sign-up topic. Each activity maps to exactly one
// DeadlineType and to one right field on a Deadline.
type ActivityType int

const (
	ActivitySubmission ActivityType = iota
	ActivityReview
	ActivityTeammateReview
	ActivityQuiz
	ActivityMetareview
)

var activityNames = map[ActivityType]string{
	ActivitySubmission:     "submission",
	ActivityReview:         "review",
	ActivityTeammateReview: "teammate_review",
	ActivityQuiz:           "quiz",
	ActivityMetareview:     "metareview",
}

// String returns the canonical snake_case name of the activity.
func (a ActivityType) String() string {
	if name, ok := activityNames[a]; ok {
		return name
	}

	return fmt.Sprintf("activity(%d)", int(a))
}

// Valid reports whether a is a known activity type.
func (a ActivityType) Valid() bool {
	_, ok := activityNames[a]
	return ok
}

// DeadlineType returns the deadline category whose deadlines gate this
// activity. The mapping is one-to-one by name.
func (a ActivityType) DeadlineType() DeadlineType {
	switch a {
	case ActivitySubmission:
		return DeadlineSubmission
	case ActivityReview:
		return DeadlineReview
	case ActivityTeammateReview:
		return DeadlineTeammateReview
	case ActivityQuiz:
		return DeadlineQuiz
	case ActivityMetareview:
		return DeadlineMetareview
	default:
		return DeadlineType(-1)
	}
}

// ParseActivityType resolves a snake_case activity name to its ActivityType.
//
// Unknown names return ErrUnknownActivity. Passing an unparseable name is a
// configuration mistake, not a runtime data condition, so this fails loudly
// at the boundary instead of resolving to a safe default.
//
// Parameters:
//   - name: Canonical activity name (e.g., "review", "teammate_review")
//
// Returns:
//   - ActivityType: The parsed activity type
//   - error: ErrUnknownActivity for unrecognized names
func ParseActivityType(name string) (ActivityType, error) {
	for a, n := range activityNames {
		if n == name {
			return a, nil
		}
	}

	return ActivityType(-1), fmt.Errorf("%w: %q", ErrUnknownActivity, name)
}

// AllActivityTypes returns every known activity type in declaration order.
// Used by permission summaries that must cover the full vocabulary.
func AllActivityTypes() []ActivityType {
	return []ActivityType{
		ActivitySubmission,
		ActivityReview,
		ActivityTeammateReview,
		ActivityQuiz,
		ActivityMetareview,
	}
}

// DeadlineType is the named category of a deadline. It is a superset of the
// activity vocabulary: some deadline categories (signup, drop_topic,
// team_formation) gate schedule-level operations rather than a reviewable
// activity and carry no per-activity right field.
type DeadlineType int

const (
	DeadlineSubmission DeadlineType = iota
	DeadlineReview
	DeadlineTeammateReview
	DeadlineQuiz
	DeadlineMetareview
	DeadlineTeamFormation
	DeadlineSignup
	DeadlineDropTopic
)

var deadlineTypeNames = map[DeadlineType]string{
	DeadlineSubmission:     "submission",
	DeadlineReview:         "review",
	DeadlineTeammateReview: "teammate_review",
	DeadlineQuiz:           "quiz",
	DeadlineMetareview:     "metareview",
	DeadlineTeamFormation:  "team_formation",
	DeadlineSignup:         "signup",
	DeadlineDropTopic:      "drop_topic",
}

// String returns the canonical snake_case name of the deadline type.
func (d DeadlineType) String() string {
	if name, ok := deadlineTypeNames[d]; ok {
		return name
	}

	return fmt.Sprintf("deadline_type(%d)", int(d))
}

// Valid reports whether d is a known deadline type.
func (d DeadlineType) Valid() bool {
	_, ok := deadlineTypeNames[d]
	return ok
}

// ParseDeadlineType resolves a snake_case deadline-type name.
//
// Returns:
//   - DeadlineType: The parsed deadline type
//   - error: ErrUnknownDeadlineType for unrecognized names
func ParseDeadlineType(name string) (DeadlineType, error) {
	for d, n := range deadlineTypeNames {
		if n == name {
			return d, nil
		}
	}

	return DeadlineType(-1), fmt.Errorf("%w: %q", ErrUnknownDeadlineType, name)
}
