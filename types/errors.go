package types

import "errors"

// Sentinel errors for the peerassign library.
//
// All errors are checkable with errors.Is(); components wrap them with
// context using fmt.Errorf("...: %w", err).
//
// The taxonomy follows the engine's failure semantics:
//   - Lookup failures (absent parent, absent deadline, absent right) resolve
//     to safe defaults and are never raised during permission checks.
//   - Configuration/usage errors (unknown activity name, unsupported
//     strategy) are raised immediately.
//   - Allocation exhaustion (no eligible reviewee/topic) is a typed,
//     recoverable result.
//   - Commit conflicts (duplicate mapping) surface to the caller, who
//     decides retry vs. skip.
//   - Transient data-source failures propagate as ErrUnavailable; the engine
//     performs no internal retries.

// Permission engine errors.
var (
	// ErrNoDeadline is returned when a parent has no deadline of the
	// requested type at all.
	ErrNoDeadline = errors.New("no deadline of requested type")

	// ErrUnknownActivity is returned when an activity name cannot be parsed.
	ErrUnknownActivity = errors.New("unknown activity type")

	// ErrUnknownDeadlineType is returned when a deadline-type name cannot be
	// parsed.
	ErrUnknownDeadlineType = errors.New("unknown deadline type")

	// ErrDuplicateDeadline is returned when saving a deadline whose parent
	// already holds one of the same type and round.
	ErrDuplicateDeadline = errors.New("duplicate deadline for type and round")
)

// Strategy errors.
var (
	// ErrUnsupportedStrategy is returned by the factory for an unknown
	// strategy kind. This indicates a programming or configuration mistake.
	ErrUnsupportedStrategy = errors.New("unsupported assignment strategy")

	// ErrNoEligibleReviewee is returned when every candidate reviewee is
	// excluded for the requesting reviewer. A normal end state.
	ErrNoEligibleReviewee = errors.New("no eligible reviewee")

	// ErrNoEligibleTopic is returned by topic-fairness assignment when no
	// sign-up topic has reviewee teams.
	ErrNoEligibleTopic = errors.New("no eligible topic")

	// ErrNotPermitted is returned when the requesting reviewer does not
	// currently hold review permission for the assignment.
	ErrNotPermitted = errors.New("review not permitted for reviewer")
)

// Store errors.
var (
	// ErrDuplicateMapping is returned when creating a mapping whose
	// (reviewer, reviewee, assignment) triple already exists.
	ErrDuplicateMapping = errors.New("duplicate review mapping")

	// ErrUnavailable indicates a transient data-source failure (store
	// unreachable, corrupt reference). Propagated without retries.
	ErrUnavailable = errors.New("data source unavailable")
)

// Engine construction errors.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRosterRequired is returned when the roster provider is nil.
	ErrRosterRequired = errors.New("roster provider is required")

	// ErrDeadlineStoreRequired is returned when the deadline store is nil.
	ErrDeadlineStoreRequired = errors.New("deadline store is required")

	// ErrMappingStoreRequired is returned when the mapping store is nil.
	ErrMappingStoreRequired = errors.New("mapping store is required")
)

// IsExhausted reports whether an error is an allocation-exhaustion result
// (no eligible reviewee or topic remaining) rather than a real failure.
// Callers typically react by trying a different strategy or relaxing the
// fairness threshold.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true for ErrNoEligibleReviewee and ErrNoEligibleTopic
func IsExhausted(err error) bool {
	return errors.Is(err, ErrNoEligibleReviewee) || errors.Is(err, ErrNoEligibleTopic)
}
