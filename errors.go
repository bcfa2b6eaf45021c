package peerassign

import "github.com/expertiza/reimplementation-back-end-sub003/types"

// Sentinel errors, aliased from the types package so errors.Is matches
// across the whole library regardless of which package a caller imports.
var (
	// ErrNoDeadline is returned when a parent has no deadline of the
	// requested type at all.
	ErrNoDeadline = types.ErrNoDeadline

	// ErrUnknownActivity is returned when an activity name cannot be parsed.
	ErrUnknownActivity = types.ErrUnknownActivity

	// ErrDuplicateDeadline is returned when saving a deadline whose parent
	// already holds one of the same type and round.
	ErrDuplicateDeadline = types.ErrDuplicateDeadline

	// ErrUnsupportedStrategy is returned for an unknown strategy kind.
	ErrUnsupportedStrategy = types.ErrUnsupportedStrategy

	// ErrNoEligibleReviewee is returned when every candidate reviewee is
	// excluded for the requesting reviewer.
	ErrNoEligibleReviewee = types.ErrNoEligibleReviewee

	// ErrNoEligibleTopic is returned when no sign-up topic has reviewee
	// teams.
	ErrNoEligibleTopic = types.ErrNoEligibleTopic

	// ErrNotPermitted is returned when the requesting reviewer lacks review
	// permission.
	ErrNotPermitted = types.ErrNotPermitted

	// ErrDuplicateMapping is returned when mapping creation hits the
	// uniqueness constraint.
	ErrDuplicateMapping = types.ErrDuplicateMapping

	// ErrUnavailable indicates a transient data-source failure.
	ErrUnavailable = types.ErrUnavailable

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrRosterRequired is returned when the roster provider is nil.
	ErrRosterRequired = types.ErrRosterRequired

	// ErrDeadlineStoreRequired is returned when the deadline store is nil.
	ErrDeadlineStoreRequired = types.ErrDeadlineStoreRequired

	// ErrMappingStoreRequired is returned when the mapping store is nil.
	ErrMappingStoreRequired = types.ErrMappingStoreRequired
)

// IsExhausted reports whether an error is an allocation-exhaustion result
// rather than a real failure. See types.IsExhausted.
func IsExhausted(err error) bool { return types.IsExhausted(err) }
