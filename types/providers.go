package types

import "context"

// RosterProvider is the read-only view over participants, teams, and
// existing-review bookkeeping for one assignment. The engine consumes it and
// must not reimplement it; persistence and querying of the underlying domain
// records belong to the surrounding application.
//
// Ordering contract: EligibleReviewers and Teams return stable, ordered
// sequences. Strategy determinism (round-robin rotation, first-encountered
// tie-breaks) is defined over these orders.
type RosterProvider interface {
	// EligibleReviewers returns the ordered participants who may review for
	// the assignment. Deadline-derived permission is NOT applied here; the
	// strategies gate each reviewer through an EligibilityPredicate.
	EligibleReviewers(ctx context.Context, assignment ParentRef) ([]Reviewer, error)

	// Teams returns the ordered reviewee teams for the assignment.
	Teams(ctx context.Context, assignment ParentRef) ([]Team, error)

	// TeamMembers returns the participants belonging to a team. Used for the
	// no-self-review constraint.
	TeamMembers(ctx context.Context, teamID string) ([]Reviewer, error)

	// ExistingMappingCounts returns the number of existing review mappings
	// per reviewee ID for the assignment. Teams with no mappings may be
	// absent from the map; absent means zero.
	ExistingMappingCounts(ctx context.Context, assignment ParentRef) (map[string]int, error)

	// TopicOf returns the sign-up topic a team registered for, or "" when
	// the team has no topic.
	TopicOf(ctx context.Context, teamID string) (string, error)
}

// DeadlineSource provides the deadline rows of a parent entity.
//
// DeadlinesFor returns the parent's deadlines in stored (authored) order;
// schedule validation is defined over that order. An absent parent yields an
// empty slice, not an error: permission checks resolve absence to the safe
// default and must never become a failure source on the allocation path.
type DeadlineSource interface {
	DeadlinesFor(ctx context.Context, parent ParentRef) ([]Deadline, error)
}

// DeadlineStore extends DeadlineSource with the mutations the deadline
// engine performs when schedules are copied or shifted.
type DeadlineStore interface {
	DeadlineSource

	// SaveDeadline persists a new deadline and assigns its identity.
	//
	// Returns:
	//   - Deadline: The saved deadline with ID populated
	//   - error: ErrDuplicateDeadline when the parent already has a deadline
	//     of the same Type and Round
	SaveDeadline(ctx context.Context, d Deadline) (Deadline, error)

	// ReplaceDeadlines atomically replaces the parent's deadline set,
	// preserving the given order as the stored order. Used by bulk
	// time-shifts.
	ReplaceDeadlines(ctx context.Context, parent ParentRef, deadlines []Deadline) error
}

// MappingStore persists review mappings. It owns the uniqueness constraint
// on the (reviewer, reviewee, assignment) triple: Create is the single
// serialization point that makes concurrent fairness races safe, so
// implementations must reject duplicates atomically.
type MappingStore interface {
	// Create persists the mapping.
	//
	// Returns:
	//   - error: ErrDuplicateMapping when the triple already exists; the
	//     caller decides retry vs. skip
	Create(ctx context.Context, m Mapping) error

	// Exists reports whether the triple is already mapped.
	Exists(ctx context.Context, reviewerID, revieweeID string, assignment ParentRef) (bool, error)

	// Delete removes the mapping identified by m's uniqueness key. Deleting
	// an absent mapping is a no-op.
	Delete(ctx context.Context, m Mapping) error

	// CountsByReviewee returns the number of persisted mappings per reviewee
	// ID for the assignment.
	CountsByReviewee(ctx context.Context, assignment ParentRef) (map[string]int, error)
}
