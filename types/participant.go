package types

import "fmt"

// Reviewer is a participant who performs reviews. The engine treats reviewers
// as weak references: it looks them up through the RosterProvider and never
// owns or mutates them.
type Reviewer struct {
	// ID uniquely identifies the participant within the assignment.
	ID string `json:"id" yaml:"id"`

	// Email is the participant's address, used by CSV-driven assignment to
	// resolve rows. Matching is case-insensitive.
	Email string `json:"email" yaml:"email"`

	// Name is a display name, carried for logging only.
	Name string `json:"name" yaml:"name"`

	// TeamID is the team the reviewer belongs to for this assignment, empty
	// when the reviewer works alone.
	TeamID string `json:"teamId" yaml:"teamId"`
}

// Team is a reviewee: the unit of work that receives reviews. Individual
// reviewees are modeled as single-member teams by the roster.
type Team struct {
	// ID uniquely identifies the team within the assignment.
	ID string `json:"id" yaml:"id"`

	// Name is the team's display name, used by CSV-driven assignment to
	// resolve rows.
	Name string `json:"name" yaml:"name"`
}

// Pair is one reviewer→reviewee allocation produced by a strategy. A pair is
// a proposal; it becomes durable only when the engine materializes it as a
// Mapping through the MappingStore.
type Pair struct {
	Reviewer Reviewer `json:"reviewer" yaml:"reviewer"`
	Reviewee Team     `json:"reviewee" yaml:"reviewee"`
}

// Mapping is a persisted reviewer→reviewee assignment record.
//
// Uniqueness is keyed on (reviewer, reviewee, assignment); Round is carried
// as data and does not widen the key. Mappings are never mutated in place:
// re-assignment is deletion plus recreation.
type Mapping struct {
	ReviewerID string    `json:"reviewerId" yaml:"reviewerId"`
	RevieweeID string    `json:"revieweeId" yaml:"revieweeId"`
	Assignment ParentRef `json:"assignment" yaml:"assignment"`
	Round      int       `json:"round"      yaml:"round"`
}

// NewMapping materializes a pair for an assignment and round.
func NewMapping(p Pair, assignment ParentRef, round int) Mapping {
	return Mapping{
		ReviewerID: p.Reviewer.ID,
		RevieweeID: p.Reviewee.ID,
		Assignment: assignment,
		Round:      round,
	}
}

// Key returns the canonical uniqueness key for the mapping. Two mappings with
// the same key are duplicates regardless of round.
func (m Mapping) Key() string {
	return MappingKey(m.ReviewerID, m.RevieweeID, m.Assignment)
}

// MappingKey builds the canonical uniqueness key for a
// (reviewer, reviewee, assignment) triple. MappingStore implementations use
// it so that Create and Exists agree on identity.
func MappingKey(reviewerID, revieweeID string, assignment ParentRef) string {
	return fmt.Sprintf("%s|%s|%s", assignment.String(), reviewerID, revieweeID)
}

// CSVRow is one externally-parsed row of a CSV-driven assignment request.
// The engine consumes parsed rows only; file I/O and encodings belong to the
// caller.
type CSVRow struct {
	ReviewerEmail string `json:"reviewerEmail" yaml:"reviewerEmail"`
	TeamName      string `json:"teamName"      yaml:"teamName"`
}
