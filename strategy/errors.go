package strategy

import "github.com/expertiza/reimplementation-back-end-sub003/types"

// Re-export the allocation sentinels for callers that only import the
// strategy package. errors.Is works identically against either name.
var (
	// ErrNoEligibleReviewee indicates every candidate reviewee was excluded.
	ErrNoEligibleReviewee = types.ErrNoEligibleReviewee

	// ErrNoEligibleTopic indicates no sign-up topic has reviewee teams.
	ErrNoEligibleTopic = types.ErrNoEligibleTopic

	// ErrNotPermitted indicates the reviewer lacks review permission.
	ErrNotPermitted = types.ErrNotPermitted

	// ErrUnsupportedStrategy indicates an unknown strategy kind.
	ErrUnsupportedStrategy = types.ErrUnsupportedStrategy
)
