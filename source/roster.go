package source

import (
	"context"
	"sync"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// StaticRoster implements types.RosterProvider over fixed in-memory data.
//
// Reviewer and team order is preserved exactly as given; strategy
// determinism is defined over these orders.
type StaticRoster struct {
	mu        sync.RWMutex
	reviewers map[types.ParentRef][]types.Reviewer
	teams     map[types.ParentRef][]types.Team
	members   map[string][]types.Reviewer
	topics    map[string]string
	counts    map[types.ParentRef]map[string]int
	store     types.MappingStore
}

var _ types.RosterProvider = (*StaticRoster)(nil)

// RosterOption configures a StaticRoster.
type RosterOption func(*StaticRoster)

// WithMappingCounts binds ExistingMappingCounts to a mapping store, so
// fairness counts track persisted mappings instead of the static count
// table. Counts set through SetCounts are ignored while a store is bound.
func WithMappingCounts(store types.MappingStore) RosterOption {
	return func(r *StaticRoster) {
		r.store = store
	}
}

// NewStaticRoster creates an empty static roster.
//
// Populate it with SetReviewers, SetTeams (which also registers members and
// topics), and SetCounts.
//
// Returns:
//   - *StaticRoster: Initialized roster
func NewStaticRoster(opts ...RosterOption) *StaticRoster {
	r := &StaticRoster{
		reviewers: make(map[types.ParentRef][]types.Reviewer),
		teams:     make(map[types.ParentRef][]types.Team),
		members:   make(map[string][]types.Reviewer),
		topics:    make(map[string]string),
		counts:    make(map[types.ParentRef]map[string]int),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// SetReviewers replaces the assignment's ordered reviewer list.
func (r *StaticRoster) SetReviewers(assignment types.ParentRef, reviewers []types.Reviewer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviewers[assignment] = copySlice(reviewers)
}

// SetTeams replaces the assignment's ordered team list.
func (r *StaticRoster) SetTeams(assignment types.ParentRef, teams []types.Team) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams[assignment] = copySlice(teams)
}

// SetTeamMembers replaces a team's member set.
func (r *StaticRoster) SetTeamMembers(teamID string, members []types.Reviewer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.members[teamID] = copySlice(members)
}

// SetTopic registers the sign-up topic of a team. An empty topic removes the
// registration.
func (r *StaticRoster) SetTopic(teamID, topicID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if topicID == "" {
		delete(r.topics, teamID)
		return
	}
	r.topics[teamID] = topicID
}

// SetCounts replaces the assignment's static review-count table. Ignored
// while a mapping store is bound through WithMappingCounts.
func (r *StaticRoster) SetCounts(assignment types.ParentRef, counts map[string]int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make(map[string]int, len(counts))
	for k, v := range counts {
		copied[k] = v
	}
	r.counts[assignment] = copied
}

// EligibleReviewers returns the assignment's ordered reviewer list.
func (r *StaticRoster) EligibleReviewers(_ context.Context, assignment types.ParentRef) ([]types.Reviewer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copySlice(r.reviewers[assignment]), nil
}

// Teams returns the assignment's ordered team list.
func (r *StaticRoster) Teams(_ context.Context, assignment types.ParentRef) ([]types.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copySlice(r.teams[assignment]), nil
}

// TeamMembers returns the team's member set.
func (r *StaticRoster) TeamMembers(_ context.Context, teamID string) ([]types.Reviewer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copySlice(r.members[teamID]), nil
}

// ExistingMappingCounts returns the review counts per reviewee. When a
// mapping store is bound the counts come from it; otherwise the static
// table applies.
func (r *StaticRoster) ExistingMappingCounts(ctx context.Context, assignment types.ParentRef) (map[string]int, error) {
	r.mu.RLock()
	store := r.store
	static := r.counts[assignment]
	r.mu.RUnlock()

	if store != nil {
		return store.CountsByReviewee(ctx, assignment)
	}

	copied := make(map[string]int, len(static))
	for k, v := range static {
		copied[k] = v
	}

	return copied, nil
}

// TopicOf returns the team's sign-up topic, or "" when it has none.
func (r *StaticRoster) TopicOf(_ context.Context, teamID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.topics[teamID], nil
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)

	return out
}
