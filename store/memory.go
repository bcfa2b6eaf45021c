package store

import (
	"context"
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// Memory is a process-local MappingStore backed by a concurrent map.
//
// Safe for concurrent use. Create is atomic: of two concurrent creates for
// the same triple exactly one succeeds, matching the durable store's
// semantics so tests exercise the same contract production relies on.
type Memory struct {
	mappings *xsync.Map[string, types.Mapping]
}

var _ types.MappingStore = (*Memory)(nil)

// NewMemory creates an empty in-memory mapping store.
//
// Returns:
//   - *Memory: Initialized store
func NewMemory() *Memory {
	return &Memory{mappings: xsync.NewMap[string, types.Mapping]()}
}

// Create persists the mapping.
//
// Returns:
//   - error: types.ErrDuplicateMapping when the triple already exists
func (s *Memory) Create(_ context.Context, m types.Mapping) error {
	if _, loaded := s.mappings.LoadOrStore(m.Key(), m); loaded {
		return fmt.Errorf("%w: %s", types.ErrDuplicateMapping, m.Key())
	}

	return nil
}

// Exists reports whether the triple is already mapped.
func (s *Memory) Exists(_ context.Context, reviewerID, revieweeID string, assignment types.ParentRef) (bool, error) {
	_, ok := s.mappings.Load(types.MappingKey(reviewerID, revieweeID, assignment))

	return ok, nil
}

// Delete removes the mapping. Deleting an absent mapping is a no-op.
func (s *Memory) Delete(_ context.Context, m types.Mapping) error {
	s.mappings.Delete(m.Key())

	return nil
}

// CountsByReviewee returns the number of persisted mappings per reviewee for
// the assignment.
func (s *Memory) CountsByReviewee(_ context.Context, assignment types.ParentRef) (map[string]int, error) {
	counts := make(map[string]int)
	s.mappings.Range(func(_ string, m types.Mapping) bool {
		if m.Assignment == assignment {
			counts[m.RevieweeID]++
		}

		return true
	})

	return counts, nil
}

// Len returns the number of persisted mappings across all assignments.
func (s *Memory) Len() int {
	return s.mappings.Size()
}
