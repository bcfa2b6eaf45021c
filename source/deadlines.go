package source

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// StaticDeadlines implements types.DeadlineStore over in-memory deadline
// rows.
//
// Stored order per parent is the authored order: DeadlinesFor returns
// deadlines exactly as saved or replaced, which is the order schedule
// validation is defined over. The (type, round) uniqueness invariant is
// enforced on save.
type StaticDeadlines struct {
	mu       sync.RWMutex
	byParent map[types.ParentRef][]types.Deadline
	nextID   int
}

var _ types.DeadlineStore = (*StaticDeadlines)(nil)

// NewStaticDeadlines creates a deadline store seeded with the given rows.
//
// Seed rows without an ID are assigned one. Seeding panics on a (type,
// round) collision within one parent; seed data is authored by the caller
// and a collision is a programming mistake, not runtime data.
//
// Parameters:
//   - deadlines: Initial rows, grouped by their Parent field
//
// Returns:
//   - *StaticDeadlines: Initialized store
func NewStaticDeadlines(deadlines ...types.Deadline) *StaticDeadlines {
	s := &StaticDeadlines{
		byParent: make(map[types.ParentRef][]types.Deadline),
		nextID:   1,
	}
	for _, d := range deadlines {
		if _, err := s.save(d); err != nil {
			panic(fmt.Sprintf("seed deadlines: %v", err))
		}
	}

	return s
}

// DeadlinesFor returns the parent's deadlines in stored order. An unknown
// parent yields an empty slice.
func (s *StaticDeadlines) DeadlinesFor(_ context.Context, parent types.ParentRef) ([]types.Deadline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copySlice(s.byParent[parent]), nil
}

// SaveDeadline persists a new deadline, assigning its ID.
//
// Returns:
//   - types.Deadline: The saved deadline with ID populated
//   - error: types.ErrDuplicateDeadline on a (type, round) collision
func (s *StaticDeadlines) SaveDeadline(_ context.Context, d types.Deadline) (types.Deadline, error) {
	return s.save(d)
}

// ReplaceDeadlines atomically replaces the parent's deadline set, keeping
// the given order as the stored order.
func (s *StaticDeadlines) ReplaceDeadlines(_ context.Context, parent types.ParentRef, deadlines []types.Deadline) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := make([]types.Deadline, len(deadlines))
	for i, d := range deadlines {
		d.Parent = parent
		if d.ID == "" {
			d.ID = s.allocID()
		}
		replaced[i] = d
	}
	s.byParent[parent] = replaced

	return nil
}

// RemoveParent drops every deadline owned by the parent. Mirrors the
// cascade delete performed when the owning entity is destroyed.
func (s *StaticDeadlines) RemoveParent(parent types.ParentRef) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byParent, parent)
}

func (s *StaticDeadlines) save(d types.Deadline) (types.Deadline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.byParent[d.Parent] {
		if existing.Type == d.Type && existing.Round == d.Round {
			return types.Deadline{}, fmt.Errorf("%w: parent=%s type=%s round=%d",
				types.ErrDuplicateDeadline, d.Parent, d.Type, d.Round)
		}
	}

	if d.ID == "" {
		d.ID = s.allocID()
	}
	s.byParent[d.Parent] = append(s.byParent[d.Parent], d)

	return d, nil
}

// allocID must be called with the mutex held.
func (s *StaticDeadlines) allocID() string {
	id := strconv.Itoa(s.nextID)
	s.nextID++

	return id
}
