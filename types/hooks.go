package types

import "context"

// Hooks defines callbacks for mapping lifecycle events.
//
// All hooks are optional and are invoked synchronously on the allocation
// path, after metrics are recorded. Hook errors are logged by the engine and
// do not change the operation's outcome.
//
// Implementations should complete quickly and respect context cancellation;
// a hook that blocks stalls the allocation it was called from.
type Hooks struct {
	// OnMappingCreated is called after a mapping is durably persisted.
	OnMappingCreated func(ctx context.Context, m Mapping) error

	// OnDuplicateConflict is called when mapping creation is rejected by the
	// uniqueness constraint. The conflicting mapping is the one that was NOT
	// persisted.
	OnDuplicateConflict func(ctx context.Context, m Mapping) error
}
