// Package source provides in-memory implementations of the roster and
// deadline providers.
//
// The static sources hold fixed data behind an RWMutex and hand out
// defensive copies. They are useful for tests and for callers whose rosters
// and schedules are known up front; production deployments typically
// implement types.RosterProvider and types.DeadlineStore over their own
// persistence.
package source
