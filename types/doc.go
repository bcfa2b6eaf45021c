// Package types defines the core types and interfaces for the peerassign library.
//
// This package contains:
//   - Closed vocabularies: Right, ActivityType, DeadlineType, StrategyKind, ParentKind
//   - Value types: ParentRef, Deadline, RightSet, Reviewer, Team, Pair, Mapping
//   - External-collaborator interfaces: RosterProvider, DeadlineSource, DeadlineStore, MappingStore
//   - Ambient interfaces: Logger, MetricsCollector, Hooks
//   - Sentinel errors for all engine components
//
// The types package has no dependencies on other peerassign packages, which
// allows subpackages (deadline, strategy, store, source) to depend on it
// without import cycles. The root peerassign package re-exports the most
// commonly used definitions via type aliases.
package types
