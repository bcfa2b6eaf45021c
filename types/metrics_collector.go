package types

// MetricsCollector receives engine instrumentation events.
//
// Implementations must be safe for concurrent use and cheap on the hot path:
// permission checks happen on every allocation decision. The library ships a
// no-op collector (internal/metrics.NewNop) and a Prometheus-backed
// collector (internal/metrics.NewPrometheus).
type MetricsCollector interface {
	// RecordPermissionCheck is called once per resolved permission status.
	RecordPermissionCheck(activity ActivityType, status Right)

	// RecordPairProduced is called when a strategy yields a pair.
	RecordPairProduced(kind StrategyKind)

	// RecordPairSkipped is called when a strategy skips a reviewee or row.
	// Reason is one of "not_permitted", "self_review", "duplicate",
	// "unresolved".
	RecordPairSkipped(kind StrategyKind, reason string)

	// RecordMappingCreated is called when a pair is durably persisted.
	RecordMappingCreated()

	// RecordDuplicateConflict is called when mapping creation hits the
	// uniqueness constraint.
	RecordDuplicateConflict()

	// RecordScheduleShift is called after a bulk deadline time-shift with
	// the number of deadlines moved.
	RecordScheduleShift(deadlineType DeadlineType, count int)
}
