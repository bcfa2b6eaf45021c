// Package metrics provides MetricsCollector implementations for the
// peerassign library: a no-op collector and a Prometheus-backed collector.
package metrics

import "github.com/expertiza/reimplementation-back-end-sub003/types"

// NopMetrics is a MetricsCollector that discards all events.
//
// Used as the default when no collector is injected, and embedded by other
// collectors that instrument only a subset of the interface.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: Collector that performs no operations
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordPermissionCheck discards the event.
func (n *NopMetrics) RecordPermissionCheck(_ types.ActivityType, _ types.Right) {}

// RecordPairProduced discards the event.
func (n *NopMetrics) RecordPairProduced(_ types.StrategyKind) {}

// RecordPairSkipped discards the event.
func (n *NopMetrics) RecordPairSkipped(_ types.StrategyKind, _ string) {}

// RecordMappingCreated discards the event.
func (n *NopMetrics) RecordMappingCreated() {}

// RecordDuplicateConflict discards the event.
func (n *NopMetrics) RecordDuplicateConflict() {}

// RecordScheduleShift discards the event.
func (n *NopMetrics) RecordScheduleShift(_ types.DeadlineType, _ int) {}
