package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

func TestPrometheusCollector_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheus(reg, "test")

	c.RecordPermissionCheck(types.ActivityReview, types.RightOK)
	c.RecordPermissionCheck(types.ActivityReview, types.RightNo)
	c.RecordPairProduced(types.StrategyRoundRobin)
	c.RecordPairSkipped(types.StrategyCSV, "unresolved")
	c.RecordMappingCreated()
	c.RecordDuplicateConflict()
	c.RecordScheduleShift(types.DeadlineReview, 4)

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]float64)
	for _, mf := range families {
		total := 0.0
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		byName[mf.GetName()] = total
	}

	require.Equal(t, 2.0, byName["test_deadline_permission_checks_total"])
	require.Equal(t, 1.0, byName["test_assignment_pairs_produced_total"])
	require.Equal(t, 1.0, byName["test_assignment_pairs_skipped_total"])
	require.Equal(t, 1.0, byName["test_assignment_mappings_created_total"])
	require.Equal(t, 1.0, byName["test_assignment_duplicate_conflicts_total"])
	require.Equal(t, 1.0, byName["test_deadline_schedule_shifts_total"])
	require.Equal(t, 4.0, byName["test_deadline_shifted_deadlines_total"])
}

func TestPrometheusCollector_SharedRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := NewPrometheus(reg, "shared")
	second := NewPrometheus(reg, "shared")

	// Both collectors register the same metric names; the second must
	// tolerate the existing registrations.
	require.NotPanics(t, func() {
		first.RecordMappingCreated()
		second.RecordMappingCreated()
	})
}

func TestPrometheusCollector_Defaults(t *testing.T) {
	c := NewPrometheus(prometheus.NewRegistry(), "")
	require.Equal(t, "peerassign", c.namespace)
}
