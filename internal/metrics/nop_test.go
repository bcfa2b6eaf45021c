package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

func TestNewNop(t *testing.T) {
	m := NewNop()

	require.NotNil(t, m)
	require.IsType(t, &NopMetrics{}, m)
}

func TestNopMetrics_AllMethodsSafe(t *testing.T) {
	m := NewNop()

	// Should not panic with any inputs, including out-of-range values
	require.NotPanics(t, func() {
		m.RecordPermissionCheck(types.ActivitySubmission, types.RightOK)
		m.RecordPermissionCheck(types.ActivityType(0), types.RightNo)
		m.RecordPairProduced(types.StrategyRoundRobin)
		m.RecordPairProduced(types.StrategyKind(999))
		m.RecordPairSkipped(types.StrategyRandom, "not_permitted")
		m.RecordPairSkipped(types.StrategyCSV, "")
		m.RecordMappingCreated()
		m.RecordDuplicateConflict()
		m.RecordScheduleShift(types.DeadlineSubmission, 5)
		m.RecordScheduleShift(types.DeadlineType(0), -1)
	})
}
