package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	permissionChecks   *prometheus.CounterVec
	pairsProduced      *prometheus.CounterVec
	pairsSkipped       *prometheus.CounterVec
	mappingsCreated    prometheus.Counter
	duplicateConflicts prometheus.Counter
	scheduleShifts     *prometheus.CounterVec
	shiftedDeadlines   *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "peerassign" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "peerassign"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.permissionChecks = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "deadline",
			Name:      "permission_checks_total",
			Help:      "Total resolved permission statuses by activity and status.",
		}, []string{"activity", "status"})

		p.pairsProduced = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "pairs_produced_total",
			Help:      "Total reviewer/reviewee pairs yielded by strategies.",
		}, []string{"strategy"})

		p.pairsSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "pairs_skipped_total",
			Help:      "Total reviewees or rows skipped by strategies, by reason.",
		}, []string{"strategy", "reason"})

		p.mappingsCreated = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "mappings_created_total",
			Help:      "Total review mappings durably persisted.",
		})

		p.duplicateConflicts = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "duplicate_conflicts_total",
			Help:      "Total mapping creations rejected by the uniqueness constraint.",
		})

		p.scheduleShifts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "deadline",
			Name:      "schedule_shifts_total",
			Help:      "Total bulk deadline time-shift operations by deadline type.",
		}, []string{"type"})

		p.shiftedDeadlines = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "deadline",
			Name:      "shifted_deadlines_total",
			Help:      "Total individual deadlines moved by shift operations.",
		}, []string{"type"})

		collectors := []prometheus.Collector{
			p.permissionChecks,
			p.pairsProduced,
			p.pairsSkipped,
			p.mappingsCreated,
			p.duplicateConflicts,
			p.scheduleShifts,
			p.shiftedDeadlines,
		}
		for _, c := range collectors {
			// AlreadyRegisteredError is tolerated so that multiple engines can
			// share one registerer.
			if err := p.reg.Register(c); err != nil {
				if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
					panic(err)
				}
			}
		}
	})
}

// RecordPermissionCheck increments the permission-check counter.
func (p *PrometheusCollector) RecordPermissionCheck(activity types.ActivityType, status types.Right) {
	p.ensureRegistered()
	p.permissionChecks.WithLabelValues(activity.String(), status.String()).Inc()
}

// RecordPairProduced increments the pairs-produced counter.
func (p *PrometheusCollector) RecordPairProduced(kind types.StrategyKind) {
	p.ensureRegistered()
	p.pairsProduced.WithLabelValues(kind.String()).Inc()
}

// RecordPairSkipped increments the pairs-skipped counter.
func (p *PrometheusCollector) RecordPairSkipped(kind types.StrategyKind, reason string) {
	p.ensureRegistered()
	p.pairsSkipped.WithLabelValues(kind.String(), reason).Inc()
}

// RecordMappingCreated increments the mappings-created counter.
func (p *PrometheusCollector) RecordMappingCreated() {
	p.ensureRegistered()
	p.mappingsCreated.Inc()
}

// RecordDuplicateConflict increments the duplicate-conflict counter.
func (p *PrometheusCollector) RecordDuplicateConflict() {
	p.ensureRegistered()
	p.duplicateConflicts.Inc()
}

// RecordScheduleShift records one shift operation and the deadlines it moved.
func (p *PrometheusCollector) RecordScheduleShift(dt types.DeadlineType, count int) {
	p.ensureRegistered()
	p.scheduleShifts.WithLabelValues(dt.String()).Inc()
	p.shiftedDeadlines.WithLabelValues(dt.String()).Add(float64(count))
}
