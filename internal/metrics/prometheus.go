package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/groupassign/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	planDuration   *prometheus.HistogramVec
	planAttempts   *prometheus.CounterVec
	partitionCount prometheus.Gauge
	imbalance      *prometheus.GaugeVec
	cacheLookups   *prometheus.CounterVec
	fetchDuration  *prometheus.HistogramVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "groupassign" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "groupassign"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.planDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plan_duration_seconds",
			Help:      "Time taken to compute a partition assignment by strategy.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"strategy"})

		p.planAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plan_attempts_total",
			Help:      "Total assignment computations by strategy and outcome.",
		}, []string{"strategy", "result"})

		p.partitionCount = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "assigned_partitions",
			Help:      "Number of partitions covered by the most recent assignment.",
		})

		p.imbalance = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "thread_load_spread",
			Help:      "Difference between the most and least loaded consumer thread in the most recent assignment.",
		}, []string{"strategy"})

		p.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plan_cache_lookups_total",
			Help:      "Total plan cache lookups by outcome.",
		}, []string{"result"})

		p.fetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "source",
			Name:      "fetch_duration_seconds",
			Help:      "Metadata fetch latency by operation.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"op"})

		collectors := []prometheus.Collector{
			p.planDuration,
			p.planAttempts,
			p.partitionCount,
			p.imbalance,
			p.cacheLookups,
			p.fetchDuration,
		}
		for _, c := range collectors {
			// Tolerate duplicate registration so multiple planners can share
			// a registry.
			if err := p.reg.Register(c); err != nil {
				var already prometheus.AlreadyRegisteredError
				if !errors.As(err, &already) {
					panic(err)
				}
			}
		}
	})
}

// RecordPlanDuration records the time taken to compute an assignment.
func (p *PrometheusCollector) RecordPlanDuration(strategy string, duration float64) {
	p.ensureRegistered()
	p.planDuration.WithLabelValues(strategy).Observe(duration)
}

// RecordPlanAttempt records a plan attempt by outcome.
func (p *PrometheusCollector) RecordPlanAttempt(strategy string, success bool) {
	p.ensureRegistered()
	p.planAttempts.WithLabelValues(strategy, resultLabel(success)).Inc()
}

// RecordPartitionCount sets the assigned partition gauge.
func (p *PrometheusCollector) RecordPartitionCount(count int) {
	p.ensureRegistered()
	p.partitionCount.Set(float64(count))
}

// RecordImbalance sets the per-thread load spread gauge.
func (p *PrometheusCollector) RecordImbalance(strategy string, spread int) {
	p.ensureRegistered()
	p.imbalance.WithLabelValues(strategy).Set(float64(spread))
}

// RecordCacheLookup records a plan cache lookup by outcome.
func (p *PrometheusCollector) RecordCacheLookup(hit bool) {
	p.ensureRegistered()
	if hit {
		p.cacheLookups.WithLabelValues("hit").Inc()
	} else {
		p.cacheLookups.WithLabelValues("miss").Inc()
	}
}

// RecordFetchDuration records metadata fetch latency by operation.
func (p *PrometheusCollector) RecordFetchDuration(operation string, duration float64) {
	p.ensureRegistered()
	p.fetchDuration.WithLabelValues(operation).Observe(duration)
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}
