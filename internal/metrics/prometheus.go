// Package metrics exposes fee service metrics to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "brokerfee"

// PrometheusCollector implements fee.MetricsCollector.
type PrometheusCollector struct {
	duration  *prometheus.HistogramVec
	results   *prometheus.CounterVec
	errors    *prometheus.CounterVec
	surcharge prometheus.Counter
	totals    prometheus.Histogram
}

// NewPrometheusCollector registers the fee metrics on reg.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	c := &PrometheusCollector{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of fee operations.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}, []string{"operation"}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Fee operations by result.",
		}, []string{"operation", "result"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Fee operation errors by type.",
		}, []string{"operation", "type"}),
		surcharge: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "surcharge_applied_total",
			Help:      "Calculations that applied the other-bank surcharge.",
		}),
		totals: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_total",
			Help:      "Distribution of calculated settlement totals.",
			Buckets:   prometheus.ExponentialBuckets(10, 10, 8),
		}),
	}

	for _, col := range []prometheus.Collector{c.duration, c.results, c.errors, c.surcharge, c.totals} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *PrometheusCollector) RecordOperationDuration(operation string, d time.Duration) {
	c.duration.WithLabelValues(operation).Observe(d.Seconds())
}

func (c *PrometheusCollector) RecordOperationResult(operation, result string) {
	c.results.WithLabelValues(operation, result).Inc()
}

func (c *PrometheusCollector) RecordError(operation, errType string) {
	c.errors.WithLabelValues(operation, errType).Inc()
}

func (c *PrometheusCollector) RecordSurchargeApplied() {
	c.surcharge.Inc()
}

func (c *PrometheusCollector) RecordSettlementTotal(total float64) {
	c.totals.Observe(total)
}
