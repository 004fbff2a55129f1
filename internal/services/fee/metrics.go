package fee

import "time"

// MetricsCollector defines the interface for collecting fee metrics
type MetricsCollector interface {
	// Operation metrics
	RecordOperationDuration(operation string, duration time.Duration)
	RecordOperationResult(operation, result string)

	// Error metrics
	RecordError(operation, errType string)

	// Calculation metrics
	RecordSurchargeApplied()
	RecordSettlementTotal(total float64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordOperationDuration(string, time.Duration) {}
func (n *NoopMetricsCollector) RecordOperationResult(string, string)          {}
func (n *NoopMetricsCollector) RecordError(string, string)                    {}
func (n *NoopMetricsCollector) RecordSurchargeApplied()                       {}
func (n *NoopMetricsCollector) RecordSettlementTotal(float64)                 {}
