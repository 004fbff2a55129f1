package fee

// Operation names used in metrics and logs
const (
	OperationCalculate = "calculate"
	OperationBatch     = "calculate_batch"
)

// Operation results
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
)

// DefaultBatchMaxItems caps a batch when no limit is configured.
const DefaultBatchMaxItems = 100
