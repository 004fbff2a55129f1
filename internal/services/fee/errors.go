package fee

import "brokerfee/internal/errors"

// Service errors
var (
	ErrEmptyBatch    = errors.InvalidRequest("batch must contain at least one item")
	ErrBatchTooLarge = errors.InvalidRequest("batch exceeds the maximum number of items")
)
