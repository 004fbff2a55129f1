package fee

import "brokerfee/internal/models"

// Config holds configuration for the fee service
type Config struct {
	BatchMaxItems int
}

// BatchResult is the outcome of one item in a batch. Exactly one of Quote
// and Err is set.
type BatchResult struct {
	Index int
	Quote *models.Quote
	Err   error
}
