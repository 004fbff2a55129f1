package fee

import (
	"context"

	"brokerfee/internal/models"
)

// Service exposes fee calculation to transports.
type Service interface {
	// ParseInput parses raw text fields and counts failures as rejected
	// calculations.
	ParseInput(quantity, unitPrice string, otherBank bool) (models.TransactionInput, error)
	Calculate(ctx context.Context, in models.TransactionInput) (*models.Quote, error)
	CalculateBatch(ctx context.Context, inputs []models.TransactionInput) ([]BatchResult, error)
	Schedule() models.FeeSchedule
}

// Calculator is the pure calculation core.
type Calculator interface {
	Calculate(in models.TransactionInput) (models.FeeBreakdown, error)
	Schedule() models.FeeSchedule
}
