package models

import (
	"time"

	"github.com/google/uuid"
)

// Quote ties a breakdown to the input it was derived from.
type Quote struct {
	ID           uuid.UUID
	Input        TransactionInput
	Breakdown    FeeBreakdown
	Currency     string
	CalculatedAt time.Time
}
