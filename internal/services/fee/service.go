package fee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brokerfee/internal/errors"
	"brokerfee/internal/models"
	"brokerfee/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type service struct {
	calculator Calculator
	config     Config
	metrics    MetricsCollector
	logger     *zap.Logger
	now        func() time.Time
}

// NewService creates a new fee service
func NewService(calculator Calculator, config Config, metrics MetricsCollector, logger *zap.Logger) Service {
	if calculator == nil {
		panic("calculator is required")
	}

	if config.BatchMaxItems <= 0 {
		config.BatchMaxItems = DefaultBatchMaxItems
	}

	// Metrics and logger are optional
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		calculator: calculator,
		config:     config,
		metrics:    metrics,
		logger:     logger.Named("fee"),
		now:        time.Now,
	}
}

func (s *service) Schedule() models.FeeSchedule {
	return s.calculator.Schedule()
}

func (s *service) ParseInput(quantity, unitPrice string, otherBank bool) (models.TransactionInput, error) {
	in, err := ParseInput(quantity, unitPrice, otherBank)
	if err != nil {
		s.reject(OperationCalculate, err,
			zap.String("quantity", clip(quantity)),
			zap.String("unit_price", clip(unitPrice)),
		)
		return models.TransactionInput{}, err
	}
	return in, nil
}

func (s *service) Calculate(ctx context.Context, in models.TransactionInput) (*models.Quote, error) {
	start := s.now()
	defer func() {
		s.metrics.RecordOperationDuration(OperationCalculate, s.now().Sub(start))
	}()

	breakdown, err := s.calculator.Calculate(in)
	if err != nil {
		s.reject(OperationCalculate, err,
			zap.Int64("quantity", in.Quantity),
			zap.String("unit_price", priceForLog(in.UnitPrice)),
		)
		return nil, err
	}

	s.metrics.RecordOperationResult(OperationCalculate, ResultSuccess)
	if breakdown.SurchargeApplied {
		s.metrics.RecordSurchargeApplied()
	}
	s.metrics.RecordSettlementTotal(breakdown.Total.InexactFloat64())

	return &models.Quote{
		ID:           uuid.New(),
		Input:        in,
		Breakdown:    breakdown,
		Currency:     models.Currency,
		CalculatedAt: s.now().UTC(),
	}, nil
}

func (s *service) CalculateBatch(ctx context.Context, inputs []models.TransactionInput) ([]BatchResult, error) {
	if len(inputs) == 0 {
		s.metrics.RecordError(OperationBatch, "empty_batch")
		return nil, ErrEmptyBatch
	}
	if len(inputs) > s.config.BatchMaxItems {
		s.metrics.RecordError(OperationBatch, "batch_too_large")
		return nil, fmt.Errorf("%w: %d items, limit %d", ErrBatchTooLarge, len(inputs), s.config.BatchMaxItems)
	}

	start := s.now()
	defer func() {
		s.metrics.RecordOperationDuration(OperationBatch, s.now().Sub(start))
	}()

	results := make([]BatchResult, len(inputs))
	rejected := 0
	for i, in := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		quote, err := s.Calculate(ctx, in)
		results[i] = BatchResult{Index: i, Quote: quote, Err: err}
		if err != nil {
			rejected++
		}
	}

	s.logger.Debug("batch calculated",
		zap.Int("items", len(inputs)),
		zap.Int("rejected", rejected),
	)
	return results, nil
}

func (s *service) reject(operation string, err error, input ...zap.Field) {
	s.metrics.RecordOperationResult(operation, ResultRejected)

	de, ok := errors.AsDomainError(err)
	if !ok {
		s.metrics.RecordError(operation, "internal")
		s.logger.Error("fee calculation failed", zap.Error(err))
		return
	}

	s.metrics.RecordError(operation, strings.ToLower(de.Code))
	s.logger.Debug("fee input rejected", append([]zap.Field{
		zap.String("field", de.Field),
		zap.String("reason", de.Message),
	}, input...)...)
}

// priceForLog avoids expanding prices with extreme exponents.
func priceForLog(d decimal.Decimal) string {
	if e := d.Exponent(); e < -validation.PriceMaxScale || e > validation.PriceMaxIntegerDigits {
		return fmt.Sprintf("%se%d", clip(d.Coefficient().String()), e)
	}
	return d.String()
}

func clip(s string) string {
	if len(s) > MaxFieldLength {
		return s[:MaxFieldLength] + "..."
	}
	return s
}
