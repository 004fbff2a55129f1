package handlers

import (
	"encoding/json"
	"strings"
	"time"

	"brokerfee/internal/errors"
	"brokerfee/internal/models"
	"brokerfee/internal/services/fee"
	"brokerfee/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type FeeHandler struct {
	feeService    fee.Service
	batchMaxItems int
}

func NewFeeHandler(feeService fee.Service, batchMaxItems int) *FeeHandler {
	if batchMaxItems <= 0 {
		batchMaxItems = fee.DefaultBatchMaxItems
	}
	return &FeeHandler{
		feeService:    feeService,
		batchMaxItems: batchMaxItems,
	}
}

// numberText keeps the raw text of a JSON value so that anything other than
// a number reaches fee.ParseInput and fails on its own field. Strings are
// unquoted; null decodes as empty.
type numberText string

func (n *numberText) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*n = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = numberText(s)
	default:
		*n = numberText(raw)
	}
	return nil
}

// calculateRequest accepts quantity and unit_price as JSON numbers or
// numeric strings.
type calculateRequest struct {
	Quantity           numberText `json:"quantity"`
	UnitPrice          numberText `json:"unit_price"`
	OtherBankSurcharge bool       `json:"other_bank_surcharge"`
}

func (h *FeeHandler) input(r calculateRequest) (models.TransactionInput, error) {
	return h.feeService.ParseInput(string(r.Quantity), string(r.UnitPrice), r.OtherBankSurcharge)
}

type batchRequest struct {
	Items []calculateRequest `json:"items"`
}

type quoteResponse struct {
	QuoteID            string    `json:"quote_id"`
	Currency           string    `json:"currency"`
	Quantity           int64     `json:"quantity"`
	UnitPrice          string    `json:"unit_price"`
	OtherBankSurcharge bool      `json:"other_bank_surcharge"`
	Subtotal           string    `json:"subtotal"`
	Commission         string    `json:"commission"`
	VAT                string    `json:"vat"`
	RegistrationFee    string    `json:"registration_fee"`
	Surcharge          string    `json:"surcharge"`
	SurchargeApplied   bool      `json:"surcharge_applied"`
	Taxes              string    `json:"taxes"`
	Total              string    `json:"total"`
	CalculatedAt       time.Time `json:"calculated_at"`
}

type batchItemResponse struct {
	Index int                 `json:"index"`
	Quote *quoteResponse      `json:"quote,omitempty"`
	Error *errors.DomainError `json:"error,omitempty"`
}

func newQuoteResponse(q *models.Quote) *quoteResponse {
	b := q.Breakdown
	return &quoteResponse{
		QuoteID:            q.ID.String(),
		Currency:           q.Currency,
		Quantity:           q.Input.Quantity,
		UnitPrice:          q.Input.UnitPrice.StringFixed(fee.MoneyPlaces),
		OtherBankSurcharge: q.Input.OtherBankSurcharge,
		Subtotal:           b.Subtotal.StringFixed(fee.MoneyPlaces),
		Commission:         b.Commission.StringFixed(fee.MoneyPlaces),
		VAT:                b.VAT.StringFixed(fee.MoneyPlaces),
		RegistrationFee:    b.RegistrationFee.StringFixed(fee.MoneyPlaces),
		Surcharge:          b.Surcharge.StringFixed(fee.MoneyPlaces),
		SurchargeApplied:   b.SurchargeApplied,
		Taxes:              b.Taxes.StringFixed(fee.MoneyPlaces),
		Total:              b.Total.StringFixed(fee.MoneyPlaces),
		CalculatedAt:       q.CalculatedAt,
	}
}

// Calculate handles POST /fees/calculate.
func (h *FeeHandler) Calculate(c *fiber.Ctx) error {
	var req calculateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	in, err := h.input(req)
	if err != nil {
		return utils.Fail(c, err)
	}

	return h.respondQuote(c, in)
}

// Quote handles GET /fees/quote?quantity=&unit_price=&other_bank=.
func (h *FeeHandler) Quote(c *fiber.Ctx) error {
	in, err := h.feeService.ParseInput(c.Query("quantity"), c.Query("unit_price"), c.QueryBool("other_bank", false))
	if err != nil {
		return utils.Fail(c, err)
	}

	return h.respondQuote(c, in)
}

func (h *FeeHandler) respondQuote(c *fiber.Ctx, in models.TransactionInput) error {
	quote, err := h.feeService.Calculate(c.UserContext(), in)
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, newQuoteResponse(quote))
}

// CalculateBatch handles POST /fees/calculate/batch. Items succeed or fail
// independently.
func (h *FeeHandler) CalculateBatch(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	if len(req.Items) == 0 {
		return utils.Fail(c, fee.ErrEmptyBatch)
	}
	if len(req.Items) > h.batchMaxItems {
		return utils.Fail(c, fee.ErrBatchTooLarge)
	}

	items := make([]batchItemResponse, len(req.Items))
	inputs := make([]models.TransactionInput, 0, len(req.Items))
	positions := make([]int, 0, len(req.Items))

	for i, item := range req.Items {
		items[i].Index = i
		in, err := h.input(item)
		if err != nil {
			items[i].Error = toDomainError(err)
			continue
		}
		inputs = append(inputs, in)
		positions = append(positions, i)
	}

	if len(inputs) > 0 {
		results, err := h.feeService.CalculateBatch(c.UserContext(), inputs)
		if err != nil {
			return utils.Fail(c, err)
		}
		for _, r := range results {
			pos := positions[r.Index]
			if r.Err != nil {
				items[pos].Error = toDomainError(r.Err)
				continue
			}
			items[pos].Quote = newQuoteResponse(r.Quote)
		}
	}

	return utils.Success(c, fiber.Map{
		"items": items,
		"count": len(items),
	})
}

// Schedule handles GET /fees/schedule.
func (h *FeeHandler) Schedule(c *fiber.Ctx) error {
	s := h.feeService.Schedule()
	return utils.Success(c, fiber.Map{
		"currency":             models.Currency,
		"commission_rate":      s.CommissionRate.String(),
		"vat_rate":             s.VATRate.String(),
		"registration_rate":    s.RegistrationRate.String(),
		"registration_minimum": s.RegistrationMinimum.StringFixed(fee.MoneyPlaces),
		"surcharge_rate":       s.SurchargeRate.String(),
	})
}

func toDomainError(err error) *errors.DomainError {
	if de, ok := errors.AsDomainError(err); ok {
		return de
	}
	return &errors.DomainError{Code: "INTERNAL", Message: "internal server error"}
}
