package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/rmehra/stitchbook/internal/domain/errors"
	"github.com/rmehra/stitchbook/internal/domain/model"
	"github.com/rmehra/stitchbook/internal/domain/repository"
)

// CreateReceiptInput carries a receipt submission before validation.
// TotalAmount and AdvancePaid are optional hints; balance is always
// recomputed server-side.
type CreateReceiptInput struct {
	CustomerName    string
	Phone           string
	OrderDate       string
	DeliveryDate    string
	MeasurementType string
	Measurements    map[string]string
	TotalAmount     *float64
	AdvancePaid     *float64
	Items           []ItemInput
}

// ReceiptUseCase encapsulates receipt numbering, persistence and retrieval.
type ReceiptUseCase struct {
	receipts  repository.ReceiptRepository
	listLimit int
}

// NewReceiptUseCase constructs ReceiptUseCase.
func NewReceiptUseCase(receipts repository.ReceiptRepository, listLimit int) *ReceiptUseCase {
	return &ReceiptUseCase{receipts: receipts, listLimit: listLimit}
}

// NextNumber returns the receipt number the next submission would get.
// The value is a preview only: the write path assigns its own number
// inside the insert transaction.
func (u *ReceiptUseCase) NextNumber(ctx context.Context) (string, error) {
	return u.receipts.NextNumber(ctx)
}

// Create validates and persists a new receipt with its billing lines.
func (u *ReceiptUseCase) Create(ctx context.Context, in CreateReceiptInput) (*model.Receipt, error) {
	customerName := strings.TrimSpace(in.CustomerName)
	phone := strings.TrimSpace(in.Phone)
	orderDate := strings.TrimSpace(in.OrderDate)
	deliveryDate := strings.TrimSpace(in.DeliveryDate)

	if customerName == "" || phone == "" || orderDate == "" || deliveryDate == "" {
		return nil, domainErrors.NewValidation("Customer name, phone, date and delivery date are required")
	}

	measurementType, ok := model.ParseMeasurementType(in.MeasurementType)
	if !ok {
		return nil, domainErrors.NewValidation("Measurement type must be Shirt, Pant or Suit")
	}

	if len(in.Items) == 0 {
		return nil, domainErrors.NewValidation("At least one billing item is required")
	}

	items := NormalizeItems(in.Items)
	if len(items) == 0 {
		return nil, domainErrors.NewValidation("Billing items must include type and description")
	}

	total := sumAmounts(items)
	if in.TotalAmount != nil && *in.TotalAmount != 0 {
		total = *in.TotalAmount
	}

	var advance float64
	if in.AdvancePaid != nil {
		advance = *in.AdvancePaid
	}

	measurements := in.Measurements
	if measurements == nil {
		measurements = map[string]string{}
	}

	receipt := &model.Receipt{
		OrderDate:       orderDate,
		CustomerName:    customerName,
		Phone:           phone,
		DeliveryDate:    deliveryDate,
		TotalAmount:     total,
		AdvancePaid:     advance,
		BalanceAmount:   total - advance,
		MeasurementType: measurementType,
		Measurements:    measurements,
		Items:           items,
	}

	return u.receipts.Create(ctx, receipt)
}

// Get returns the full receipt with items and measurements.
func (u *ReceiptUseCase) Get(ctx context.Context, id int64) (*model.Receipt, error) {
	return u.receipts.GetByID(ctx, id)
}

// List returns receipt summaries, newest first, capped at the configured
// limit.
func (u *ReceiptUseCase) List(ctx context.Context, query, date string) ([]model.ReceiptSummary, error) {
	filter := repository.ReceiptFilter{
		Query: strings.TrimSpace(query),
		Date:  strings.TrimSpace(date),
		Limit: u.listLimit,
	}
	return u.receipts.List(ctx, filter)
}
