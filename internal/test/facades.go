package test

import (
	"context"

	"github.com/rmehra/stitchbook/internal/domain/model"
	"github.com/rmehra/stitchbook/internal/usecase"
)

// ReceiptFacadeStub provides controllable behaviour for receipt endpoints.
type ReceiptFacadeStub struct {
	NextNumberFn func(context.Context) (string, error)
	CreateFn     func(context.Context, usecase.CreateReceiptInput) (*model.Receipt, error)
	ReceiptFn    func(context.Context, int64) (*model.Receipt, error)
	ReceiptsFn   func(context.Context, string, string) ([]model.ReceiptSummary, error)
}

// NextReceiptNumber delegates to provided function or returns the first number.
func (s ReceiptFacadeStub) NextReceiptNumber(ctx context.Context) (string, error) {
	if s.NextNumberFn != nil {
		return s.NextNumberFn(ctx)
	}
	return "0001", nil
}

// CreateReceipt delegates to provided function or echoes a persisted receipt.
func (s ReceiptFacadeStub) CreateReceipt(ctx context.Context, in usecase.CreateReceiptInput) (*model.Receipt, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	return &model.Receipt{ID: 1, Number: "0001", CustomerName: in.CustomerName, Phone: in.Phone}, nil
}

// Receipt returns a configured receipt for the given identifier.
func (s ReceiptFacadeStub) Receipt(ctx context.Context, id int64) (*model.Receipt, error) {
	if s.ReceiptFn != nil {
		return s.ReceiptFn(ctx, id)
	}
	return &model.Receipt{ID: id, Number: "0001"}, nil
}

// Receipts returns a configured listing.
func (s ReceiptFacadeStub) Receipts(ctx context.Context, query, date string) ([]model.ReceiptSummary, error) {
	if s.ReceiptsFn != nil {
		return s.ReceiptsFn(ctx, query, date)
	}
	return []model.ReceiptSummary{{ID: 1, Number: "0001"}}, nil
}
