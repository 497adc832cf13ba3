package app

import (
	"context"

	"github.com/rmehra/stitchbook/internal/domain/model"
	"github.com/rmehra/stitchbook/internal/usecase"
)

// TailorFacade is the single entry point the HTTP layer talks to.
type TailorFacade struct {
	receipts *usecase.ReceiptUseCase
}

// NewTailorFacade constructs TailorFacade.
func NewTailorFacade(receipts *usecase.ReceiptUseCase) *TailorFacade {
	return &TailorFacade{receipts: receipts}
}

func (f *TailorFacade) NextReceiptNumber(ctx context.Context) (string, error) {
	return f.receipts.NextNumber(ctx)
}

func (f *TailorFacade) CreateReceipt(ctx context.Context, in usecase.CreateReceiptInput) (*model.Receipt, error) {
	return f.receipts.Create(ctx, in)
}

func (f *TailorFacade) Receipt(ctx context.Context, id int64) (*model.Receipt, error) {
	return f.receipts.Get(ctx, id)
}

func (f *TailorFacade) Receipts(ctx context.Context, query, date string) ([]model.ReceiptSummary, error) {
	return f.receipts.List(ctx, query, date)
}
