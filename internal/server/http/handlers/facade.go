package handlers

import (
	"context"

	"github.com/rmehra/stitchbook/internal/domain/model"
	"github.com/rmehra/stitchbook/internal/usecase"
)

// ReceiptFacade encapsulates receipt operations exposed via HTTP.
type ReceiptFacade interface {
	NextReceiptNumber(ctx context.Context) (string, error)
	CreateReceipt(ctx context.Context, in usecase.CreateReceiptInput) (*model.Receipt, error)
	Receipt(ctx context.Context, id int64) (*model.Receipt, error)
	Receipts(ctx context.Context, query, date string) ([]model.ReceiptSummary, error)
}
