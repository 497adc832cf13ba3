package repository

import (
	"context"

	"github.com/rmehra/stitchbook/internal/domain/model"
)

// ReceiptFilter restricts the receipt listing. Query matches customer name
// (case-insensitive), phone and receipt number as substrings; Date matches
// delivery or order date exactly. Both are optional and AND-combined.
type ReceiptFilter struct {
	Query string
	Date  string
	Limit int
}

// ReceiptRepository describes persistence operations with receipts.
type ReceiptRepository interface {
	NextNumber(ctx context.Context) (string, error)
	Create(ctx context.Context, receipt *model.Receipt) (*model.Receipt, error)
	GetByID(ctx context.Context, id int64) (*model.Receipt, error)
	List(ctx context.Context, filter ReceiptFilter) ([]model.ReceiptSummary, error)
}
