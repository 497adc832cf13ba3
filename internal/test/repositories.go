package test

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/rmehra/stitchbook/internal/domain/errors"
	"github.com/rmehra/stitchbook/internal/domain/model"
	"github.com/rmehra/stitchbook/internal/domain/repository"
)

// ReceiptRepositoryStub keeps receipts in-memory and mirrors the numbering
// behaviour of the real storage. Function fields override individual
// operations; Err fails everything.
type ReceiptRepositoryStub struct {
	NextNumberFn func(context.Context) (string, error)
	CreateFn     func(context.Context, *model.Receipt) (*model.Receipt, error)
	GetByIDFn    func(context.Context, int64) (*model.Receipt, error)
	ListFn       func(context.Context, repository.ReceiptFilter) ([]model.ReceiptSummary, error)

	Stored []model.Receipt
	Err    error
}

func (s *ReceiptRepositoryStub) NextNumber(ctx context.Context) (string, error) {
	if s.NextNumberFn != nil {
		return s.NextNumberFn(ctx)
	}
	if s.Err != nil {
		return "", s.Err
	}
	return model.FormatReceiptNumber(int64(len(s.Stored)) + 1), nil
}

func (s *ReceiptRepositoryStub) Create(ctx context.Context, receipt *model.Receipt) (*model.Receipt, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, receipt)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	receipt.ID = int64(len(s.Stored)) + 1
	receipt.Number = model.FormatReceiptNumber(int64(len(s.Stored)) + 1)
	receipt.CreatedAt = time.Now()
	s.Stored = append(s.Stored, *receipt)
	return receipt, nil
}

func (s *ReceiptRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Receipt, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Stored {
		if s.Stored[i].ID == id {
			receipt := s.Stored[i]
			return &receipt, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ReceiptRepositoryStub) List(ctx context.Context, filter repository.ReceiptFilter) ([]model.ReceiptSummary, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.ReceiptSummary
	for i := len(s.Stored) - 1; i >= 0; i-- {
		r := s.Stored[i]
		if filter.Query != "" && !matchesQuery(r, filter.Query) {
			continue
		}
		if filter.Date != "" && r.DeliveryDate != filter.Date && r.OrderDate != filter.Date {
			continue
		}
		result = append(result, model.ReceiptSummary{
			ID:            r.ID,
			Number:        r.Number,
			OrderDate:     r.OrderDate,
			CustomerName:  r.CustomerName,
			Phone:         r.Phone,
			DeliveryDate:  r.DeliveryDate,
			TotalAmount:   r.TotalAmount,
			AdvancePaid:   r.AdvancePaid,
			BalanceAmount: r.BalanceAmount,
		})
		if filter.Limit > 0 && len(result) == filter.Limit {
			break
		}
	}
	return result, nil
}

func matchesQuery(r model.Receipt, query string) bool {
	return strings.Contains(strings.ToLower(r.CustomerName), strings.ToLower(query)) ||
		strings.Contains(r.Phone, query) ||
		strings.Contains(r.Number, query)
}
