package usecase

import (
	"strings"

	"github.com/rmehra/stitchbook/internal/domain/model"
)

// ItemInput is a raw billing line as submitted by the client.
type ItemInput struct {
	Type        string
	Description string
	Amount      float64
}

// NormalizeItems trims type and description, clamps negative amounts to
// zero and drops lines that lose their type or description. Surviving
// lines are renumbered 1-based in input order.
func NormalizeItems(items []ItemInput) []model.ReceiptItem {
	result := make([]model.ReceiptItem, 0, len(items))
	for _, item := range items {
		itemType := strings.TrimSpace(item.Type)
		description := strings.TrimSpace(item.Description)
		if itemType == "" || description == "" {
			continue
		}
		amount := item.Amount
		if amount < 0 {
			amount = 0
		}
		result = append(result, model.ReceiptItem{
			LineNo:      len(result) + 1,
			Type:        itemType,
			Description: description,
			Amount:      amount,
		})
	}
	return result
}

func sumAmounts(items []model.ReceiptItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount
	}
	return total
}
