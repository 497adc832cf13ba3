package model

import (
	"fmt"
	"time"
)

// Receipt is a persisted tailoring order receipt with its billing lines.
type Receipt struct {
	ID              int64
	Number          string
	OrderDate       string
	CustomerName    string
	Phone           string
	DeliveryDate    string
	TotalAmount     float64
	AdvancePaid     float64
	BalanceAmount   float64
	MeasurementType MeasurementType
	Measurements    map[string]string
	Items           []ReceiptItem
	CreatedAt       time.Time
}

// ReceiptItem is a single billing line owned by its parent receipt.
type ReceiptItem struct {
	LineNo      int
	Type        string
	Description string
	Amount      float64
}

// ReceiptSummary is the search-result projection of a receipt, without
// items or measurements.
type ReceiptSummary struct {
	ID            int64
	Number        string
	OrderDate     string
	CustomerName  string
	Phone         string
	DeliveryDate  string
	TotalAmount   float64
	AdvancePaid   float64
	BalanceAmount float64
}

// FormatReceiptNumber renders a counter value as a zero-padded receipt
// number. Values above 9999 keep all their digits.
func FormatReceiptNumber(n int64) string {
	if n < 1 {
		n = 1
	}
	return fmt.Sprintf("%04d", n)
}
