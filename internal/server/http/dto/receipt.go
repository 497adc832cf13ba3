package dto

import "time"

// CreateReceiptRequest is the receipt submission payload. TotalAmount and
// AdvancePaid are pointers so absent and zero can be told apart.
type CreateReceiptRequest struct {
	CustomerName    string               `json:"customerName"`
	Phone           string               `json:"phone"`
	Date            string               `json:"date"`
	DeliveryDate    string               `json:"deliveryDate"`
	TotalAmount     *float64             `json:"totalAmount"`
	AdvancePaid     *float64             `json:"advancePaid"`
	MeasurementType string               `json:"measurementType"`
	Measurements    map[string]string    `json:"measurements"`
	Items           []ReceiptItemPayload `json:"items"`
}

// ReceiptItemPayload is a billing line in a submission.
type ReceiptItemPayload struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// ReceiptItemResponse is a persisted billing line.
type ReceiptItemResponse struct {
	LineNo      int     `json:"lineNo"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// ReceiptResponse is a full receipt with items and measurements.
type ReceiptResponse struct {
	ID              int64                 `json:"id"`
	ReceiptNo       string                `json:"receiptNo"`
	Date            string                `json:"date"`
	CustomerName    string                `json:"customerName"`
	Phone           string                `json:"phone"`
	DeliveryDate    string                `json:"deliveryDate"`
	TotalAmount     float64               `json:"totalAmount"`
	AdvancePaid     float64               `json:"advancePaid"`
	BalanceAmount   float64               `json:"balanceAmount"`
	MeasurementType string                `json:"measurementType"`
	Measurements    map[string]string     `json:"measurements"`
	Items           []ReceiptItemResponse `json:"items"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// ReceiptSummaryResponse is a search-result row.
type ReceiptSummaryResponse struct {
	ID            int64   `json:"id"`
	ReceiptNo     string  `json:"receiptNo"`
	Date          string  `json:"date"`
	CustomerName  string  `json:"customerName"`
	Phone         string  `json:"phone"`
	DeliveryDate  string  `json:"deliveryDate"`
	TotalAmount   float64 `json:"totalAmount"`
	AdvancePaid   float64 `json:"advancePaid"`
	BalanceAmount float64 `json:"balanceAmount"`
}

// NextNumberResponse carries the receipt number preview.
type NextNumberResponse struct {
	ReceiptNo string `json:"receiptNo"`
}

// ErrorResponse carries a client-facing error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
