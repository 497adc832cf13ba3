package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/rmehra/stitchbook/internal/domain/errors"
	"github.com/rmehra/stitchbook/internal/domain/model"
	"github.com/rmehra/stitchbook/internal/server/http/dto"
	"github.com/rmehra/stitchbook/internal/usecase"
)

// ReceiptHandler manages receipt endpoints.
type ReceiptHandler struct {
	facade ReceiptFacade
}

// NewReceiptHandler constructs ReceiptHandler.
func NewReceiptHandler(facade ReceiptFacade) *ReceiptHandler {
	return &ReceiptHandler{facade: facade}
}

// NextNumber handles GET /api/next-receipt-number.
func (h *ReceiptHandler) NextNumber(c *gin.Context) {
	number, err := h.facade.NextReceiptNumber(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate receipt number"})
		return
	}
	c.JSON(http.StatusOK, dto.NextNumberResponse{ReceiptNo: number})
}

// Create handles POST /api/receipts.
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid receipt payload"})
		return
	}

	receipt, err := h.facade.CreateReceipt(c.Request.Context(), toCreateInput(req))
	if err != nil {
		var validationErr *domainErrors.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationErr.Reason})
		case errors.Is(err, domainErrors.ErrNumberConflict):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Receipt number collision. Please retry."})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save receipt"})
		}
		return
	}

	c.JSON(http.StatusCreated, toReceiptResponse(receipt))
}

// List handles GET /api/receipts.
func (h *ReceiptHandler) List(c *gin.Context) {
	summaries, err := h.facade.Receipts(c.Request.Context(), c.Query("q"), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load receipts"})
		return
	}

	response := make([]dto.ReceiptSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, toSummaryResponse(s))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/receipts/:id.
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid receipt ID"})
		return
	}

	receipt, err := h.facade.Receipt(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Receipt not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load receipt details"})
		return
	}

	c.JSON(http.StatusOK, toReceiptResponse(receipt))
}

func toCreateInput(req dto.CreateReceiptRequest) usecase.CreateReceiptInput {
	items := make([]usecase.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.ItemInput{
			Type:        item.Type,
			Description: item.Description,
			Amount:      item.Amount,
		})
	}
	return usecase.CreateReceiptInput{
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		OrderDate:       req.Date,
		DeliveryDate:    req.DeliveryDate,
		MeasurementType: req.MeasurementType,
		Measurements:    req.Measurements,
		TotalAmount:     req.TotalAmount,
		AdvancePaid:     req.AdvancePaid,
		Items:           items,
	}
}

func toReceiptResponse(receipt *model.Receipt) dto.ReceiptResponse {
	items := make([]dto.ReceiptItemResponse, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		items = append(items, dto.ReceiptItemResponse{
			LineNo:      item.LineNo,
			Type:        item.Type,
			Description: item.Description,
			Amount:      item.Amount,
		})
	}
	return dto.ReceiptResponse{
		ID:              receipt.ID,
		ReceiptNo:       receipt.Number,
		Date:            receipt.OrderDate,
		CustomerName:    receipt.CustomerName,
		Phone:           receipt.Phone,
		DeliveryDate:    receipt.DeliveryDate,
		TotalAmount:     receipt.TotalAmount,
		AdvancePaid:     receipt.AdvancePaid,
		BalanceAmount:   receipt.BalanceAmount,
		MeasurementType: string(receipt.MeasurementType),
		Measurements:    receipt.Measurements,
		Items:           items,
		CreatedAt:       receipt.CreatedAt,
	}
}

func toSummaryResponse(s model.ReceiptSummary) dto.ReceiptSummaryResponse {
	return dto.ReceiptSummaryResponse{
		ID:            s.ID,
		ReceiptNo:     s.Number,
		Date:          s.OrderDate,
		CustomerName:  s.CustomerName,
		Phone:         s.Phone,
		DeliveryDate:  s.DeliveryDate,
		TotalAmount:   s.TotalAmount,
		AdvancePaid:   s.AdvancePaid,
		BalanceAmount: s.BalanceAmount,
	}
}
