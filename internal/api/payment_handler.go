package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brainbox-backend-go/internal/core"
	"brainbox-backend-go/internal/models"
)

// PaymentHandler handles payment recording and history endpoints.
type PaymentHandler struct {
	paymentService core.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ps core.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: ps}
}

// ListPayments handles GET /payments/:email.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentService.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	c.JSON(http.StatusOK, payments)
}

// RecordPayment handles POST /payments: the payment is inserted and the
// referenced cart/booking items are settled by category in one transaction.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid payment payload: " + err.Error()})
		return
	}

	payment, err := h.paymentService.Record(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}
