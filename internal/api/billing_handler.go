package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brainbox-backend-go/internal/core"
	"brainbox-backend-go/internal/models"
)

// BillingHandler handles the card-payment gateway endpoint.
type BillingHandler struct {
	billingService core.BillingService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(bs core.BillingService) *BillingHandler {
	return &BillingHandler{billingService: bs}
}

// CreatePaymentIntent handles POST /create-payment-intent. Only the
// intent's client secret is surfaced to the caller.
func (h *BillingHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid payment intent payload: " + err.Error()})
		return
	}

	clientSecret, err := h.billingService.CreatePaymentIntent(c.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, core.ErrGateway) {
			c.JSON(http.StatusBadGateway, MessageResponse{Message: "payment gateway error"})
			return
		}
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: clientSecret})
}
