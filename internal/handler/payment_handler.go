package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/payment"
)

type CreatePaymentIntentRequest struct {
	Amount        decimal.Decimal          `json:"amount"`
	Currency      string                   `json:"currency"`
	CustomerEmail string                   `json:"customerEmail"`
	OrderID       string                   `json:"orderId"`
	Method        domain.PaymentMethod     `json:"method"`
	Items         []domain.CreateOrderItem `json:"items"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret,omitempty"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type CaptureWalletOrderRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

// PaymentHandler brokers payment-intent creation against the configured
// providers. Amounts arrive in the major currency unit; the provider
// clients convert to minor units.
type PaymentHandler struct {
	card   payment.Provider
	wallet payment.Provider
	logger *zap.Logger
}

func NewPaymentHandler(card, wallet payment.Provider, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		card:   card,
		wallet: wallet,
		logger: logger,
	}
}

// CreatePaymentIntent creates a card intent by default, or a wallet
// order when method is wallet.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request format",
			"details": err.Error(),
		})
		return
	}

	provider := h.card
	if req.Method == domain.PaymentMethodWallet {
		provider = h.wallet
	}
	if provider == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": "payment provider is not configured",
		})
		return
	}

	intent, err := provider.CreateIntent(c.Request.Context(), payment.IntentRequest{
		Amount:        req.Amount,
		Currency:      req.Currency,
		CustomerEmail: req.CustomerEmail,
		OrderID:       req.OrderID,
	})
	if err != nil {
		h.logger.Warn("Failed to create payment intent",
			zap.String("order_id", req.OrderID),
			zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreatePaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	})
}

// CaptureWalletOrder captures an approved wallet order and returns the
// provider reference to record on the order.
func (h *PaymentHandler) CaptureWalletOrder(c *gin.Context) {
	var req CaptureWalletOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "orderId is required",
			"details": err.Error(),
		})
		return
	}

	if h.wallet == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": "wallet provider is not configured",
		})
		return
	}

	conf, err := h.wallet.Confirm(c.Request.Context(), req.OrderID)
	if err != nil {
		h.logger.Warn("Failed to capture wallet order",
			zap.String("wallet_order_id", req.OrderID),
			zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reference": conf.Reference,
		"confirmed": conf.Confirmed,
	})
}
