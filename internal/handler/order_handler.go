package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

func NewOrderHandler(orderService *service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req domain.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid order request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request format",
			"details": err.Error(),
		})
		return
	}

	requestID := c.GetString("request_id")

	order, err := h.orderService.CreateOrder(c.Request.Context(), req, requestID)
	if err != nil {
		h.logger.Warn("Failed to create order",
			zap.String("request_id", requestID),
			zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, domain.OrderResponse{
		Success: true,
		Order:   order,
		Message: "Order created successfully",
	})
}

// ListOrders returns orders for the email query parameter, or all orders
// when no email is given (admin view). No matches yields an empty list.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	email := c.Query("email")

	var (
		orders []*domain.Order
		err    error
	)
	if email != "" {
		orders, err = h.orderService.GetOrdersByEmail(c.Request.Context(), email)
	} else {
		orders, err = h.orderService.GetAllOrders(c.Request.Context())
	}
	if err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		writeError(c, err)
		return
	}

	if orders == nil {
		orders = []*domain.Order{}
	}
	c.JSON(http.StatusOK, domain.OrdersResponse{Orders: orders})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// SyncOrder upserts a client-held order copy by order id.
func (h *OrderHandler) SyncOrder(c *gin.Context) {
	var req domain.SyncOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "order is required",
			"details": err.Error(),
		})
		return
	}

	requestID := c.GetString("request_id")

	order, err := h.orderService.SyncOrder(c.Request.Context(), req.Order, requestID)
	if err != nil {
		h.logger.Warn("Failed to sync order",
			zap.String("request_id", requestID),
			zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.OrderResponse{
		Success: true,
		Order:   order,
		Message: "Order synced successfully",
	})
}

// UpdateStatus applies an operator lifecycle transition.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req domain.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "status is required",
			"details": err.Error(),
		})
		return
	}

	requestID := c.GetString("request_id")

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, requestID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.OrderResponse{
		Success: true,
		Order:   order,
		Message: "Order status updated",
	})
}
