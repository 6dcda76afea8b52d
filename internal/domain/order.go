package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// statusRank orders the forward lifecycle chain. Cancellation states are
// not ranked; they are reachable from any non-terminal state.
var statusRank = map[OrderStatus]int{
	OrderStatusCreated:   1,
	OrderStatusPaid:      2,
	OrderStatusShipped:   3,
	OrderStatusDelivered: 4,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// CanTransitionTo enforces the order lifecycle: forward moves only along
// created → paid → shipped → delivered, cancellation from any non-terminal
// state, and no transition out of a terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) error {
	if !next.Valid() {
		return &TransitionError{From: s, To: next, Reason: "unknown target status"}
	}
	if s.Terminal() {
		return &TransitionError{From: s, To: next, Reason: "order is in a terminal state"}
	}
	if next == OrderStatusCancelled || next == OrderStatusRefunded {
		return nil
	}
	if statusRank[next] <= statusRank[s] {
		return &TransitionError{From: s, To: next, Reason: "backward transitions are not permitted"}
	}
	return nil
}

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodWallet PaymentMethod = "wallet"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCard || m == PaymentMethodWallet
}

type CustomerInfo struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// OrderItem captures the book snapshot and unit price at order-creation
// time, so historical orders stay accurate if the catalog changes later.
type OrderItem struct {
	BookID   string          `json:"book_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Book     Book            `json:"book"`
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID              string        `json:"id"`
	Items           []OrderItem   `json:"items"`
	Customer        CustomerInfo  `json:"customer"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentIntentID string        `json:"payment_intent_id,omitempty"`
	WalletOrderID   string        `json:"wallet_order_id,omitempty"`
	Status          OrderStatus   `json:"status"`
	Revision        int64         `json:"revision"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Total is always the sum of line subtotals; no stored total exists that
// could drift from the items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

type CreateOrderItem struct {
	BookID   string `json:"book_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items           []CreateOrderItem `json:"items" binding:"required,min=1,dive"`
	Customer        CustomerInfo      `json:"customer" binding:"required"`
	PaymentMethod   PaymentMethod     `json:"payment_method" binding:"required"`
	PaymentIntentID string            `json:"payment_intent_id"`
	WalletOrderID   string            `json:"wallet_order_id"`
}

type SyncOrderRequest struct {
	Order *Order `json:"order" binding:"required"`
}

type UpdateStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
}

type OrderResponse struct {
	Success bool   `json:"success"`
	Order   *Order `json:"order,omitempty"`
	Message string `json:"message,omitempty"`
}

type OrdersResponse struct {
	Orders []*Order `json:"orders"`
}
