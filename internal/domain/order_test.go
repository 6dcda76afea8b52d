package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"created to paid", OrderStatusCreated, OrderStatusPaid, true},
		{"paid to shipped", OrderStatusPaid, OrderStatusShipped, true},
		{"shipped to delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"created to shipped skips paid", OrderStatusCreated, OrderStatusShipped, true},
		{"cancel from created", OrderStatusCreated, OrderStatusCancelled, true},
		{"refund from shipped", OrderStatusShipped, OrderStatusRefunded, true},
		{"no backward paid to created", OrderStatusPaid, OrderStatusCreated, false},
		{"no backward shipped to paid", OrderStatusShipped, OrderStatusPaid, false},
		{"no self transition", OrderStatusPaid, OrderStatusPaid, false},
		{"delivered is terminal", OrderStatusDelivered, OrderStatusCreated, false},
		{"delivered cannot refund", OrderStatusDelivered, OrderStatusRefunded, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusPaid, false},
		{"refunded is terminal", OrderStatusRefunded, OrderStatusShipped, false},
		{"unknown target", OrderStatusCreated, OrderStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.from.CanTransitionTo(tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				var transitionErr *TransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, tt.from, transitionErr.From)
				assert.Equal(t, tt.to, transitionErr.To)
			}
		})
	}
}

func TestOrderTotalSumsLines(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{BookID: "a", Quantity: 2, Price: decimal.RequireFromString("12.76")},
			{BookID: "b", Quantity: 1, Price: decimal.RequireFromString("16.08")},
			{BookID: "c", Quantity: 3, Price: decimal.RequireFromString("9.85")},
		},
	}

	assert.True(t, decimal.RequireFromString("71.15").Equal(order.Total()),
		"got %s", order.Total())
}

func TestOrderTotalEmpty(t *testing.T) {
	order := &Order{}
	assert.True(t, order.Total().IsZero())
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentMethodCard.Valid())
	assert.True(t, PaymentMethodWallet.Valid())
	assert.False(t, PaymentMethod("cheque").Valid())
	assert.False(t, PaymentMethod("").Valid())
}
