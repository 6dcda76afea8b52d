package events

import (
	"time"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
)

type OrderCreatedEvent struct {
	EventID       string             `json:"event_id"`
	OrderID       string             `json:"order_id"`
	CustomerEmail string             `json:"customer_email"`
	TotalAmount   string             `json:"total_amount"`
	Currency      string             `json:"currency"`
	Items         []domain.OrderItem `json:"items"`
	Status        string             `json:"status"`
	Timestamp     time.Time          `json:"timestamp"`
	RequestID     string             `json:"request_id"`
}

type OrderStatusChangedEvent struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id"`
}
