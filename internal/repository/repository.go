package repository

import (
	"context"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
)

// OrderRepository is the durable create/read/update-by-id contract the
// order service depends on. Put is an upsert keyed on order id; ListByEmail
// matches the normalized customer email and returns orders in creation
// order.
type OrderRepository interface {
	Put(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Order, error)
}
