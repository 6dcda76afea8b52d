package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/catalog"
	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/events"
	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/repository"
)

// Publisher is the slice of the event producer the service needs. A nil
// Publisher disables event publication.
type Publisher interface {
	PublishOrderCreated(event events.OrderCreatedEvent) error
	PublishOrderStatusChanged(event events.OrderStatusChangedEvent) error
}

// OrderService is the authoritative order registry: creation, lookup,
// idempotent client sync, and lifecycle transitions. Mutations on the
// same order id are serialized by per-id locks; the winning write is
// decided by the registry-assigned revision, not wall clock.
type OrderService struct {
	catalog  *catalog.Store
	repo     repository.OrderRepository
	producer Publisher
	logger   *zap.Logger
	locks    sync.Map
}

func NewOrderService(cat *catalog.Store, repo repository.OrderRepository, producer Publisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		catalog:  cat,
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// CreateOrder validates every item against the catalog before any write
// (an unknown book id rejects the whole order), snapshots book data and
// price into each line, and stores the order with status created.
func (s *OrderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, requestID string) (*domain.Order, error) {
	if !req.PaymentMethod.Valid() {
		return nil, domain.NewValidationError("unknown payment method %q", req.PaymentMethod)
	}
	customer := req.Customer
	customer.Email = normalizeEmail(customer.Email)
	if customer.Email == "" {
		return nil, domain.NewValidationError("customer email is required")
	}
	if customer.Name == "" {
		return nil, domain.NewValidationError("customer name is required")
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, domain.NewValidationError("quantity for book %q must be at least 1", line.BookID)
		}
		book, ok := s.catalog.FindByID(line.BookID)
		if !ok {
			return nil, domain.NewValidationError("unknown book id %q", line.BookID)
		}
		items = append(items, domain.OrderItem{
			BookID:   book.ID,
			Quantity: line.Quantity,
			Price:    book.Price,
			Book:     book,
		})
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:              uuid.New().String(),
		Items:           items,
		Customer:        customer,
		PaymentMethod:   req.PaymentMethod,
		PaymentIntentID: req.PaymentIntentID,
		WalletOrderID:   req.WalletOrderID,
		Status:          domain.OrderStatusCreated,
		Revision:        1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	unlock := s.lockOrder(order.ID)
	defer unlock()

	if err := s.repo.Put(ctx, order); err != nil {
		s.logger.Error("Failed to save order",
			zap.String("order_id", order.ID),
			zap.Error(err))
		return nil, err
	}

	s.publishCreated(order, requestID)

	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("email", order.Customer.Email),
		zap.String("total", order.Total().StringFixed(2)))

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.Get(ctx, id)
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// GetOrdersByEmail matches the normalized email and returns orders in
// creation order. No matches is an empty result, not an error.
func (s *OrderService) GetOrdersByEmail(ctx context.Context, email string) ([]*domain.Order, error) {
	return s.repo.ListByEmail(ctx, normalizeEmail(email))
}

// SyncOrder reconciles a client-held order copy into the registry:
// insert if absent, else whole-order replacement with the incoming copy
// winning. Re-syncing an identical payload is a no-op, so the call is
// idempotent.
func (s *OrderService) SyncOrder(ctx context.Context, incoming *domain.Order, requestID string) (*domain.Order, error) {
	if incoming == nil || incoming.ID == "" {
		return nil, domain.NewValidationError("order id is required for sync")
	}
	if incoming.Status == "" {
		incoming.Status = domain.OrderStatusCreated
	}
	if !incoming.Status.Valid() {
		return nil, domain.NewValidationError("unknown order status %q", incoming.Status)
	}
	incoming.Customer.Email = normalizeEmail(incoming.Customer.Email)

	unlock := s.lockOrder(incoming.ID)
	defer unlock()

	existing, err := s.repo.Get(ctx, incoming.ID)
	switch {
	case err == nil:
		if sameOrder(existing, incoming) {
			return existing, nil
		}
		incoming.Revision = existing.Revision + 1
		if incoming.CreatedAt.IsZero() {
			incoming.CreatedAt = existing.CreatedAt
		}
	case errors.Is(err, domain.ErrOrderNotFound):
		incoming.Revision = 1
		if incoming.CreatedAt.IsZero() {
			incoming.CreatedAt = time.Now().UTC()
		}
	default:
		return nil, err
	}
	incoming.UpdatedAt = time.Now().UTC()

	if err := s.repo.Put(ctx, incoming); err != nil {
		s.logger.Error("Failed to sync order",
			zap.String("order_id", incoming.ID),
			zap.Error(err))
		return nil, err
	}

	if existing == nil {
		s.publishCreated(incoming, requestID)
	}

	s.logger.Info("Order synced",
		zap.String("order_id", incoming.ID),
		zap.Int64("revision", incoming.Revision))

	return incoming, nil
}

// UpdateStatus applies an operator transition, enforcing the lifecycle
// state machine server-side.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, next domain.OrderStatus, requestID string) (*domain.Order, error) {
	unlock := s.lockOrder(orderID)
	defer unlock()

	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Status.CanTransitionTo(next); err != nil {
		return nil, err
	}

	from := order.Status
	order.Status = next
	order.Revision++
	order.UpdatedAt = time.Now().UTC()

	if err := s.repo.Put(ctx, order); err != nil {
		s.logger.Error("Failed to update order status",
			zap.String("order_id", orderID),
			zap.Error(err))
		return nil, err
	}

	if s.producer != nil {
		event := events.OrderStatusChangedEvent{
			EventID:    uuid.New().String(),
			OrderID:    order.ID,
			FromStatus: string(from),
			ToStatus:   string(next),
			Timestamp:  time.Now().UTC(),
			RequestID:  requestID,
		}
		if err := s.producer.PublishOrderStatusChanged(event); err != nil {
			s.logger.Error("Failed to publish status event",
				zap.String("order_id", order.ID),
				zap.Error(err))
		}
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", order.ID),
		zap.String("from", string(from)),
		zap.String("to", string(next)))

	return order, nil
}

// publishCreated publishes and logs on failure; event delivery is
// eventually consistent and never fails the request.
func (s *OrderService) publishCreated(order *domain.Order, requestID string) {
	if s.producer == nil {
		return
	}
	event := events.OrderCreatedEvent{
		EventID:       uuid.New().String(),
		OrderID:       order.ID,
		CustomerEmail: order.Customer.Email,
		TotalAmount:   order.Total().StringFixed(2),
		Currency:      "GBP",
		Items:         order.Items,
		Status:        string(order.Status),
		Timestamp:     time.Now().UTC(),
		RequestID:     requestID,
	}
	if err := s.producer.PublishOrderCreated(event); err != nil {
		s.logger.Error("Failed to publish order event",
			zap.String("order_id", order.ID),
			zap.Error(err))
	}
}

// lockOrder serializes mutations on one order id. PutItem alone does not
// order racing read-modify-write cycles, so the service holds the lock
// across get and put.
func (s *OrderService) lockOrder(id string) func() {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// sameOrder compares orders ignoring registry-assigned bookkeeping.
func sameOrder(stored, incoming *domain.Order) bool {
	a := *stored
	b := *incoming
	a.Revision, b.Revision = 0, 0
	a.UpdatedAt, b.UpdatedAt = time.Time{}, time.Time{}
	return reflect.DeepEqual(a, b)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
