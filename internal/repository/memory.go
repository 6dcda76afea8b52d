package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
)

// MemoryRepository is the process-local order registry. Writes are
// serialized per call by the mutex; insertion order is tracked so email
// lookups return orders in creation order.
type MemoryRepository struct {
	mu      sync.RWMutex
	orders  map[string]*domain.Order
	seq     map[string]int64
	nextSeq int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		orders: make(map[string]*domain.Order),
		seq:    make(map[string]int64),
	}
}

func (r *MemoryRepository) Put(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		r.nextSeq++
		r.seq[order.ID] = r.nextSeq
	}
	r.orders[order.ID] = cloneOrder(order)
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return cloneOrder(order), nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*domain.Order) bool { return true }), nil
}

func (r *MemoryRepository) ListByEmail(_ context.Context, email string) ([]*domain.Order, error) {
	want := strings.ToLower(strings.TrimSpace(email))
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(o *domain.Order) bool {
		return strings.ToLower(o.Customer.Email) == want
	}), nil
}

// collect returns matching orders sorted by insertion sequence. Callers
// hold at least a read lock.
func (r *MemoryRepository) collect(match func(*domain.Order) bool) []*domain.Order {
	out := []*domain.Order{}
	for _, order := range r.orders {
		if match(order) {
			out = append(out, cloneOrder(order))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return r.seq[out[i].ID] < r.seq[out[j].ID]
	})
	return out
}

// cloneOrder copies the order and its items so callers cannot mutate the
// registry's stored state.
func cloneOrder(o *domain.Order) *domain.Order {
	c := *o
	c.Items = make([]domain.OrderItem, len(o.Items))
	copy(c.Items, o.Items)
	return &c
}
