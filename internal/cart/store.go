package cart

import (
	"sync"
	"time"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Store holds a shopper's in-progress selection. All mutation goes through
// the named operations; every mutation persists a full snapshot so the
// cart survives a reload. Persistence failures degrade to in-memory
// operation rather than blocking the shopper.
type Store struct {
	mu      sync.Mutex
	items   []domain.CartItem
	storage Storage
	logger  *zap.Logger
}

func NewStore(storage Storage, logger *zap.Logger) *Store {
	s := &Store{
		storage: storage,
		logger:  logger,
	}
	s.hydrate()
	return s
}

// hydrate loads the persisted snapshot, starting empty on absent or
// corrupt data.
func (s *Store) hydrate() {
	if s.storage == nil {
		return
	}
	snap, err := s.storage.Load()
	if err != nil {
		s.logger.Warn("Cart snapshot unavailable, starting empty", zap.Error(err))
		return
	}
	for _, item := range snap.Items {
		if item.Book.ID == "" || item.Quantity < 1 {
			s.logger.Warn("Dropping invalid cart line from snapshot",
				zap.String("book_id", item.Book.ID),
				zap.Int("quantity", item.Quantity))
			continue
		}
		s.items = append(s.items, item)
	}
}

// AddItem inserts a line for the book, or increments the quantity of the
// existing line. At most one line per distinct book id.
func (s *Store) AddItem(book domain.Book, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Book.ID == book.ID {
			s.items[i].Quantity += quantity
			s.persist()
			return
		}
	}
	s.items = append(s.items, domain.CartItem{Book: book, Quantity: quantity})
	s.persist()
}

func (s *Store) RemoveItem(bookID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(bookID)
	s.persist()
}

// UpdateQuantity sets the quantity for a line; a quantity of zero or less
// removes the line.
func (s *Store) UpdateQuantity(bookID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLocked(bookID)
		s.persist()
		return
	}
	for i := range s.items {
		if s.items[i].Book.ID == bookID {
			s.items[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Clear empties the cart. Called after a successful order submission,
// never before.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total is computed on demand from the current lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (s *Store) removeLocked(bookID string) {
	for i := range s.items {
		if s.items[i].Book.ID == bookID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// persist writes the full snapshot. Callers hold s.mu.
func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	snap := Snapshot{
		GeneratedAt: time.Now(),
		Items:       make([]domain.CartItem, len(s.items)),
	}
	copy(snap.Items, s.items)
	if err := s.storage.Save(snap); err != nil {
		s.logger.Warn("Failed to persist cart snapshot", zap.Error(err))
	}
}
