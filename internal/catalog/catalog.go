package catalog

import (
	"fmt"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
)

// Store is the read-only source of truth for book identity, price and
// availability. It is populated once at startup and never mutated.
type Store struct {
	books []domain.Book
	byID  map[string]domain.Book
}

func NewStore(books []domain.Book) *Store {
	s := &Store{
		books: books,
		byID:  make(map[string]domain.Book, len(books)),
	}
	for _, b := range books {
		s.byID[b.ID] = b
	}
	return s
}

func (s *Store) FindByID(id string) (domain.Book, bool) {
	b, ok := s.byID[id]
	return b, ok
}

func (s *Store) List() []domain.Book {
	out := make([]domain.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Problem describes one data-quality issue found in the catalog feed.
type Problem struct {
	BookID string `json:"book_id"`
	Field  string `json:"field"`
	Detail string `json:"detail"`
}

// Validate runs the feed data-quality checks backing /api/validate-feeds.
func (s *Store) Validate() []Problem {
	problems := []Problem{}
	seen := make(map[string]bool, len(s.books))
	for _, b := range s.books {
		if b.ID == "" {
			problems = append(problems, Problem{Field: "id", Detail: "empty book id"})
			continue
		}
		if seen[b.ID] {
			problems = append(problems, Problem{BookID: b.ID, Field: "id", Detail: "duplicate book id"})
		}
		seen[b.ID] = true
		if b.Title == "" {
			problems = append(problems, Problem{BookID: b.ID, Field: "title", Detail: "missing title"})
		}
		if !b.Price.IsPositive() {
			problems = append(problems, Problem{BookID: b.ID, Field: "price", Detail: fmt.Sprintf("non-positive price %s", b.Price)})
		}
		if b.ISBN == "" {
			problems = append(problems, Problem{BookID: b.ID, Field: "isbn", Detail: "missing isbn"})
		}
		if b.WeightGrams <= 0 {
			problems = append(problems, Problem{BookID: b.ID, Field: "weight_grams", Detail: "missing or non-positive weight"})
		}
		if b.Category == "" {
			problems = append(problems, Problem{BookID: b.ID, Field: "category", Detail: "missing category"})
		}
	}
	return problems
}
