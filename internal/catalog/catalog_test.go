package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
)

func TestFindByID(t *testing.T) {
	store := NewStore(Books)

	book, ok := store.FindByID("beardmore-aviation")
	require.True(t, ok)
	assert.Equal(t, "Beardmore Aviation 1913-1930", book.Title)
	assert.True(t, decimal.RequireFromString("12.76").Equal(book.Price))

	_, ok = store.FindByID("no-such-book")
	assert.False(t, ok)
}

func TestListReturnsCopy(t *testing.T) {
	store := NewStore(Books)

	list := store.List()
	require.Len(t, list, len(Books))

	list[0].Title = "mutated"
	again, ok := store.FindByID(list[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", again.Title)
}

func TestValidateCleanCatalog(t *testing.T) {
	store := NewStore(Books)
	assert.Empty(t, store.Validate(), "the shipped catalog must be clean")
}

func TestValidateReportsProblems(t *testing.T) {
	store := NewStore([]domain.Book{
		{ID: "ok", Title: "Fine", Price: decimal.RequireFromString("9.99"), ISBN: "9780000000001", WeightGrams: 300, Category: "History"},
		{ID: "bad-price", Title: "Freebie", Price: decimal.Zero, ISBN: "9780000000002", WeightGrams: 300, Category: "History"},
		{ID: "no-isbn", Title: "Untracked", Price: decimal.RequireFromString("5.00"), WeightGrams: 300, Category: "History"},
		{ID: "no-isbn", Title: "Duplicate", Price: decimal.RequireFromString("5.00"), ISBN: "9780000000003", WeightGrams: 300, Category: "History"},
		{ID: "no-weight", Title: "Weightless", Price: decimal.RequireFromString("5.00"), ISBN: "9780000000004", Category: "History"},
	})

	problems := store.Validate()

	fields := map[string]int{}
	for _, p := range problems {
		fields[p.Field]++
	}
	assert.Equal(t, 1, fields["price"])
	assert.Equal(t, 1, fields["isbn"])
	assert.Equal(t, 1, fields["id"], "duplicate id reported once")
	assert.Equal(t, 1, fields["weight_grams"])
}
