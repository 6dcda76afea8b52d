package domain

import "github.com/shopspring/decimal"

// Book is an immutable catalog record. Prices are in GBP; weight is in
// grams and feeds shipping calculation.
type Book struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	InStock     bool            `json:"in_stock"`
	Category    string          `json:"category"`
	WeightGrams int             `json:"weight_grams"`
	ISBN        string          `json:"isbn"`
	Description string          `json:"description,omitempty"`
}

// CartItem is a cart line: one per distinct book id, quantity >= 1.
type CartItem struct {
	Book     Book `json:"book"`
	Quantity int  `json:"quantity"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Book.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
