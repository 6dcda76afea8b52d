package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"19.99", 1999},
		{"0.01", 1},
		{"1.15", 115},
		{"0.29", 29},
		{"12.76", 1276},
		{"100", 10000},
		{"41.60", 4160},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := MinorUnits(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntentRequestValidate(t *testing.T) {
	valid := IntentRequest{
		Amount:        decimal.RequireFromString("19.99"),
		Currency:      "gbp",
		CustomerEmail: "shopper@example.com",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*IntentRequest)
	}{
		{"zero amount", func(r *IntentRequest) { r.Amount = decimal.Zero }},
		{"negative amount", func(r *IntentRequest) { r.Amount = decimal.RequireFromString("-5") }},
		{"missing email", func(r *IntentRequest) { r.CustomerEmail = "" }},
		{"blank email", func(r *IntentRequest) { r.CustomerEmail = "   " }},
		{"bad currency", func(r *IntentRequest) { r.Currency = "pounds" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			var validationErr *domain.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestNormalizedCurrencyDefaultsToGBP(t *testing.T) {
	assert.Equal(t, "gbp", IntentRequest{}.NormalizedCurrency())
	assert.Equal(t, "usd", IntentRequest{Currency: "USD"}.NormalizedCurrency())
}
