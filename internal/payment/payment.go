package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
	"github.com/shopspring/decimal"
)

// IntentRequest describes one payment-intent creation. Amount is in the
// major currency unit (pounds for GBP).
type IntentRequest struct {
	Amount        decimal.Decimal
	Currency      string
	CustomerEmail string
	OrderID       string
}

// Intent is the provider-side handle for an authorized-but-not-captured
// payment attempt.
type Intent struct {
	ID           string
	ClientSecret string
}

// Confirmation reports whether the provider considers the payment
// captured, plus the reference to record on the order.
type Confirmation struct {
	Reference string
	Confirmed bool
}

// Provider brokers create/confirm calls against one external payment
// processor. Implementations hold credentials and no other state; calls
// are never retried internally, so callers may retry freely.
type Provider interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
	Confirm(ctx context.Context, reference string) (*Confirmation, error)
}

func (r IntentRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return domain.NewValidationError("amount must be greater than zero, got %s", r.Amount)
	}
	if strings.TrimSpace(r.CustomerEmail) == "" {
		return domain.NewValidationError("customer email is required")
	}
	if r.Currency != "" && len(r.Currency) != 3 {
		return domain.NewValidationError("currency must be a three-letter code, got %q", r.Currency)
	}
	return nil
}

// NormalizedCurrency lowercases the currency, defaulting to gbp.
func (r IntentRequest) NormalizedCurrency() string {
	if r.Currency == "" {
		return "gbp"
	}
	return strings.ToLower(r.Currency)
}

// MinorUnits converts a major-unit amount to the smallest currency unit
// (pence for GBP) without floating-point drift.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// ProviderError carries a processor rejection through to the caller with
// the provider's own message.
type ProviderError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payment provider rejected the request (%s): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("payment provider rejected the request: %s", e.Message)
}
