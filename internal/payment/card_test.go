package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCardCreateIntent(t *testing.T) {
	var gotForm map[string]string
	var gotIdempotencyKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		gotIdempotencyKey = r.Header.Get("Idempotency-Key")

		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"amount":        r.PostForm.Get("amount"),
			"currency":      r.PostForm.Get("currency"),
			"receipt_email": r.PostForm.Get("receipt_email"),
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc","status":"requires_payment_method"}`))
	}))
	defer srv.Close()

	client := NewCardClient(srv.URL, "sk_test_123", zap.NewNop())
	intent, err := client.CreateIntent(context.Background(), IntentRequest{
		Amount:        decimal.RequireFromString("19.99"),
		Currency:      "gbp",
		CustomerEmail: "shopper@example.com",
		OrderID:       "order-42",
	})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
	assert.Equal(t, "1999", gotForm["amount"], "19.99 GBP must be 1999 pence")
	assert.Equal(t, "gbp", gotForm["currency"])
	assert.Equal(t, "shopper@example.com", gotForm["receipt_email"])
	assert.Equal(t, "order-42", gotIdempotencyKey, "order id doubles as the idempotency key")
}

func TestCardCreateIntentProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"code":"card_declined","message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	client := NewCardClient(srv.URL, "sk_test_123", zap.NewNop())
	_, err := client.CreateIntent(context.Background(), IntentRequest{
		Amount:        decimal.RequireFromString("19.99"),
		CustomerEmail: "shopper@example.com",
	})

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusPaymentRequired, provErr.StatusCode)
	assert.Equal(t, "card_declined", provErr.Code)
	assert.Equal(t, "Your card was declined.", provErr.Message)
}

func TestCardCreateIntentValidatesBeforeCalling(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewCardClient(srv.URL, "sk_test_123", zap.NewNop())
	_, err := client.CreateIntent(context.Background(), IntentRequest{
		Amount:        decimal.Zero,
		CustomerEmail: "shopper@example.com",
	})

	require.Error(t, err)
	assert.False(t, called, "invalid requests must not reach the provider")
}

func TestCardConfirm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","status":"succeeded"}`))
	}))
	defer srv.Close()

	client := NewCardClient(srv.URL, "sk_test_123", zap.NewNop())
	conf, err := client.Confirm(context.Background(), "pi_123")

	require.NoError(t, err)
	assert.Equal(t, "pi_123", conf.Reference)
	assert.True(t, conf.Confirmed)
}

func TestCardConfirmUnsettled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","status":"requires_payment_method"}`))
	}))
	defer srv.Close()

	client := NewCardClient(srv.URL, "sk_test_123", zap.NewNop())
	conf, err := client.Confirm(context.Background(), "pi_123")

	require.NoError(t, err)
	assert.False(t, conf.Confirmed)
}
