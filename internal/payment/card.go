package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CardClient creates card payment intents against the processor's REST
// API. It holds the secret key server-side and never sees card data.
type CardClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewCardClient(baseURL, secretKey string, logger *zap.Logger) *CardClient {
	return &CardClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

type cardIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Error        *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateIntent creates a provider-side intent for the amount converted to
// minor units. The order id doubles as the idempotency key when present,
// so a retried create cannot double-charge.
func (c *CardClient) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(MinorUnits(req.Amount), 10))
	form.Set("currency", req.NormalizedCurrency())
	form.Set("receipt_email", req.CustomerEmail)
	form.Set("automatic_payment_methods[enabled]", "true")
	if req.OrderID != "" {
		form.Set("metadata[order_id]", req.OrderID)
	}

	idempotencyKey := req.OrderID
	if idempotencyKey == "" {
		idempotencyKey = uuid.New().String()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Idempotency-Key", idempotencyKey)

	var body cardIntentResponse
	status, err := c.do(httpReq, &body)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		provErr := &ProviderError{StatusCode: status, Message: "payment intent creation failed"}
		if body.Error != nil {
			provErr.Code = body.Error.Code
			provErr.Message = body.Error.Message
		}
		c.logger.Warn("Card provider rejected intent creation",
			zap.Int("status", status),
			zap.String("code", provErr.Code))
		return nil, provErr
	}

	return &Intent{ID: body.ID, ClientSecret: body.ClientSecret}, nil
}

// Confirm looks up the intent and reports whether payment succeeded.
func (c *CardClient) Confirm(ctx context.Context, reference string) (*Confirmation, error) {
	if reference == "" {
		return nil, fmt.Errorf("payment intent reference is required")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/payment_intents/"+url.PathEscape(reference), nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	var body cardIntentResponse
	status, err := c.do(httpReq, &body)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		provErr := &ProviderError{StatusCode: status, Message: "payment intent lookup failed"}
		if body.Error != nil {
			provErr.Code = body.Error.Code
			provErr.Message = body.Error.Message
		}
		return nil, provErr
	}

	return &Confirmation{
		Reference: body.ID,
		Confirmed: body.Status == "succeeded",
	}, nil
}

func (c *CardClient) do(req *http.Request, out any) (int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("card provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode card provider response: %w", err)
	}
	return resp.StatusCode, nil
}
