package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// WalletClient brokers the redirect-based wallet flow: create a provider
// order the shopper approves in the wallet UI, then capture it. The
// capture id is the reference recorded on the order.
type WalletClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *zap.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewWalletClient(baseURL, clientID, clientSecret string, logger *zap.Logger) *WalletClient {
	return &WalletClient{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		logger:       logger,
	}
}

type walletOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Name   string `json:"name"`
	Detail string `json:"message"`
}

// CreateIntent creates a wallet order the client later approves. The
// client secret slot carries the approval reference; wallet flows have no
// card-style secret.
func (w *WalletClient) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	token, err := w.token(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{
			{
				"custom_id": req.OrderID,
				"amount": map[string]string{
					"currency_code": strings.ToUpper(req.NormalizedCurrency()),
					"value":         req.Amount.StringFixed(2),
				},
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		w.baseURL+"/v2/checkout/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	var out walletOrderResponse
	status, err := w.do(httpReq, &out)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		w.logger.Warn("Wallet provider rejected order creation",
			zap.Int("status", status),
			zap.String("name", out.Name))
		return nil, &ProviderError{StatusCode: status, Code: out.Name, Message: out.Detail}
	}

	return &Intent{ID: out.ID}, nil
}

// Confirm captures an approved wallet order.
func (w *WalletClient) Confirm(ctx context.Context, reference string) (*Confirmation, error) {
	if reference == "" {
		return nil, fmt.Errorf("wallet order reference is required")
	}

	token, err := w.token(ctx)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		w.baseURL+"/v2/checkout/orders/"+url.PathEscape(reference)+"/capture", nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	var out walletOrderResponse
	status, err := w.do(httpReq, &out)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, &ProviderError{StatusCode: status, Code: out.Name, Message: out.Detail}
	}

	return &Confirmation{
		Reference: out.ID,
		Confirmed: out.Status == "COMPLETED",
	}, nil
}

type walletTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// token returns a cached client-credentials token, refreshing it shortly
// before expiry.
func (w *WalletClient) token(ctx context.Context) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.accessToken != "" && time.Now().Before(w.tokenExpiry) {
		return w.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		w.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.SetBasicAuth(w.clientID, w.clientSecret)

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("wallet provider token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", &ProviderError{StatusCode: resp.StatusCode, Message: "wallet provider authentication failed"}
	}

	var tok walletTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("failed to decode wallet token response: %w", err)
	}

	w.accessToken = tok.AccessToken
	w.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - time.Minute)
	return w.accessToken, nil
}

func (w *WalletClient) do(req *http.Request, out any) (int, error) {
	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("wallet provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode wallet provider response: %w", err)
	}
	return resp.StatusCode, nil
}
