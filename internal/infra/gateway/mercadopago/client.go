// Package mercadopago implements the gateway.Provider and
// gateway.OAuthClient seams against the Mercado Pago REST API.
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agendapay/internal/infra/gateway"
	"agendapay/internal/pkg/config"
	"agendapay/internal/pkg/errs"
	"agendapay/internal/pkg/money"
	"agendapay/internal/pkg/pkce"
)

const (
	defaultAPIBaseURL  = "https://api.mercadopago.com"
	defaultAuthBaseURL = "https://auth.mercadopago.com"

	ProviderName = "mercadopago"
)

type Client struct {
	httpClient  *http.Client
	apiBaseURL  string
	authBaseURL string
	cfg         config.GatewayConfig
}

type Option func(*Client)

// WithBaseURLs overrides the API and auth endpoints, used by tests.
func WithBaseURLs(api, auth string) Option {
	return func(c *Client) {
		c.apiBaseURL = strings.TrimRight(api, "/")
		c.authBaseURL = strings.TrimRight(auth, "/")
	}
}

func NewClient(cfg config.GatewayConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	c := &Client{
		httpClient:  &http.Client{Timeout: timeout},
		apiBaseURL:  defaultAPIBaseURL,
		authBaseURL: defaultAuthBaseURL,
		cfg:         cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Name() string {
	return ProviderName
}

type paymentRequestBody struct {
	TransactionAmount float64      `json:"transaction_amount"`
	Description       string       `json:"description"`
	PaymentMethodID   string       `json:"payment_method_id,omitempty"`
	Payer             paymentPayer `json:"payer"`
	NotificationURL   string       `json:"notification_url"`
	ExternalReference string       `json:"external_reference"`
	DateOfExpiration  string       `json:"date_of_expiration"`
}

type paymentPayer struct {
	Email string `json:"email"`
}

type paymentResponseBody struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	TransactionAmount float64     `json:"transaction_amount"`
	ExternalReference string      `json:"external_reference"`
}

func (c *Client) CreatePayment(ctx context.Context, accessToken string, req gateway.CreatePaymentRequest) (*gateway.PaymentIntent, error) {
	body := paymentRequestBody{
		TransactionAmount: req.Amount.Float(),
		Description:       req.Description,
		PaymentMethodID:   req.Method,
		Payer:             paymentPayer{Email: req.PayerEmail},
		NotificationURL:   req.NotificationURL,
		ExternalReference: req.ExternalReference,
		DateOfExpiration:  req.ExpiresAt.UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode payment request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBaseURL+"/v1/payments", bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build payment request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	httpReq.Header.Set("X-Idempotency-Key", req.IdempotencyKey)

	var resp paymentResponseBody
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}

	// A payment without a transaction id is unusable for webhook
	// correlation later.
	if resp.ID.String() == "" {
		return nil, errs.Mark(errs.New("transaction id missing in create response"), errs.ErrGatewayResponse)
	}

	return &gateway.PaymentIntent{
		TransactionID: resp.ID.String(),
		Status:        resp.Status,
	}, nil
}

func (c *Client) FetchPayment(ctx context.Context, accessToken, transactionID string) (*gateway.PaymentResource, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/v1/payments/"+url.PathEscape(transactionID), nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build payment fetch request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)

	var resp paymentResponseBody
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}

	return &gateway.PaymentResource{
		TransactionID:     resp.ID.String(),
		Status:            resp.Status,
		Amount:            money.FromFloat(resp.TransactionAmount),
		ExternalReference: resp.ExternalReference,
	}, nil
}

func (c *Client) AuthorizationURL(state, codeChallenge string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", c.cfg.ClientID)
	q.Set("redirect_uri", c.cfg.RedirectURI)
	q.Set("state", state)
	q.Set("code_challenge", codeChallenge)
	q.Set("code_challenge_method", pkce.ChallengeMethod)
	return c.authBaseURL + "/authorization?" + q.Encode()
}

type tokenResponseBody struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (c *Client) ExchangeCode(ctx context.Context, code, codeVerifier string) (*gateway.TokenPair, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("code", code)
	form.Set("redirect_uri", c.cfg.RedirectURI)
	form.Set("code_verifier", codeVerifier)

	return c.postToken(ctx, form)
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*gateway.TokenPair, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("refresh_token", refreshToken)

	return c.postToken(ctx, form)
}

func (c *Client) postToken(ctx context.Context, form url.Values) (*gateway.TokenPair, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBaseURL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build token request")
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp tokenResponseBody
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, errs.Mark(errs.New("access token missing in token response"), errs.ErrGatewayResponse)
	}

	return &gateway.TokenPair{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(err, errs.ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Mark(err, errs.ErrGatewayUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Mark(
			fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, truncate(body, 256)),
			errs.ErrGatewayResponse,
		)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode gateway response"), errs.ErrGatewayResponse)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
