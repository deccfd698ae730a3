//go:build unit

package mercadopago

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendapay/internal/infra/gateway"
	"agendapay/internal/pkg/config"
	"agendapay/internal/pkg/errs"
	"agendapay/internal/pkg/money"
)

func testConfig() config.GatewayConfig {
	return config.GatewayConfig{
		Provider:     ProviderName,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "https://example.com/oauth/callback",
		WebhookURL:   "https://example.com/webhook",
		Timeout:      2 * time.Second,
	}
}

func TestCreatePayment(t *testing.T) {
	var captured struct {
		method         string
		path           string
		authorization  string
		idempotencyKey string
		body           map[string]any
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.authorization = r.Header.Get("Authorization")
		captured.idempotencyKey = r.Header.Get("X-Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 12345678901, "status": "pending"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(), WithBaseURLs(srv.URL, srv.URL))

	expiresAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	intent, err := client.CreatePayment(context.Background(), "merchant-token", gateway.CreatePaymentRequest{
		Amount:            money.FromCents(129900),
		Description:       "Full detailing",
		PayerEmail:        "payer@example.com",
		Method:            "pix",
		NotificationURL:   "https://example.com/webhook",
		ExternalReference: "appt-1",
		IdempotencyKey:    "idem-1",
		ExpiresAt:         expiresAt,
	})
	require.NoError(t, err)

	assert.Equal(t, "12345678901", intent.TransactionID)
	assert.Equal(t, "pending", intent.Status)

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/v1/payments", captured.path)
	assert.Equal(t, "Bearer merchant-token", captured.authorization)
	assert.Equal(t, "idem-1", captured.idempotencyKey)
	assert.Equal(t, 1299.0, captured.body["transaction_amount"])
	assert.Equal(t, "appt-1", captured.body["external_reference"])
	assert.Equal(t, "2026-03-01T12:00:00Z", captured.body["date_of_expiration"])
	payer, ok := captured.body["payer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "payer@example.com", payer["email"])
}

func TestCreatePayment_MissingTransactionID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "pending"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(), WithBaseURLs(srv.URL, srv.URL))

	_, err := client.CreatePayment(context.Background(), "tok", gateway.CreatePaymentRequest{
		Amount:    money.FromCents(100),
		ExpiresAt: time.Now(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrGatewayResponse))
}

func TestCreatePayment_GatewayErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "invalid token"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(), WithBaseURLs(srv.URL, srv.URL))

	_, err := client.CreatePayment(context.Background(), "tok", gateway.CreatePaymentRequest{
		Amount:    money.FromCents(100),
		ExpiresAt: time.Now(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrGatewayResponse))
}

func TestCreatePayment_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewClient(testConfig(), WithBaseURLs(srv.URL, srv.URL))

	_, err := client.CreatePayment(context.Background(), "tok", gateway.CreatePaymentRequest{
		Amount:    money.FromCents(100),
		ExpiresAt: time.Now(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrGatewayUnavailable))
}

func TestFetchPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/payments/987", r.URL.Path)
		assert.Equal(t, "Bearer merchant-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id": 987, "status": "approved", "transaction_amount": 41.0, "external_reference": "appt-9"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(), WithBaseURLs(srv.URL, srv.URL))

	res, err := client.FetchPayment(context.Background(), "merchant-token", "987")
	require.NoError(t, err)

	assert.Equal(t, "987", res.TransactionID)
	assert.Equal(t, "approved", res.Status)
	assert.Equal(t, int64(4100), res.Amount.Cents())
	assert.Equal(t, "appt-9", res.ExternalReference)
}

func TestExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostFormValue("grant_type"))
		assert.Equal(t, "client-id", r.PostFormValue("client_id"))
		assert.Equal(t, "client-secret", r.PostFormValue("client_secret"))
		assert.Equal(t, "the-code", r.PostFormValue("code"))
		assert.Equal(t, "the-verifier", r.PostFormValue("code_verifier"))
		assert.Equal(t, "https://example.com/oauth/callback", r.PostFormValue("redirect_uri"))

		_, _ = w.Write([]byte(`{"access_token": "at", "refresh_token": "rt", "expires_in": 21600}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(), WithBaseURLs(srv.URL, srv.URL))

	pair, err := client.ExchangeCode(context.Background(), "the-code", "the-verifier")
	require.NoError(t, err)

	assert.Equal(t, "at", pair.AccessToken)
	assert.Equal(t, "rt", pair.RefreshToken)
	assert.Equal(t, int64(21600), pair.ExpiresIn)
}

func TestRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostFormValue("grant_type"))
		assert.Equal(t, "old-rt", r.PostFormValue("refresh_token"))
		_, _ = w.Write([]byte(`{"access_token": "new-at", "refresh_token": "new-rt", "expires_in": 21600}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(), WithBaseURLs(srv.URL, srv.URL))

	pair, err := client.Refresh(context.Background(), "old-rt")
	require.NoError(t, err)
	assert.Equal(t, "new-at", pair.AccessToken)
	assert.Equal(t, "new-rt", pair.RefreshToken)
}

func TestRefresh_MissingAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(), WithBaseURLs(srv.URL, srv.URL))

	_, err := client.Refresh(context.Background(), "rt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrGatewayResponse))
}

func TestAuthorizationURL(t *testing.T) {
	client := NewClient(testConfig())

	raw := client.AuthorizationURL("state-1", "challenge-1")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "auth.mercadopago.com", u.Host)
	assert.Equal(t, "/authorization", u.Path)
	q := u.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "https://example.com/oauth/callback", q.Get("redirect_uri"))
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "challenge-1", q.Get("code_challenge"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
}
