// Package gateway defines the pluggable payment-provider seam.
// Concrete gateways live in subpackages and register themselves in the
// Registry, keyed by provider name.
package gateway

import (
	"context"
	"time"

	"agendapay/internal/pkg/errs"
	"agendapay/internal/pkg/money"
)

// CreatePaymentRequest is a provider-agnostic payment-intent request.
type CreatePaymentRequest struct {
	Amount            money.Money
	Description       string
	PayerEmail        string
	Method            string
	NotificationURL   string
	ExternalReference string
	IdempotencyKey    string
	ExpiresAt         time.Time
}

// PaymentIntent is the provider's answer to a create call.
type PaymentIntent struct {
	TransactionID string
	Status        string
}

// PaymentResource is the authoritative payment state fetched back from
// the provider during reconciliation.
type PaymentResource struct {
	TransactionID     string
	Status            string
	Amount            money.Money
	ExternalReference string
}

// TokenPair is the result of an OAuth token-endpoint call.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds
}

// Provider is the capability set every payment gateway must offer.
type Provider interface {
	Name() string
	CreatePayment(ctx context.Context, accessToken string, req CreatePaymentRequest) (*PaymentIntent, error)
	FetchPayment(ctx context.Context, accessToken, transactionID string) (*PaymentResource, error)
}

// OAuthClient covers the provider's OAuth token endpoint.
type OAuthClient interface {
	AuthorizationURL(state, codeChallenge string) string
	ExchangeCode(ctx context.Context, code, codeVerifier string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

var ErrUnknownProvider = errs.New("unknown payment provider")

// Registry selects a Provider by configuration key.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	m := make(map[string]Provider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, errs.Wrapf(ErrUnknownProvider, "provider %q", name)
	}
	return p, nil
}
