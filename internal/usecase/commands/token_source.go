package commands

import (
	"context"
	"log/slog"
	"time"

	"agendapay/internal/infra"
	"agendapay/internal/infra/gateway"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/infra/repository"
	"agendapay/internal/pkg/clock"
	"agendapay/internal/pkg/config"
	"agendapay/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMerchantTokenNotFound = errs.New("merchant gateway token not found")

// MerchantTokenSource resolves the access token to use for outbound
// gateway calls on behalf of a merchant, refreshing it transparently
// when it has expired.
type MerchantTokenSource interface {
	AccessTokenFor(ctx context.Context, userID uuid.UUID) (string, error)
}

type tokenSourceImpl struct {
	tokens GatewayTokenRepository
	oauth  gateway.OAuthClient
	db     postgres.Pool
	cfg    config.GatewayConfig
	clock  clock.Clock
}

func NewMerchantTokenSource(
	tokens GatewayTokenRepository,
	oauth gateway.OAuthClient,
	db postgres.Pool,
	cfg config.GatewayConfig,
	clock clock.Clock,
) MerchantTokenSource {
	return &tokenSourceImpl{
		tokens: tokens,
		oauth:  oauth,
		db:     db,
		cfg:    cfg,
		clock:  clock,
	}
}

func (s *tokenSourceImpl) AccessTokenFor(ctx context.Context, userID uuid.UUID) (string, error) {
	stored, err := s.tokens.FindByUserID(ctx, s.db, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Single-tenant fallback: one shared merchant credential
			// configured out of band.
			if s.cfg.DefaultAccessToken != "" {
				return s.cfg.DefaultAccessToken, nil
			}
			return "", ErrMerchantTokenNotFound
		}
		return "", errs.Wrap(err, "failed to resolve merchant token")
	}

	now := s.clock.Now()
	if !stored.Expired(now) {
		return stored.AccessToken, nil
	}

	return s.refresh(ctx, userID, stored, now)
}

// refresh exchanges the stored refresh token and persists the result
// with a compare-and-swap on the observed expiry. Losing the swap means
// a concurrent caller already refreshed; their token is reused instead
// of clobbering it with ours.
func (s *tokenSourceImpl) refresh(ctx context.Context, userID uuid.UUID, stored *repository.GatewayToken, now time.Time) (string, error) {
	pair, err := s.oauth.Refresh(ctx, stored.RefreshToken)
	if err != nil {
		return "", err
	}

	refreshToken := pair.RefreshToken
	if refreshToken == "" {
		refreshToken = stored.RefreshToken
	}
	newExpiresAt := now.Add(time.Duration(pair.ExpiresIn) * time.Second)

	swapped, err := s.tokens.UpdateIfExpiryMatches(ctx, s.db, userID, pair.AccessToken, refreshToken, newExpiresAt, stored.ExpiresAt)
	if err != nil {
		return "", errs.Wrap(err, "failed to persist refreshed token")
	}
	if swapped {
		return pair.AccessToken, nil
	}

	slog.Info("merchant token refreshed concurrently, reusing stored token", "user_id", userID)
	current, err := s.tokens.FindByUserID(ctx, s.db, userID)
	if err != nil {
		return "", errs.Wrap(err, "failed to re-read merchant token after lost refresh race")
	}
	return current.AccessToken, nil
}
