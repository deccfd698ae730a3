package commands

import (
	"context"
	"time"

	"agendapay/internal/infra"
	"agendapay/internal/infra/gateway"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/infra/repository"
	"agendapay/internal/pkg/clock"
	"agendapay/internal/pkg/config"
	"agendapay/internal/pkg/errs"
	"agendapay/internal/pkg/ids"
	"agendapay/internal/pkg/pkce"

	"github.com/google/uuid"
)

var (
	ErrOAuthSessionNotFound = errs.New("oauth session not found")
	ErrUserNotFound         = errs.New("user not found")
)

type OAuthCommands interface {
	// BeginAuthorization starts the PKCE flow for a merchant and returns
	// the provider authorization URL to redirect them to.
	BeginAuthorization(ctx context.Context, userID uuid.UUID) (string, error)
	// CompleteAuthorization consumes the provider callback. The session
	// is single-use: an unknown or already-consumed state is rejected.
	CompleteAuthorization(ctx context.Context, code, state string) error
	// RefreshMerchantToken forces a refresh of the merchant's stored
	// token pair, persisting only on success.
	RefreshMerchantToken(ctx context.Context, userID uuid.UUID) error
}

type oauthUseCaseImpl struct {
	sessions OAuthSessionRepository
	tokens   GatewayTokenRepository
	users    UserRepository
	oauth    gateway.OAuthClient
	db       postgres.Pool
	cfg      config.GatewayConfig
	clock    clock.Clock
}

func NewOAuthUseCase(
	sessions OAuthSessionRepository,
	tokens GatewayTokenRepository,
	users UserRepository,
	oauth gateway.OAuthClient,
	db postgres.Pool,
	cfg config.GatewayConfig,
	clock clock.Clock,
) OAuthCommands {
	return &oauthUseCaseImpl{
		sessions: sessions,
		tokens:   tokens,
		users:    users,
		oauth:    oauth,
		db:       db,
		cfg:      cfg,
		clock:    clock,
	}
}

func (u *oauthUseCaseImpl) BeginAuthorization(ctx context.Context, userID uuid.UUID) (string, error) {
	if !u.cfg.OAuthConfigured() {
		return "", errs.ErrGatewayNotConfigured
	}

	if _, err := u.users.FindByID(ctx, u.db, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrUserNotFound
		}
		return "", errs.Wrap(err, "failed to resolve user")
	}

	verifier, err := pkce.NewVerifier()
	if err != nil {
		return "", errs.Wrap(err, "failed to generate pkce verifier")
	}
	state := ids.New()

	session := repository.OAuthSession{
		State:        state,
		UserID:       userID,
		CodeVerifier: verifier,
	}
	if err := u.sessions.Create(ctx, u.db, session); err != nil {
		return "", errs.Wrap(err, "failed to persist oauth session")
	}

	return u.oauth.AuthorizationURL(state, pkce.Challenge(verifier)), nil
}

func (u *oauthUseCaseImpl) CompleteAuthorization(ctx context.Context, code, state string) error {
	if !u.cfg.OAuthConfigured() {
		return errs.ErrGatewayNotConfigured
	}

	session, err := u.sessions.FindByState(ctx, u.db, state)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOAuthSessionNotFound
		}
		return errs.Wrap(err, "failed to look up oauth session")
	}

	pair, err := u.oauth.ExchangeCode(ctx, code, session.CodeVerifier)
	if err != nil {
		return err
	}

	expiresAt := u.clock.Now().Add(time.Duration(pair.ExpiresIn) * time.Second)
	_, err = postgres.RunInTx(ctx, u.db, func(tx postgres.DBTX) (struct{}, error) {
		token := repository.GatewayToken{
			UserID:       session.UserID,
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			ExpiresAt:    expiresAt,
		}
		if err := u.tokens.Upsert(ctx, tx, token); err != nil {
			return struct{}{}, errs.Wrap(err, "failed to store merchant token")
		}
		if err := u.sessions.DeleteByState(ctx, tx, state); err != nil {
			return struct{}{}, errs.Wrap(err, "failed to consume oauth session")
		}
		return struct{}{}, nil
	})
	return err
}

func (u *oauthUseCaseImpl) RefreshMerchantToken(ctx context.Context, userID uuid.UUID) error {
	if !u.cfg.OAuthConfigured() {
		return errs.ErrGatewayNotConfigured
	}

	stored, err := u.tokens.FindByUserID(ctx, u.db, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMerchantTokenNotFound
		}
		return errs.Wrap(err, "failed to resolve merchant token")
	}

	pair, err := u.oauth.Refresh(ctx, stored.RefreshToken)
	if err != nil {
		return err
	}

	refreshToken := pair.RefreshToken
	if refreshToken == "" {
		refreshToken = stored.RefreshToken
	}
	token := repository.GatewayToken{
		UserID:       userID,
		AccessToken:  pair.AccessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    u.clock.Now().Add(time.Duration(pair.ExpiresIn) * time.Second),
	}
	if err := u.tokens.Upsert(ctx, u.db, token); err != nil {
		return errs.Wrap(err, "failed to store refreshed token")
	}
	return nil
}
