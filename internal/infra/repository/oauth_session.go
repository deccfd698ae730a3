package repository

import (
	"context"
	"time"

	"agendapay/internal/infra"
	"agendapay/internal/infra/postgres"

	"github.com/google/uuid"
)

// OAuthSession is the transient PKCE state persisted between the
// authorization redirect and the provider callback. Consumed exactly
// once.
type OAuthSession struct {
	State        string
	UserID       uuid.UUID
	CodeVerifier string
	CreatedAt    time.Time
}

type OAuthSessionRepository struct{}

func NewOAuthSessionRepository() *OAuthSessionRepository {
	return &OAuthSessionRepository{}
}

func (r *OAuthSessionRepository) Create(ctx context.Context, db postgres.DBTX, s OAuthSession) error {
	const q = `
INSERT INTO oauth_sessions (state, user_id, code_verifier)
VALUES ($1, $2, $3)`
	_, err := db.Exec(ctx, q, s.State, s.UserID, s.CodeVerifier)
	if err != nil {
		return infra.WrapRepoErr("failed to create oauth session", err)
	}
	return nil
}

func (r *OAuthSessionRepository) FindByState(ctx context.Context, db postgres.DBTX, state string) (*OAuthSession, error) {
	const q = `
SELECT state, user_id, code_verifier, created_at
FROM oauth_sessions WHERE state = $1`
	row := db.QueryRow(ctx, q, state)

	var s OAuthSession
	if err := row.Scan(&s.State, &s.UserID, &s.CodeVerifier, &s.CreatedAt); err != nil {
		if postgres.IsNoRows(err) {
			return nil, infra.WrapRepoErr("oauth session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find oauth session", err)
	}
	return &s, nil
}

func (r *OAuthSessionRepository) DeleteByState(ctx context.Context, db postgres.DBTX, state string) error {
	const q = `DELETE FROM oauth_sessions WHERE state = $1`
	if _, err := db.Exec(ctx, q, state); err != nil {
		return infra.WrapRepoErr("failed to delete oauth session", err)
	}
	return nil
}
