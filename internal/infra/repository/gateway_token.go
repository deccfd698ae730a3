package repository

import (
	"context"
	"time"

	"agendapay/internal/infra"
	"agendapay/internal/infra/postgres"

	"github.com/google/uuid"
)

// GatewayToken is a merchant's OAuth credential pair for the payment
// gateway, one row per user.
type GatewayToken struct {
	UserID       uuid.UUID
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (t *GatewayToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

type GatewayTokenRepository struct{}

func NewGatewayTokenRepository() *GatewayTokenRepository {
	return &GatewayTokenRepository{}
}

func (r *GatewayTokenRepository) Upsert(ctx context.Context, db postgres.DBTX, t GatewayToken) error {
	const q = `
INSERT INTO merchant_gateway_tokens (user_id, access_token, refresh_token, expires_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE
SET access_token = EXCLUDED.access_token,
    refresh_token = EXCLUDED.refresh_token,
    expires_at = EXCLUDED.expires_at,
    updated_at = now()`
	_, err := db.Exec(ctx, q, t.UserID, t.AccessToken, t.RefreshToken, t.ExpiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert gateway token", err)
	}
	return nil
}

func (r *GatewayTokenRepository) FindByUserID(ctx context.Context, db postgres.DBTX, userID uuid.UUID) (*GatewayToken, error) {
	const q = `
SELECT user_id, access_token, refresh_token, expires_at, created_at, updated_at
FROM merchant_gateway_tokens WHERE user_id = $1`
	row := db.QueryRow(ctx, q, userID)

	var t GatewayToken
	if err := row.Scan(&t.UserID, &t.AccessToken, &t.RefreshToken, &t.ExpiresAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if postgres.IsNoRows(err) {
			return nil, infra.WrapRepoErr("gateway token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find gateway token", err)
	}
	return &t, nil
}

// UpdateIfExpiryMatches persists a refreshed token pair only when the
// stored row still carries the expiry the caller observed. A false
// return means a concurrent refresh won; the caller should re-read and
// use that token instead of clobbering it.
func (r *GatewayTokenRepository) UpdateIfExpiryMatches(ctx context.Context, db postgres.DBTX, userID uuid.UUID, accessToken, refreshToken string, newExpiresAt, observedExpiresAt time.Time) (bool, error) {
	const q = `
UPDATE merchant_gateway_tokens
SET access_token = $2, refresh_token = $3, expires_at = $4, updated_at = now()
WHERE user_id = $1 AND expires_at = $5`
	tag, err := db.Exec(ctx, q, userID, accessToken, refreshToken, newExpiresAt, observedExpiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update gateway token", err)
	}
	return tag.RowsAffected() == 1, nil
}
