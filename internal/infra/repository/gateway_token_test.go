//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendapay/internal/infra"
	"agendapay/internal/infra/repository"
)

func TestGatewayTokenRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewGatewayTokenRepository()
	mock := newMockPool(t)

	token := repository.GatewayToken{
		UserID:       uuid.New(),
		AccessToken:  "at",
		RefreshToken: "rt",
		ExpiresAt:    time.Now().Add(6 * time.Hour),
	}

	mock.ExpectExec(`INSERT INTO merchant_gateway_tokens`).
		WithArgs(token.UserID, "at", "rt", token.ExpiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Upsert(ctx, mock, token))
}

func TestGatewayTokenRepository_FindByUserID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewGatewayTokenRepository()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mock := newMockPool(t)
		now := time.Now()

		mock.ExpectQuery(`SELECT user_id, access_token, refresh_token, expires_at`).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{
				"user_id", "access_token", "refresh_token", "expires_at", "created_at", "updated_at",
			}).AddRow(userID, "at", "rt", now.Add(time.Hour), now, now))

		token, err := repo.FindByUserID(ctx, mock, userID)
		require.NoError(t, err)
		assert.Equal(t, "at", token.AccessToken)
		assert.False(t, token.Expired(now))
		assert.True(t, token.Expired(now.Add(2*time.Hour)))
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMockPool(t)

		mock.ExpectQuery(`SELECT user_id, access_token`).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindByUserID(ctx, mock, userID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestGatewayTokenRepository_UpdateIfExpiryMatches(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewGatewayTokenRepository()
	userID := uuid.New()
	observed := time.Now()
	newExpiry := observed.Add(6 * time.Hour)

	t.Run("wins the swap", func(t *testing.T) {
		mock := newMockPool(t)

		mock.ExpectExec(`UPDATE merchant_gateway_tokens`).
			WithArgs(userID, "new-at", "new-rt", newExpiry, observed).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		swapped, err := repo.UpdateIfExpiryMatches(ctx, mock, userID, "new-at", "new-rt", newExpiry, observed)
		require.NoError(t, err)
		assert.True(t, swapped)
	})

	t.Run("loses to a concurrent refresh", func(t *testing.T) {
		mock := newMockPool(t)

		mock.ExpectExec(`UPDATE merchant_gateway_tokens`).
			WithArgs(userID, "new-at", "new-rt", newExpiry, observed).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		swapped, err := repo.UpdateIfExpiryMatches(ctx, mock, userID, "new-at", "new-rt", newExpiry, observed)
		require.NoError(t, err)
		assert.False(t, swapped)
	})
}
