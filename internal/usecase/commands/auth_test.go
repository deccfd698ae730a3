//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"agendapay/internal/domain/user"
	"agendapay/internal/infra"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/pkg/jwt"
	"agendapay/internal/pkg/password"
	"agendapay/internal/usecase/commands"
	commandsmock "agendapay/tests/mock/commands"
)

func newAuthFixture(t *testing.T) (commands.AuthCommands, *commandsmock.MockUserRepository, *jwt.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)

	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	users := commandsmock.NewMockUserRepository(ctrl)
	jwtService := jwt.NewService("test-secret", time.Hour)
	return commands.NewAuthUseCase(users, jwtService, pool), users, jwtService
}

func TestRegister_HashesPasswordBeforePersisting(t *testing.T) {
	uc, users, _ := newAuthFixture(t)

	users.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ postgres.DBTX, entity *user.User, hash string) error {
			assert.Equal(t, "alice@example.com", entity.Email())
			assert.NotEqual(t, "hunter2-long", hash)
			assert.NoError(t, password.ComparePassword(hash, "hunter2-long"))
			return nil
		})

	entity, err := uc.Register(context.Background(), commands.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "hunter2-long",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", entity.Name())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, users, _ := newAuthFixture(t)

	users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey))

	_, err := uc.Register(context.Background(), commands.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "hunter2-long",
	})

	assert.ErrorIs(t, err, commands.ErrEmailAlreadyUsed)
}

func TestLogin_ReturnsSignedToken(t *testing.T) {
	uc, users, jwtService := newAuthFixture(t)
	userID := uuid.New()
	hash, err := password.HashPassword("hunter2-long")
	require.NoError(t, err)

	users.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), "alice@example.com").
		Return(user.Reconstruct(userID, "alice", "alice@example.com", time.Now()), hash, nil)

	result, err := uc.Login(context.Background(), "alice@example.com", "hunter2-long")

	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, users, _ := newAuthFixture(t)
	hash, err := password.HashPassword("hunter2-long")
	require.NoError(t, err)

	users.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), "alice@example.com").
		Return(user.Reconstruct(uuid.New(), "alice", "alice@example.com", time.Now()), hash, nil)

	_, err = uc.Login(context.Background(), "alice@example.com", "wrong-password")

	assert.ErrorIs(t, err, commands.ErrAuthenticationFailed)
}

func TestLogin_UnknownEmailLooksLikeBadPassword(t *testing.T) {
	uc, users, _ := newAuthFixture(t)

	users.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), "ghost@example.com").
		Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

	_, err := uc.Login(context.Background(), "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, commands.ErrAuthenticationFailed)
}
