package commands

import (
	"context"

	"agendapay/internal/domain/user"
	"agendapay/internal/infra"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/pkg/errs"
	"agendapay/internal/pkg/jwt"
	"agendapay/internal/pkg/password"
)

var (
	ErrEmailAlreadyUsed     = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("invalid email or password")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *user.User
}

type AuthCommands interface {
	Register(ctx context.Context, input RegisterInput) (*user.User, error)
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	users UserRepository
	jwt   *jwt.Service
	db    postgres.Pool
}

func NewAuthUseCase(users UserRepository, jwtService *jwt.Service, db postgres.Pool) AuthCommands {
	return &authUseCaseImpl{
		users: users,
		jwt:   jwtService,
		db:    db,
	}
}

func (u *authUseCaseImpl) Register(ctx context.Context, input RegisterInput) (*user.User, error) {
	entity, err := user.NewUser(input.Name, input.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	if err := u.users.Create(ctx, u.db, entity, hash); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, errs.Wrap(err, "failed to create user")
	}
	return entity, nil
}

func (u *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	entity, hash, err := u.users.FindByEmail(ctx, u.db, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Indistinguishable from a bad password on purpose.
			return nil, ErrAuthenticationFailed
		}
		return nil, errs.Wrap(err, "failed to find user")
	}

	if err := password.ComparePassword(hash, rawPassword); err != nil {
		return nil, ErrAuthenticationFailed
	}

	token, err := u.jwt.GenerateToken(entity.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{Token: token, User: entity}, nil
}
