package repository

import (
	"context"
	"time"

	"agendapay/internal/domain/user"
	"agendapay/internal/infra"
	"agendapay/internal/infra/postgres"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, db postgres.DBTX, u *user.User, passwordHash string) error {
	const q = `
INSERT INTO users (id, name, email, password_hash)
VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(ctx, q, u.ID(), u.Name(), u.Email(), passwordHash)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, db postgres.DBTX, id uuid.UUID) (*user.User, error) {
	const q = `
SELECT id, name, email, created_at
FROM users WHERE id = $1`
	row := db.QueryRow(ctx, q, id)

	var (
		uid       uuid.UUID
		name      string
		email     string
		createdAt time.Time
	)
	if err := row.Scan(&uid, &name, &email, &createdAt); err != nil {
		if postgres.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return user.Reconstruct(uid, name, email, createdAt), nil
}

// FindByEmail returns the user along with the stored password hash for
// credential checks.
func (r *UserRepository) FindByEmail(ctx context.Context, db postgres.DBTX, email string) (*user.User, string, error) {
	const q = `
SELECT id, name, email, password_hash, created_at
FROM users WHERE email = $1`
	row := db.QueryRow(ctx, q, email)

	var (
		uid       uuid.UUID
		name      string
		mail      string
		hash      string
		createdAt time.Time
	)
	if err := row.Scan(&uid, &name, &mail, &hash, &createdAt); err != nil {
		if postgres.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return user.Reconstruct(uid, name, mail, createdAt), hash, nil
}

func (r *UserRepository) List(ctx context.Context, db postgres.DBTX) ([]*user.User, error) {
	const q = `
SELECT id, name, email, created_at
FROM users ORDER BY created_at`
	rows, err := db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []*user.User
	for rows.Next() {
		var (
			uid       uuid.UUID
			name      string
			email     string
			createdAt time.Time
		)
		if err := rows.Scan(&uid, &name, &email, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, user.Reconstruct(uid, name, email, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate users", err)
	}
	return result, nil
}
