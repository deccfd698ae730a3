package repository

import (
	"context"
	"fmt"
	"time"

	"agendapay/internal/domain/work"
	"agendapay/internal/infra"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/pkg/money"

	"github.com/google/uuid"
)

type WorkRepository struct{}

func NewWorkRepository() *WorkRepository {
	return &WorkRepository{}
}

// WorkFilter narrows List results; nil fields are ignored.
type WorkFilter struct {
	UserID      *uuid.UUID
	Name        *string
	Description *string
	PriceCents  *int64
}

func (r *WorkRepository) Create(ctx context.Context, db postgres.DBTX, w *work.Work) error {
	const q = `
INSERT INTO works (id, user_id, name, description, price_cents)
VALUES ($1, $2, $3, $4, $5)`
	_, err := db.Exec(ctx, q, w.ID(), w.UserID(), w.Name(), w.Description(), w.Price().Cents())
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("owner does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create work", err)
	}
	return nil
}

func (r *WorkRepository) FindByID(ctx context.Context, db postgres.DBTX, id uuid.UUID) (*work.Work, error) {
	const q = `
SELECT id, user_id, name, description, price_cents, created_at, updated_at
FROM works WHERE id = $1`
	row := db.QueryRow(ctx, q, id)

	w, err := scanWork(row)
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, infra.WrapRepoErr("work not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find work", err)
	}
	return w, nil
}

func (r *WorkRepository) List(ctx context.Context, db postgres.DBTX, filter WorkFilter) ([]*work.Work, error) {
	q := `
SELECT id, user_id, name, description, price_cents, created_at, updated_at
FROM works WHERE 1=1`
	args := []any{}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		q += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		q += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if filter.Description != nil {
		args = append(args, "%"+*filter.Description+"%")
		q += fmt.Sprintf(" AND description ILIKE $%d", len(args))
	}
	if filter.PriceCents != nil {
		args = append(args, *filter.PriceCents)
		q += fmt.Sprintf(" AND price_cents = $%d", len(args))
	}
	q += " ORDER BY created_at"

	rows, err := db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list works", err)
	}
	defer rows.Close()

	var result []*work.Work
	for rows.Next() {
		w, err := scanWork(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan work row", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate works", err)
	}
	return result, nil
}

func (r *WorkRepository) Update(ctx context.Context, db postgres.DBTX, w *work.Work) error {
	const q = `
UPDATE works
SET name = $2, description = $3, price_cents = $4, updated_at = now()
WHERE id = $1`
	tag, err := db.Exec(ctx, q, w.ID(), w.Name(), w.Description(), w.Price().Cents())
	if err != nil {
		return infra.WrapRepoErr("failed to update work", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("work not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *WorkRepository) Delete(ctx context.Context, db postgres.DBTX, id uuid.UUID) error {
	const q = `DELETE FROM works WHERE id = $1`
	tag, err := db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete work", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("work not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWork(row rowScanner) (*work.Work, error) {
	var (
		id          uuid.UUID
		userID      uuid.UUID
		name        string
		description string
		priceCents  int64
		createdAt   time.Time
		updatedAt   time.Time
	)
	if err := row.Scan(&id, &userID, &name, &description, &priceCents, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return work.Reconstruct(id, userID, name, description, money.FromCents(priceCents), createdAt, updatedAt), nil
}
