package repository

import (
	"context"
	"time"

	"agendapay/internal/domain/payment"
	"agendapay/internal/infra"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/pkg/money"

	"github.com/google/uuid"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, db postgres.DBTX, p *payment.Payment) error {
	const q = `
INSERT INTO payments (id, user_id, appointment_id, amount_cents, status, method, transaction_id, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := db.Exec(ctx, q,
		p.ID(), p.UserID(), p.AppointmentID(), p.Amount().Cents(),
		p.Status().String(), p.Method(), p.TransactionID(), p.ExpiresAt(),
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return infra.WrapRepoErr("transaction id already recorded", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByTransactionID(ctx context.Context, db postgres.DBTX, transactionID string) (*payment.Payment, error) {
	const q = `
SELECT id, user_id, appointment_id, amount_cents, status, method, transaction_id, expires_at, created_at
FROM payments WHERE transaction_id = $1`
	row := db.QueryRow(ctx, q, transactionID)

	var (
		id            uuid.UUID
		userID        uuid.UUID
		appointmentID uuid.UUID
		amountCents   int64
		status        string
		method        string
		txID          string
		expiresAt     time.Time
		createdAt     time.Time
	)
	if err := row.Scan(&id, &userID, &appointmentID, &amountCents, &status, &method, &txID, &expiresAt, &createdAt); err != nil {
		if postgres.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}
	return payment.Reconstruct(
		id, userID, appointmentID, money.FromCents(amountCents),
		payment.Status(status), method, txID, expiresAt, createdAt,
	), nil
}

// HasPendingForAppointment guards payment-intent creation: an
// appointment with an open PENDING payment must not get a second
// gateway intent from a client retry. The caller supplies now so every
// expiry decision flows through the same injected clock.
func (r *PaymentRepository) HasPendingForAppointment(ctx context.Context, db postgres.DBTX, appointmentID uuid.UUID, now time.Time) (bool, error) {
	const q = `
SELECT EXISTS (
    SELECT 1 FROM payments
    WHERE appointment_id = $1 AND status = 'PENDING' AND expires_at > $2
)`
	var exists bool
	if err := db.QueryRow(ctx, q, appointmentID, now).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check pending payment", err)
	}
	return exists, nil
}

func (r *PaymentRepository) UpdateSettlement(ctx context.Context, db postgres.DBTX, transactionID string, amount money.Money, status payment.Status) error {
	const q = `
UPDATE payments
SET amount_cents = $2, status = $3
WHERE transaction_id = $1`
	tag, err := db.Exec(ctx, q, transactionID, amount.Cents(), status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update payment settlement", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

// SumConfirmedCents returns the cumulative confirmed amount for an
// appointment. Reconciliation always derives the paid amount from this
// sum so replayed webhooks cannot double-count.
func (r *PaymentRepository) SumConfirmedCents(ctx context.Context, db postgres.DBTX, appointmentID uuid.UUID) (int64, error) {
	const q = `
SELECT COALESCE(SUM(amount_cents), 0)
FROM payments
WHERE appointment_id = $1 AND status = 'CONFIRMED'`
	var total int64
	if err := db.QueryRow(ctx, q, appointmentID).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to sum confirmed payments", err)
	}
	return total, nil
}

func (r *PaymentRepository) DeleteByTransactionID(ctx context.Context, db postgres.DBTX, transactionID string) error {
	const q = `DELETE FROM payments WHERE transaction_id = $1`
	tag, err := db.Exec(ctx, q, transactionID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
