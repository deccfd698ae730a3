package repository

import (
	"context"
	"fmt"
	"time"

	"agendapay/internal/domain/appointment"
	"agendapay/internal/infra"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/pkg/money"

	"github.com/google/uuid"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

// AppointmentFilter narrows List results; nil fields are ignored. Day
// matches the whole calendar day of the given instant.
type AppointmentFilter struct {
	UserID *uuid.UUID
	Day    *time.Time
	Status *appointment.Status
}

func (r *AppointmentRepository) Create(ctx context.Context, db postgres.DBTX, a *appointment.Appointment) error {
	const q = `
INSERT INTO appointments (id, user_id, work_id, title, date, status, payment_status, paid_amount_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := db.Exec(ctx, q,
		a.ID(), a.UserID(), a.WorkID(), a.Title(), a.Date(),
		a.Status().String(), a.PaymentStatus().String(), a.PaidAmount().Cents(),
	)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("referenced user or work does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, db postgres.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	const q = `
SELECT id, user_id, work_id, title, date, status, payment_status, paid_amount_cents, created_at, updated_at
FROM appointments WHERE id = $1`
	row := db.QueryRow(ctx, q, id)

	a, err := scanAppointment(row)
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}
	return a, nil
}

// ExistsActiveBetween reports whether any non-cancelled appointment
// other than excludeID falls inside the [from, to] window. With a zero
// overlap window both bounds are the requested timestamp, making this
// an exact-collision check. Pass uuid.Nil when nothing should be
// excluded; a reschedule passes its own id so the appointment cannot
// collide with itself.
func (r *AppointmentRepository) ExistsActiveBetween(ctx context.Context, db postgres.DBTX, from, to time.Time, excludeID uuid.UUID) (bool, error) {
	const q = `
SELECT EXISTS (
    SELECT 1 FROM appointments
    WHERE date >= $1 AND date <= $2 AND status <> 'CANCELLED' AND id <> $3
)`
	var exists bool
	if err := db.QueryRow(ctx, q, from, to, excludeID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check appointment collision", err)
	}
	return exists, nil
}

func (r *AppointmentRepository) List(ctx context.Context, db postgres.DBTX, filter AppointmentFilter) ([]*appointment.Appointment, error) {
	q := `
SELECT id, user_id, work_id, title, date, status, payment_status, paid_amount_cents, created_at, updated_at
FROM appointments WHERE 1=1`
	args := []any{}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		q += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.Day != nil {
		start := filter.Day.Truncate(24 * time.Hour)
		args = append(args, start)
		q += fmt.Sprintf(" AND date >= $%d", len(args))
		args = append(args, start.Add(24*time.Hour))
		q += fmt.Sprintf(" AND date < $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, filter.Status.String())
		q += fmt.Sprintf(" AND status = $%d", len(args))
	}
	q += " ORDER BY date"

	rows, err := db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var result []*appointment.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", err)
	}
	return result, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, db postgres.DBTX, a *appointment.Appointment) error {
	const q = `
UPDATE appointments
SET date = $2, status = $3, payment_status = $4, paid_amount_cents = $5, updated_at = now()
WHERE id = $1`
	tag, err := db.Exec(ctx, q,
		a.ID(), a.Date(), a.Status().String(), a.PaymentStatus().String(), a.PaidAmount().Cents(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, db postgres.DBTX, id uuid.UUID) error {
	const q = `DELETE FROM appointments WHERE id = $1`
	tag, err := db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanAppointment(row rowScanner) (*appointment.Appointment, error) {
	var (
		id        uuid.UUID
		userID    uuid.UUID
		workID    *uuid.UUID
		title     string
		date      time.Time
		status    string
		payStatus string
		paidCents int64
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &userID, &workID, &title, &date, &status, &payStatus, &paidCents, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return appointment.Reconstruct(
		id, userID, workID, title, date,
		appointment.Status(status), appointment.PaymentStatus(payStatus),
		money.FromCents(paidCents), createdAt, updatedAt,
	), nil
}
