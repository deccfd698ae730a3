//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendapay/internal/domain/appointment"
	"agendapay/internal/infra"
	"agendapay/internal/infra/repository"
	"agendapay/internal/pkg/money"
)

func buildAppointment(t *testing.T) *appointment.Appointment {
	t.Helper()
	workID := uuid.New()
	a, err := appointment.NewAppointment(uuid.New(), &workID, "haircut", time.Now().Add(48*time.Hour))
	require.NoError(t, err)
	return a
}

func appointmentRow(a *appointment.Appointment) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "work_id", "title", "date",
		"status", "payment_status", "paid_amount_cents", "created_at", "updated_at",
	}).AddRow(
		a.ID(), a.UserID(), a.WorkID(), a.Title(), a.Date(),
		a.Status().String(), a.PaymentStatus().String(), a.PaidAmount().Cents(),
		time.Now(), time.Now(),
	)
}

func TestAppointmentRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewAppointmentRepository()

	t.Run("success", func(t *testing.T) {
		mock := newMockPool(t)
		a := buildAppointment(t)

		mock.ExpectExec(`INSERT INTO appointments`).
			WithArgs(a.ID(), a.UserID(), a.WorkID(), a.Title(), a.Date(), "PENDING", "PENDING", int64(0)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.Create(ctx, mock, a))
	})

	t.Run("missing work", func(t *testing.T) {
		mock := newMockPool(t)
		a := buildAppointment(t)

		mock.ExpectExec(`INSERT INTO appointments`).
			WithArgs(a.ID(), a.UserID(), a.WorkID(), a.Title(), a.Date(), "PENDING", "PENDING", int64(0)).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		err := repo.Create(ctx, mock, a)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestAppointmentRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewAppointmentRepository()

	t.Run("success", func(t *testing.T) {
		mock := newMockPool(t)
		a := buildAppointment(t)

		mock.ExpectQuery(`SELECT id, user_id, work_id, title, date, status, payment_status, paid_amount_cents, created_at, updated_at`).
			WithArgs(a.ID()).
			WillReturnRows(appointmentRow(a))

		found, err := repo.FindByID(ctx, mock, a.ID())
		require.NoError(t, err)
		assert.Equal(t, a.ID(), found.ID())
		assert.Equal(t, appointment.StatusPending, found.Status())
		assert.Equal(t, money.Zero(), found.PaidAmount())
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMockPool(t)
		id := uuid.New()

		mock.ExpectQuery(`FROM appointments WHERE id`).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, mock, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAppointmentRepository_ExistsActiveBetween(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewAppointmentRepository()
	from := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	t.Run("slot taken", func(t *testing.T) {
		mock := newMockPool(t)

		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(from, to, uuid.Nil).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		taken, err := repo.ExistsActiveBetween(ctx, mock, from, to, uuid.Nil)
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("slot free", func(t *testing.T) {
		mock := newMockPool(t)

		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(from, to, uuid.Nil).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		taken, err := repo.ExistsActiveBetween(ctx, mock, from, to, uuid.Nil)
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("excluded id is filtered out", func(t *testing.T) {
		mock := newMockPool(t)
		excludeID := uuid.New()

		mock.ExpectQuery(`AND id <> \$3`).
			WithArgs(from, to, excludeID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		taken, err := repo.ExistsActiveBetween(ctx, mock, from, to, excludeID)
		require.NoError(t, err)
		assert.False(t, taken)
	})
}

func TestAppointmentRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewAppointmentRepository()

	t.Run("filters by user and status", func(t *testing.T) {
		mock := newMockPool(t)
		a := buildAppointment(t)
		b := buildAppointment(t)
		userID := uuid.New()
		status := appointment.StatusPending

		rows := appointmentRow(a)
		rows.AddRow(
			b.ID(), b.UserID(), b.WorkID(), b.Title(), b.Date(),
			b.Status().String(), b.PaymentStatus().String(), b.PaidAmount().Cents(),
			time.Now(), time.Now(),
		)
		mock.ExpectQuery(`FROM appointments WHERE 1=1 AND user_id = \$1 AND status = \$2 ORDER BY date`).
			WithArgs(userID, "PENDING").
			WillReturnRows(rows)

		result, err := repo.List(ctx, mock, repository.AppointmentFilter{UserID: &userID, Status: &status})
		require.NoError(t, err)

		var gotIDs []uuid.UUID
		for _, appt := range result {
			gotIDs = append(gotIDs, appt.ID())
		}
		assert.Empty(t, cmp.Diff([]uuid.UUID{a.ID(), b.ID()}, gotIDs))
	})

	t.Run("day filter expands to whole calendar day", func(t *testing.T) {
		mock := newMockPool(t)
		day := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)
		start := day.Truncate(24 * time.Hour)

		mock.ExpectQuery(`AND date >= \$1 AND date < \$2 ORDER BY date`).
			WithArgs(start, start.Add(24*time.Hour)).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "user_id", "work_id", "title", "date",
				"status", "payment_status", "paid_amount_cents", "created_at", "updated_at",
			}))

		result, err := repo.List(ctx, mock, repository.AppointmentFilter{Day: &day})
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestAppointmentRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewAppointmentRepository()

	t.Run("success", func(t *testing.T) {
		mock := newMockPool(t)
		a := buildAppointment(t)

		mock.ExpectExec(`UPDATE appointments`).
			WithArgs(a.ID(), a.Date(), "PENDING", "PENDING", int64(0)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.Update(ctx, mock, a))
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMockPool(t)
		a := buildAppointment(t)

		mock.ExpectExec(`UPDATE appointments`).
			WithArgs(a.ID(), a.Date(), "PENDING", "PENDING", int64(0)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Update(ctx, mock, a)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAppointmentRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewAppointmentRepository()

	t.Run("success", func(t *testing.T) {
		mock := newMockPool(t)
		id := uuid.New()

		mock.ExpectExec(`DELETE FROM appointments`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.Delete(ctx, mock, id))
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMockPool(t)
		id := uuid.New()

		mock.ExpectExec(`DELETE FROM appointments`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.Delete(ctx, mock, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
