//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"agendapay/internal/domain/appointment"
	"agendapay/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingAppointment(t *testing.T) *appointment.Appointment {
	t.Helper()
	workID := uuid.New()
	a, err := appointment.NewAppointment(uuid.New(), &workID, "haircut", time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return a
}

func TestNewAppointment(t *testing.T) {
	a := newPendingAppointment(t)

	assert.Equal(t, appointment.StatusPending, a.Status())
	assert.Equal(t, appointment.PaymentPending, a.PaymentStatus())
	assert.True(t, a.PaidAmount().IsZero())

	_, err := appointment.NewAppointment(uuid.New(), nil, "haircut", time.Time{})
	assert.ErrorIs(t, err, appointment.ErrEmptyDate)

	_, err = appointment.NewAppointment(uuid.New(), nil, "", time.Now())
	assert.ErrorIs(t, err, appointment.ErrEmptyTitle)
}

func TestApplyPaymentDelta(t *testing.T) {
	price := money.FromCents(10000)

	t.Run("negative delta rejected without state change", func(t *testing.T) {
		a := newPendingAppointment(t)
		err := a.ApplyPaymentDelta(money.FromCents(-1), price)
		assert.ErrorIs(t, err, appointment.ErrNegativeDelta)
		assert.True(t, a.PaidAmount().IsZero())
		assert.Equal(t, appointment.PaymentPending, a.PaymentStatus())
	})

	t.Run("partial payment stays pending", func(t *testing.T) {
		a := newPendingAppointment(t)
		require.NoError(t, a.ApplyPaymentDelta(money.FromCents(4000), price))
		assert.Equal(t, int64(4000), a.PaidAmount().Cents())
		assert.Equal(t, appointment.PaymentPending, a.PaymentStatus())
		assert.Equal(t, appointment.StatusPending, a.Status())
	})

	t.Run("accumulation clamps at price and confirms", func(t *testing.T) {
		a := newPendingAppointment(t)
		require.NoError(t, a.ApplyPaymentDelta(money.FromCents(4000), price))
		require.NoError(t, a.ApplyPaymentDelta(money.FromCents(6100), price))
		assert.Equal(t, int64(10000), a.PaidAmount().Cents())
		assert.Equal(t, appointment.PaymentConfirmed, a.PaymentStatus())
		assert.Equal(t, appointment.StatusCompleted, a.Status())
	})
}

func TestSettle(t *testing.T) {
	price := money.FromCents(10000)

	t.Run("order of partial settlements does not matter", func(t *testing.T) {
		forward := newPendingAppointment(t)
		forward.Settle(money.FromCents(4000), price)
		forward.Settle(money.FromCents(10100), price)

		reverse := newPendingAppointment(t)
		reverse.Settle(money.FromCents(6100), price)
		reverse.Settle(money.FromCents(10100), price)

		assert.Equal(t, forward.PaidAmount().Cents(), reverse.PaidAmount().Cents())
		assert.Equal(t, int64(10000), forward.PaidAmount().Cents())
		assert.Equal(t, appointment.PaymentConfirmed, forward.PaymentStatus())
		assert.Equal(t, appointment.PaymentConfirmed, reverse.PaymentStatus())
	})

	t.Run("settle is idempotent", func(t *testing.T) {
		a := newPendingAppointment(t)
		a.Settle(money.FromCents(10100), price)
		paid := a.PaidAmount().Cents()
		a.Settle(money.FromCents(10100), price)
		assert.Equal(t, paid, a.PaidAmount().Cents())
		assert.Equal(t, appointment.StatusCompleted, a.Status())
	})

	t.Run("settlement never completes a cancelled booking", func(t *testing.T) {
		a := newPendingAppointment(t)
		a.UpdateStatus(appointment.StatusCancelled)
		a.Settle(money.FromCents(10000), price)
		assert.Equal(t, appointment.StatusCancelled, a.Status())
		assert.Equal(t, appointment.PaymentConfirmed, a.PaymentStatus())
	})
}

func TestReschedule(t *testing.T) {
	price := money.FromCents(5000)

	t.Run("reset status regardless of payment state", func(t *testing.T) {
		a := newPendingAppointment(t)
		require.NoError(t, a.ApplyPaymentDelta(money.FromCents(5000), price))
		require.Equal(t, appointment.StatusCompleted, a.Status())

		newDate := time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)
		require.NoError(t, a.Reschedule(newDate))
		assert.Equal(t, appointment.StatusPending, a.Status())
		assert.Equal(t, newDate, a.Date())
		// payment state untouched
		assert.Equal(t, appointment.PaymentConfirmed, a.PaymentStatus())
	})

	t.Run("cancelled booking cannot be rescheduled", func(t *testing.T) {
		a := newPendingAppointment(t)
		a.UpdateStatus(appointment.StatusCancelled)
		err := a.Reschedule(time.Now())
		assert.ErrorIs(t, err, appointment.ErrAlreadyCancelled)
	})

	t.Run("empty date rejected", func(t *testing.T) {
		a := newPendingAppointment(t)
		assert.ErrorIs(t, a.Reschedule(time.Time{}), appointment.ErrEmptyDate)
	})
}
