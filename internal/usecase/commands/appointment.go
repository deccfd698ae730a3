package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"agendapay/internal/domain/appointment"
	"agendapay/internal/domain/payment"
	"agendapay/internal/infra"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/pkg/clock"
	"agendapay/internal/pkg/config"
	"agendapay/internal/pkg/errs"
	"agendapay/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrAppointmentConflict  = errs.New("appointment slot already taken")
	ErrAppointmentCancelled = errs.New("appointment is cancelled")
	ErrDomainValidation     = errs.New("domain validation error")
)

type CreateAppointmentInput struct {
	UserID        uuid.UUID
	WorkID        uuid.UUID
	Title         string
	Date          time.Time
	PaymentMethod string
}

type CreateAppointmentResult struct {
	Appointment *appointment.Appointment
	Payment     *payment.Payment
}

type AppointmentCommands interface {
	// CreateAppointment books the slot and kicks off the gateway
	// payment. A failed payment rolls the booking back so no unpayable
	// appointment survives.
	CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*CreateAppointmentResult, error)
	Reschedule(ctx context.Context, id uuid.UUID, date time.Time) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*appointment.Appointment, error)
	ApplyPaymentDelta(ctx context.Context, id uuid.UUID, delta money.Money) (*appointment.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentUseCaseImpl struct {
	appointments AppointmentRepository
	works        WorkRepository
	payments     PaymentCommands
	db           postgres.Pool
	cfg          config.AppointmentConfig
	clock        clock.Clock
}

func NewAppointmentUseCase(
	appointments AppointmentRepository,
	works WorkRepository,
	payments PaymentCommands,
	db postgres.Pool,
	cfg config.AppointmentConfig,
	clock clock.Clock,
) AppointmentCommands {
	return &appointmentUseCaseImpl{
		appointments: appointments,
		works:        works,
		payments:     payments,
		db:           db,
		cfg:          cfg,
		clock:        clock,
	}
}

func (u *appointmentUseCaseImpl) CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*CreateAppointmentResult, error) {
	if _, err := u.works.FindByID(ctx, u.db, input.WorkID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, errs.Wrap(err, "failed to resolve work")
	}

	if err := u.checkCollision(ctx, input.Date, uuid.Nil); err != nil {
		return nil, err
	}

	workID := input.WorkID
	appt, err := appointment.NewAppointment(input.UserID, &workID, input.Title, input.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.appointments.Create(ctx, u.db, appt); err != nil {
		return nil, errs.Wrap(err, "failed to persist appointment")
	}

	record, err := u.payments.CreatePaymentIntent(ctx, CreatePaymentInput{
		UserID:        input.UserID,
		AppointmentID: appt.ID(),
		Method:        input.PaymentMethod,
	})
	if err != nil {
		// No unpayable bookings: remove the appointment we just made.
		if delErr := u.appointments.Delete(ctx, u.db, appt.ID()); delErr != nil {
			slog.Error("failed to roll back appointment after payment failure",
				"appointment_id", appt.ID(),
				"error", delErr)
		}
		return nil, err
	}

	return &CreateAppointmentResult{Appointment: appt, Payment: record}, nil
}

func (u *appointmentUseCaseImpl) Reschedule(ctx context.Context, id uuid.UUID, date time.Time) (*appointment.Appointment, error) {
	appt, err := u.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !date.Equal(appt.Date()) {
		if err := u.checkCollision(ctx, date, appt.ID()); err != nil {
			return nil, err
		}
	}

	if err := appt.Reschedule(date); err != nil {
		if errors.Is(err, appointment.ErrAlreadyCancelled) {
			return nil, ErrAppointmentCancelled
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.appointments.Update(ctx, u.db, appt); err != nil {
		return nil, errs.Wrap(err, "failed to update appointment")
	}
	return appt, nil
}

func (u *appointmentUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*appointment.Appointment, error) {
	parsed, err := appointment.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	appt, err := u.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	appt.UpdateStatus(parsed)
	if err := u.appointments.Update(ctx, u.db, appt); err != nil {
		return nil, errs.Wrap(err, "failed to update appointment")
	}
	return appt, nil
}

func (u *appointmentUseCaseImpl) ApplyPaymentDelta(ctx context.Context, id uuid.UUID, delta money.Money) (*appointment.Appointment, error) {
	appt, err := u.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	price := money.Zero()
	if appt.WorkID() != nil {
		workEntity, err := u.works.FindByID(ctx, u.db, *appt.WorkID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrWorkNotFound
			}
			return nil, errs.Wrap(err, "failed to resolve work")
		}
		price = workEntity.Price()
	}

	if err := appt.ApplyPaymentDelta(delta, price); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.appointments.Update(ctx, u.db, appt); err != nil {
		return nil, errs.Wrap(err, "failed to update appointment")
	}
	return appt, nil
}

func (u *appointmentUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.appointments.Delete(ctx, u.db, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAppointmentNotFound
		}
		return errs.Wrap(err, "failed to delete appointment")
	}
	return nil
}

func (u *appointmentUseCaseImpl) findByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	appt, err := u.appointments.FindByID(ctx, u.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Wrap(err, "failed to resolve appointment")
	}
	return appt, nil
}

// checkCollision widens the requested slot by the configured overlap
// window on both sides. Zero window degenerates to an exact-timestamp
// match against non-cancelled appointments. excludeID keeps a
// reschedule from colliding with the appointment's own current slot.
func (u *appointmentUseCaseImpl) checkCollision(ctx context.Context, date time.Time, excludeID uuid.UUID) error {
	from := date.Add(-u.cfg.OverlapWindow)
	to := date.Add(u.cfg.OverlapWindow)
	taken, err := u.appointments.ExistsActiveBetween(ctx, u.db, from, to, excludeID)
	if err != nil {
		return errs.Wrap(err, "failed to check slot availability")
	}
	if taken {
		return ErrAppointmentConflict
	}
	return nil
}
