package commands

import (
	"context"
	"log/slog"

	"agendapay/internal/domain/payment"
	"agendapay/internal/infra"
	"agendapay/internal/infra/gateway"
	"agendapay/internal/infra/metrics"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/pkg/clock"
	"agendapay/internal/pkg/config"
	"agendapay/internal/pkg/errs"
	"agendapay/internal/pkg/ids"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound   = errs.New("appointment not found")
	ErrAppointmentHasNoWork  = errs.New("appointment has no work to charge for")
	ErrPaymentAlreadyPending = errs.New("appointment already has a pending payment")
	ErrDuplicateTransaction  = errs.New("duplicate gateway transaction id")
	ErrWorkNotFound          = errs.New("work not found")
)

type CreatePaymentInput struct {
	UserID        uuid.UUID
	AppointmentID uuid.UUID
	Method        string
}

type PaymentCommands interface {
	// CreatePaymentIntent creates a payment at the gateway for the
	// appointment's work price and persists the PENDING local record
	// keyed by the returned transaction id.
	CreatePaymentIntent(ctx context.Context, input CreatePaymentInput) (*payment.Payment, error)
}

type paymentUseCaseImpl struct {
	payments     PaymentRepository
	appointments AppointmentRepository
	works        WorkRepository
	users        UserRepository
	provider     gateway.Provider
	tokenSource  MerchantTokenSource
	db           postgres.Pool
	cfg          config.GatewayConfig
	clock        clock.Clock
	metrics      *metrics.Metrics
}

func NewPaymentUseCase(
	payments PaymentRepository,
	appointments AppointmentRepository,
	works WorkRepository,
	users UserRepository,
	provider gateway.Provider,
	tokenSource MerchantTokenSource,
	db postgres.Pool,
	cfg config.GatewayConfig,
	clock clock.Clock,
	metrics *metrics.Metrics,
) PaymentCommands {
	return &paymentUseCaseImpl{
		payments:     payments,
		appointments: appointments,
		works:        works,
		users:        users,
		provider:     provider,
		tokenSource:  tokenSource,
		db:           db,
		cfg:          cfg,
		clock:        clock,
		metrics:      metrics,
	}
}

func (u *paymentUseCaseImpl) CreatePaymentIntent(ctx context.Context, input CreatePaymentInput) (*payment.Payment, error) {
	payer, err := u.users.FindByID(ctx, u.db, input.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to resolve user")
	}

	appt, err := u.appointments.FindByID(ctx, u.db, input.AppointmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Wrap(err, "failed to resolve appointment")
	}
	if appt.WorkID() == nil {
		return nil, ErrAppointmentHasNoWork
	}

	workEntity, err := u.works.FindByID(ctx, u.db, *appt.WorkID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, errs.Wrap(err, "failed to resolve work")
	}

	// Precondition guard: a client retry must reuse the in-flight
	// payment instead of creating a second gateway intent.
	pending, err := u.payments.HasPendingForAppointment(ctx, u.db, appt.ID(), u.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to check pending payments")
	}
	if pending {
		return nil, ErrPaymentAlreadyPending
	}

	accessToken, err := u.tokenSource.AccessTokenFor(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	expiresAt := u.clock.Now().Add(u.cfg.PaymentExpiry)
	intent, err := u.provider.CreatePayment(ctx, accessToken, gateway.CreatePaymentRequest{
		Amount:            workEntity.Price(),
		Description:       workEntity.Name(),
		PayerEmail:        payer.Email(),
		Method:            input.Method,
		NotificationURL:   u.cfg.WebhookURL,
		ExternalReference: appt.ID().String(),
		IdempotencyKey:    ids.New(),
		ExpiresAt:         expiresAt,
	})
	if err != nil {
		slog.Error("gateway payment creation failed",
			"appointment_id", appt.ID(),
			"provider", u.provider.Name(),
			"error", err)
		return nil, err
	}

	record, err := payment.NewPayment(input.UserID, appt.ID(), workEntity.Price(), input.Method, intent.TransactionID, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrGatewayResponse)
	}

	if err := u.payments.Create(ctx, u.db, record); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateTransaction
		}
		return nil, errs.Wrap(err, "failed to persist payment")
	}

	u.metrics.PaymentsCreated.Inc()
	return record, nil
}
