package commands

import (
	"context"
	"log/slog"
	"strings"

	"agendapay/internal/domain/appointment"
	"agendapay/internal/domain/payment"
	"agendapay/internal/infra"
	"agendapay/internal/infra/gateway"
	"agendapay/internal/infra/metrics"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/pkg/clock"
	"agendapay/internal/pkg/errs"
	"agendapay/internal/pkg/money"
	"agendapay/internal/usecase/dispatch"
)

const (
	webhookTopicPayment = "payment"
	reconcileMaxRetries = 3
)

var (
	ErrWebhookValidation = errs.New("invalid webhook payload")
	ErrPaymentNotFound   = errs.New("payment not found")
)

type ReconciliationOutcome string

const (
	OutcomeIgnored ReconciliationOutcome = "IGNORED"
	OutcomeExpired ReconciliationOutcome = "EXPIRED"
	OutcomeSettled ReconciliationOutcome = "SETTLED"
)

type ReconciliationResult struct {
	Outcome       ReconciliationOutcome
	TransactionID string
	PaymentStatus payment.Status
}

type ReconcileCommands interface {
	// ProcessWebhook is the single entry point for inbound gateway
	// notifications, whatever the transport shape of the event.
	ProcessWebhook(ctx context.Context, resource, topic string) (*ReconciliationResult, error)
}

type reconcileUseCaseImpl struct {
	payments     PaymentRepository
	appointments AppointmentRepository
	works        WorkRepository
	users        UserRepository
	provider     gateway.Provider
	tokenSource  MerchantTokenSource
	dispatcher   *dispatch.Dispatcher
	db           postgres.Pool
	clock        clock.Clock
	metrics      *metrics.Metrics
}

func NewReconcileUseCase(
	payments PaymentRepository,
	appointments AppointmentRepository,
	works WorkRepository,
	users UserRepository,
	provider gateway.Provider,
	tokenSource MerchantTokenSource,
	dispatcher *dispatch.Dispatcher,
	db postgres.Pool,
	clock clock.Clock,
	metrics *metrics.Metrics,
) ReconcileCommands {
	return &reconcileUseCaseImpl{
		payments:     payments,
		appointments: appointments,
		works:        works,
		users:        users,
		provider:     provider,
		tokenSource:  tokenSource,
		dispatcher:   dispatcher,
		db:           db,
		clock:        clock,
		metrics:      metrics,
	}
}

func (u *reconcileUseCaseImpl) ProcessWebhook(ctx context.Context, resource, topic string) (*ReconciliationResult, error) {
	if resource == "" || topic == "" {
		return nil, ErrWebhookValidation
	}
	if topic != webhookTopicPayment {
		u.metrics.WebhooksIgnored.Inc()
		return &ReconciliationResult{Outcome: OutcomeIgnored}, nil
	}

	transactionID := transactionIDFromResource(resource)

	var result *ReconciliationResult
	err := u.dispatcher.Do(ctx, transactionID, func() error {
		var reconcileErr error
		result, reconcileErr = u.reconcile(ctx, transactionID)
		return reconcileErr
	})
	if err != nil {
		u.metrics.WebhooksFailed.Inc()
		slog.Error("webhook reconciliation failed",
			"resource", resource,
			"topic", topic,
			"error", err)
		return nil, err
	}

	u.metrics.WebhooksProcessed.Inc()
	return result, nil
}

func (u *reconcileUseCaseImpl) reconcile(ctx context.Context, transactionID string) (*ReconciliationResult, error) {
	record, err := u.payments.FindByTransactionID(ctx, u.db, transactionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Wrap(err, "failed to look up payment")
	}

	if _, err := u.users.FindByID(ctx, u.db, record.UserID()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to resolve payment owner")
	}

	// Expiry only ever destroys unconfirmed intents. A redelivered
	// webhook for a payment that settled before its expiration must go
	// through the settle path again, not delete the booking.
	if !record.IsConfirmed() && record.HasExpired(u.clock.Now()) {
		return u.expire(ctx, record)
	}
	return u.settle(ctx, record)
}

// expire removes the stale payment and its appointment in one
// transaction. Destructive, matches the gateway's own expiration of
// the underlying intent.
func (u *reconcileUseCaseImpl) expire(ctx context.Context, record *payment.Payment) (*ReconciliationResult, error) {
	_, err := postgres.RunInTxWithRetry(ctx, u.db, reconcileMaxRetries, func(tx postgres.DBTX) (struct{}, error) {
		if err := u.payments.DeleteByTransactionID(ctx, tx, record.TransactionID()); err != nil {
			return struct{}{}, errs.Wrap(err, "failed to delete expired payment")
		}
		if err := u.appointments.Delete(ctx, tx, record.AppointmentID()); err != nil {
			return struct{}{}, errs.Wrap(err, "failed to delete appointment of expired payment")
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	u.metrics.PaymentsExpired.Inc()
	slog.Info("expired payment removed",
		"transaction_id", record.TransactionID(),
		"appointment_id", record.AppointmentID())

	return &ReconciliationResult{
		Outcome:       OutcomeExpired,
		TransactionID: record.TransactionID(),
	}, nil
}

func (u *reconcileUseCaseImpl) settle(ctx context.Context, record *payment.Payment) (*ReconciliationResult, error) {
	accessToken, err := u.tokenSource.AccessTokenFor(ctx, record.UserID())
	if err != nil {
		return nil, err
	}

	authoritative, err := u.provider.FetchPayment(ctx, accessToken, record.TransactionID())
	if err != nil {
		return nil, err
	}
	if authoritative.ExternalReference == "" {
		return nil, errs.Mark(errs.New("gateway payment missing external_reference"), ErrWebhookValidation)
	}

	status := payment.StatusFromGateway(authoritative.Status)

	_, err = postgres.RunInTxWithRetry(ctx, u.db, reconcileMaxRetries, func(tx postgres.DBTX) (struct{}, error) {
		if err := u.payments.UpdateSettlement(ctx, tx, record.TransactionID(), authoritative.Amount, status); err != nil {
			return struct{}{}, errs.Wrap(err, "failed to update payment settlement")
		}

		appt, err := u.appointments.FindByID(ctx, tx, record.AppointmentID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrAppointmentNotFound
			}
			return struct{}{}, errs.Wrap(err, "failed to resolve appointment")
		}

		confirmedCents, err := u.payments.SumConfirmedCents(ctx, tx, appt.ID())
		if err != nil {
			return struct{}{}, errs.Wrap(err, "failed to sum confirmed payments")
		}

		price, err := u.workPrice(ctx, tx, appt)
		if err != nil {
			return struct{}{}, err
		}

		appt.Settle(money.FromCents(confirmedCents), price)
		if err := u.appointments.Update(ctx, tx, appt); err != nil {
			return struct{}{}, errs.Wrap(err, "failed to update appointment settlement")
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	if status == payment.StatusConfirmed {
		u.metrics.PaymentsConfirmed.Inc()
	}

	return &ReconciliationResult{
		Outcome:       OutcomeSettled,
		TransactionID: record.TransactionID(),
		PaymentStatus: status,
	}, nil
}

func (u *reconcileUseCaseImpl) workPrice(ctx context.Context, tx postgres.DBTX, appt *appointment.Appointment) (money.Money, error) {
	if appt.WorkID() == nil {
		return money.Zero(), nil
	}
	workEntity, err := u.works.FindByID(ctx, tx, *appt.WorkID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return money.Zero(), ErrWorkNotFound
		}
		return money.Zero(), errs.Wrap(err, "failed to resolve work")
	}
	return workEntity.Price(), nil
}

// transactionIDFromResource accepts either a bare transaction id or a
// resource URL whose last path segment is the id, which is how the
// gateway formats redeliveries.
func transactionIDFromResource(resource string) string {
	trimmed := strings.TrimRight(resource, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
