package commands

import (
	"context"
	"time"

	"agendapay/internal/domain/appointment"
	"agendapay/internal/domain/payment"
	"agendapay/internal/domain/user"
	"agendapay/internal/domain/work"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/infra/repository"
	"agendapay/internal/pkg/money"

	"github.com/google/uuid"
)

// Repository ports consumed by the command layer. Every method takes a
// postgres.DBTX so the same port works standalone and inside RunInTx.

type UserRepository interface {
	Create(ctx context.Context, db postgres.DBTX, u *user.User, passwordHash string) error
	FindByID(ctx context.Context, db postgres.DBTX, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, db postgres.DBTX, email string) (*user.User, string, error)
}

type WorkRepository interface {
	Create(ctx context.Context, db postgres.DBTX, w *work.Work) error
	FindByID(ctx context.Context, db postgres.DBTX, id uuid.UUID) (*work.Work, error)
	Update(ctx context.Context, db postgres.DBTX, w *work.Work) error
	Delete(ctx context.Context, db postgres.DBTX, id uuid.UUID) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, db postgres.DBTX, a *appointment.Appointment) error
	FindByID(ctx context.Context, db postgres.DBTX, id uuid.UUID) (*appointment.Appointment, error)
	ExistsActiveBetween(ctx context.Context, db postgres.DBTX, from, to time.Time, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, db postgres.DBTX, a *appointment.Appointment) error
	Delete(ctx context.Context, db postgres.DBTX, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, db postgres.DBTX, p *payment.Payment) error
	FindByTransactionID(ctx context.Context, db postgres.DBTX, transactionID string) (*payment.Payment, error)
	HasPendingForAppointment(ctx context.Context, db postgres.DBTX, appointmentID uuid.UUID, now time.Time) (bool, error)
	UpdateSettlement(ctx context.Context, db postgres.DBTX, transactionID string, amount money.Money, status payment.Status) error
	SumConfirmedCents(ctx context.Context, db postgres.DBTX, appointmentID uuid.UUID) (int64, error)
	DeleteByTransactionID(ctx context.Context, db postgres.DBTX, transactionID string) error
}

type OAuthSessionRepository interface {
	Create(ctx context.Context, db postgres.DBTX, s repository.OAuthSession) error
	FindByState(ctx context.Context, db postgres.DBTX, state string) (*repository.OAuthSession, error)
	DeleteByState(ctx context.Context, db postgres.DBTX, state string) error
}

type GatewayTokenRepository interface {
	Upsert(ctx context.Context, db postgres.DBTX, t repository.GatewayToken) error
	FindByUserID(ctx context.Context, db postgres.DBTX, userID uuid.UUID) (*repository.GatewayToken, error)
	UpdateIfExpiryMatches(ctx context.Context, db postgres.DBTX, userID uuid.UUID, accessToken, refreshToken string, newExpiresAt, observedExpiresAt time.Time) (bool, error)
}
