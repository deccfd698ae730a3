package payment

import (
	"errors"
	"time"

	"agendapay/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyTransactionID = errors.New("transaction id is required")
	ErrInvalidStatus      = errors.New("invalid payment status")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// GatewayStatusApproved is the only remote status that confirms a
// payment; everything else keeps it pending.
const GatewayStatusApproved = "approved"

func StatusFromGateway(gatewayStatus string) Status {
	if gatewayStatus == GatewayStatusApproved {
		return StatusConfirmed
	}
	return StatusPending
}

// Payment is the local record of one gateway payment intent, keyed by
// the gateway transaction id.
type Payment struct {
	id            uuid.UUID
	userID        uuid.UUID
	appointmentID uuid.UUID
	amount        money.Money
	status        Status
	method        string
	transactionID string
	expiresAt     time.Time
	createdAt     time.Time
}

func NewPayment(userID, appointmentID uuid.UUID, amount money.Money, method, transactionID string, expiresAt time.Time) (*Payment, error) {
	if transactionID == "" {
		return nil, ErrEmptyTransactionID
	}

	return &Payment{
		id:            uuid.New(),
		userID:        userID,
		appointmentID: appointmentID,
		amount:        amount,
		status:        StatusPending,
		method:        method,
		transactionID: transactionID,
		expiresAt:     expiresAt,
	}, nil
}

func Reconstruct(
	id, userID, appointmentID uuid.UUID,
	amount money.Money,
	status Status,
	method, transactionID string,
	expiresAt, createdAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		userID:        userID,
		appointmentID: appointmentID,
		amount:        amount,
		status:        status,
		method:        method,
		transactionID: transactionID,
		expiresAt:     expiresAt,
		createdAt:     createdAt,
	}
}

// HasExpired reports whether the gateway intent's expiration has
// passed without confirmation.
func (p *Payment) HasExpired(now time.Time) bool {
	return !p.expiresAt.IsZero() && now.After(p.expiresAt)
}

// IsConfirmed guards the reconciliation expiry branch: a confirmed
// payment is never expired, however old its expiration timestamp.
func (p *Payment) IsConfirmed() bool {
	return p.status == StatusConfirmed
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) UserID() uuid.UUID        { return p.userID }
func (p *Payment) AppointmentID() uuid.UUID { return p.appointmentID }
func (p *Payment) Amount() money.Money      { return p.amount }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) Method() string           { return p.method }
func (p *Payment) TransactionID() string    { return p.transactionID }
func (p *Payment) ExpiresAt() time.Time     { return p.expiresAt }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
