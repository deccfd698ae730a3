package appointment

import (
	"errors"
	"time"

	"agendapay/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyDate        = errors.New("appointment date is required")
	ErrEmptyTitle       = errors.New("appointment title is required")
	ErrNegativeDelta    = errors.New("payment delta cannot be negative")
	ErrAlreadyCancelled = errors.New("appointment is cancelled")
)

// Appointment is the booking aggregate tied to a work and settled by
// asynchronous payment reconciliation.
type Appointment struct {
	id            uuid.UUID
	userID        uuid.UUID
	workID        *uuid.UUID
	title         string
	date          time.Time
	status        Status
	paymentStatus PaymentStatus
	paidAmount    money.Money
	createdAt     time.Time
	updatedAt     time.Time
}

// NewAppointment creates a pending booking with nothing paid yet.
func NewAppointment(userID uuid.UUID, workID *uuid.UUID, title string, date time.Time) (*Appointment, error) {
	if date.IsZero() {
		return nil, ErrEmptyDate
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}

	return &Appointment{
		id:            uuid.New(),
		userID:        userID,
		workID:        workID,
		title:         title,
		date:          date,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		paidAmount:    money.Zero(),
	}, nil
}

func Reconstruct(
	id, userID uuid.UUID,
	workID *uuid.UUID,
	title string,
	date time.Time,
	status Status,
	paymentStatus PaymentStatus,
	paidAmount money.Money,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:            id,
		userID:        userID,
		workID:        workID,
		title:         title,
		date:          date,
		status:        status,
		paymentStatus: paymentStatus,
		paidAmount:    paidAmount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Reschedule moves the booking to a new date. A reschedule always
// requires re-confirmation of the slot, so the status drops back to
// PENDING regardless of payment state.
func (a *Appointment) Reschedule(date time.Time) error {
	if date.IsZero() {
		return ErrEmptyDate
	}
	if a.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	a.date = date
	a.status = StatusPending
	return nil
}

func (a *Appointment) UpdateStatus(s Status) {
	a.status = s
}

// ApplyPaymentDelta adds a manual payment amount on top of what has
// already been paid, clamping at the work price. Negative deltas are
// rejected and amounts are already cent-rounded by the money type.
func (a *Appointment) ApplyPaymentDelta(delta, price money.Money) error {
	if delta.IsNegative() {
		return ErrNegativeDelta
	}
	a.Settle(a.paidAmount.Add(delta), price)
	return nil
}

// Settle reconciles the aggregate against the cumulative confirmed
// total. The paid amount is clamped at the work price; full settlement
// confirms the payment and completes the booking.
func (a *Appointment) Settle(totalConfirmed, price money.Money) {
	a.paidAmount = totalConfirmed.Min(price)
	if totalConfirmed.GreaterOrEqual(price) && !price.IsZero() {
		a.paymentStatus = PaymentConfirmed
		if !a.IsCancelled() {
			a.status = StatusCompleted
		}
		return
	}
	a.paymentStatus = PaymentPending
	if a.status == StatusCompleted {
		a.status = StatusPending
	}
}

func (a *Appointment) IsCancelled() bool {
	return a.status == StatusCancelled
}

func (a *Appointment) ID() uuid.UUID                { return a.id }
func (a *Appointment) UserID() uuid.UUID            { return a.userID }
func (a *Appointment) WorkID() *uuid.UUID           { return a.workID }
func (a *Appointment) Title() string                { return a.title }
func (a *Appointment) Date() time.Time              { return a.date }
func (a *Appointment) Status() Status               { return a.status }
func (a *Appointment) PaymentStatus() PaymentStatus { return a.paymentStatus }
func (a *Appointment) PaidAmount() money.Money      { return a.paidAmount }
func (a *Appointment) CreatedAt() time.Time         { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time         { return a.updatedAt }
