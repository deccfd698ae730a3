package appointment

import "errors"

var ErrInvalidStatus = errors.New("invalid appointment status")

// Status tracks the booking lifecycle. COMPLETED doubles as the
// fully-settled state reached through payment reconciliation.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// PaymentStatus mirrors the aggregate state of the appointment's
// payments.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentConfirmed PaymentStatus = "CONFIRMED"
)

func (s PaymentStatus) String() string { return string(s) }
