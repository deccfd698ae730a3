package response

import (
	"time"

	"agendapay/internal/domain/appointment"
	"agendapay/internal/domain/payment"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"userId"`
	WorkID          *uuid.UUID `json:"workId,omitempty"`
	Title           string     `json:"title"`
	Date            time.Time  `json:"date"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"paymentStatus"`
	PaidAmount      float64    `json:"paidAmount"`
	PaidAmountCents int64      `json:"paidAmountCents"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func FromAppointment(a *appointment.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              a.ID(),
		UserID:          a.UserID(),
		WorkID:          a.WorkID(),
		Title:           a.Title(),
		Date:            a.Date(),
		Status:          a.Status().String(),
		PaymentStatus:   a.PaymentStatus().String(),
		PaidAmount:      a.PaidAmount().Float(),
		PaidAmountCents: a.PaidAmount().Cents(),
		CreatedAt:       a.CreatedAt(),
		UpdatedAt:       a.UpdatedAt(),
	}
}

func FromAppointments(appts []*appointment.Appointment) []*AppointmentResponse {
	out := make([]*AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, FromAppointment(a))
	}
	return out
}

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	AppointmentID uuid.UUID `json:"appointmentId"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	Method        string    `json:"method,omitempty"`
	TransactionID string    `json:"transactionId"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

func FromPayment(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID(),
		AppointmentID: p.AppointmentID(),
		Amount:        p.Amount().Float(),
		Status:        p.Status().String(),
		Method:        p.Method(),
		TransactionID: p.TransactionID(),
		ExpiresAt:     p.ExpiresAt(),
	}
}

type CreateAppointmentResponse struct {
	Appointment *AppointmentResponse `json:"appointment"`
	Payment     *PaymentResponse     `json:"payment"`
}
