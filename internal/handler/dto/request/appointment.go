package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	WorkID        uuid.UUID `json:"workId" binding:"required"`
	Title         string    `json:"title" binding:"required"`
	Date          time.Time `json:"date" binding:"required"`
	PaymentMethod string    `json:"paymentMethod"`
}

type RescheduleAppointmentRequest struct {
	Date time.Time `json:"date" binding:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PaymentDeltaRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}
