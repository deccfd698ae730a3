package api

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agendapay/internal/domain/appointment"
	reqdto "agendapay/internal/handler/dto/request"
	resdto "agendapay/internal/handler/dto/response"
	"agendapay/internal/handler/httperr"
	"agendapay/internal/handler/middleware"
	"agendapay/internal/infra/repository"
	"agendapay/internal/pkg/errs"
	"agendapay/internal/pkg/money"
	"agendapay/internal/usecase/commands"
	"agendapay/internal/usecase/queries"
)

type AppointmentHandler struct {
	commands commands.AppointmentCommands
	queries  queries.AppointmentQueries
}

func NewAppointmentHandler(appointmentCommands commands.AppointmentCommands, appointmentQueries queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{commands: appointmentCommands, queries: appointmentQueries}
}

// @Summary Create appointment
// @Description Book a slot and create the gateway payment for the work price
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} response.CreateAppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.commands.CreateAppointment(c.Request.Context(), commands.CreateAppointmentInput{
		UserID:        userID,
		WorkID:        req.WorkID,
		Title:         req.Title,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		h.abortCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateAppointmentResponse{
		Appointment: resdto.FromAppointment(result.Appointment),
		Payment:     resdto.FromPayment(result.Payment),
	})
}

// @Summary List appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param userId query string false "Owner id"
// @Param date query string false "Calendar day (RFC 3339)"
// @Param status query string false "Status"
// @Success 200 {array} response.AppointmentResponse
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	filter, err := appointmentFilterFromQuery(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}

	appts, err := h.queries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointments(appts))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment id"
// @Success 200 {object} response.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment id", nil)
		return
	}

	appt, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrAppointmentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(appt))
}

// @Summary Reschedule appointment
// @Description Change the date; status resets to PENDING and the new slot is collision-checked
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment id"
// @Param request body request.RescheduleAppointmentRequest true "New date"
// @Success 200 {object} response.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment id", nil)
		return
	}

	var req reqdto.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	appt, err := h.commands.Reschedule(c.Request.Context(), id, req.Date)
	if err != nil {
		h.abortCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(appt))
}

// @Summary Update appointment status
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment id"
// @Param request body request.UpdateAppointmentStatusRequest true "New status"
// @Success 200 {object} response.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment id", nil)
		return
	}

	var req reqdto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	appt, err := h.commands.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.abortCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(appt))
}

// @Summary Apply manual payment delta
// @Description Add a manually collected amount toward the work price
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment id"
// @Param request body request.PaymentDeltaRequest true "Amount to add"
// @Success 200 {object} response.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /appointments/{id}/payments [patch]
func (h *AppointmentHandler) ApplyPaymentDelta(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment id", nil)
		return
	}

	var req reqdto.PaymentDeltaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	appt, err := h.commands.ApplyPaymentDelta(c.Request.Context(), id, money.FromFloat(req.Amount))
	if err != nil {
		h.abortCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(appt))
}

// @Summary Delete appointment
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment id"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment id", nil)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		h.abortCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) abortCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAppointmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
	case errors.Is(err, commands.ErrWorkNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Work not found", nil)
	case errors.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, commands.ErrMerchantTokenNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Merchant has not connected the payment gateway", nil)
	case errors.Is(err, commands.ErrAppointmentConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot already taken", nil)
	case errors.Is(err, commands.ErrPaymentAlreadyPending):
		httperr.AbortWithError(c, http.StatusConflict, err, "A payment is already pending for this appointment", nil)
	case errors.Is(err, commands.ErrDuplicateTransaction):
		httperr.AbortWithError(c, http.StatusConflict, err, "Duplicate gateway transaction", nil)
	case errors.Is(err, commands.ErrAppointmentCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Appointment is cancelled", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid appointment data", nil)
	case errors.Is(err, errs.ErrGatewayNotConfigured):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Payment gateway not configured", nil)
	case errors.Is(err, errs.ErrGatewayUnavailable), errors.Is(err, errs.ErrGatewayResponse):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway error", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func appointmentFilterFromQuery(c *gin.Context) (repository.AppointmentFilter, error) {
	var filter repository.AppointmentFilter

	if userIDStr := c.Query("userId"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return filter, errors.Wrap(err, "invalid userId")
		}
		filter.UserID = &userID
	}
	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			day, err = time.Parse("2006-01-02", dateStr)
			if err != nil {
				return filter, errors.Wrap(err, "invalid date")
			}
		}
		filter.Day = &day
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status, err := appointment.NewStatus(statusStr)
		if err != nil {
			return filter, errors.Wrap(err, "invalid status")
		}
		filter.Status = &status
	}
	return filter, nil
}
