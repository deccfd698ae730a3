package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	reqdto "agendapay/internal/handler/dto/request"
	resdto "agendapay/internal/handler/dto/response"
	"agendapay/internal/handler/httperr"
	"agendapay/internal/pkg/errs"
	"agendapay/internal/usecase/commands"
)

type WebhookHandler struct {
	reconcile commands.ReconcileCommands
}

func NewWebhookHandler(reconcile commands.ReconcileCommands) *WebhookHandler {
	return &WebhookHandler{reconcile: reconcile}
}

// @Summary Gateway webhook
// @Description Payment notification endpoint; non-2xx responses make the gateway redeliver
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body request.WebhookRequest false "Notification body"
// @Param id query string false "Transaction id (query variant)"
// @Param topic query string false "Topic (query variant)"
// @Success 200 {object} response.WebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /webhook [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	var req reqdto.WebhookRequest
	// Body is optional, the same fields may arrive as query params.
	_ = c.ShouldBindJSON(&req)
	if req.Resource == "" {
		req.Resource = c.Query("id")
	}
	if req.Topic == "" {
		req.Topic = c.Query("topic")
	}

	result, err := h.reconcile.ProcessWebhook(c.Request.Context(), req.Resource, req.Topic)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWebhookValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid webhook payload", nil)
		case errors.Is(err, commands.ErrPaymentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown transaction", nil)
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown payment owner", nil)
		case errors.Is(err, commands.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		case errors.Is(err, commands.ErrMerchantTokenNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Merchant has not connected the payment gateway", nil)
		case errors.Is(err, errs.ErrGatewayUnavailable), errors.Is(err, errs.ErrGatewayResponse):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway error", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp := resdto.WebhookResponse{
		Outcome:       string(result.Outcome),
		TransactionID: result.TransactionID,
		PaymentStatus: result.PaymentStatus.String(),
	}
	c.JSON(http.StatusOK, resp)
}
