//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"agendapay/internal/domain/payment"
	"agendapay/internal/handler/api"
	resdto "agendapay/internal/handler/dto/response"
	"agendapay/internal/pkg/errs"
	"agendapay/internal/usecase/commands"
	"agendapay/tests/common/httptest"
	commandsmock "agendapay/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockReconcile *commandsmock.MockReconcileCommands
	handler       *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReconcile = commandsmock.NewMockReconcileCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockReconcile)

	s.router.POST("/webhook", s.handler.Handle)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestHandle() {
	s.Run("success: settles payment from JSON body", func() {
		s.mockReconcile.EXPECT().
			ProcessWebhook(gomock.Any(), "tx-1", "payment").
			Return(&commands.ReconciliationResult{
				Outcome:       commands.OutcomeSettled,
				TransactionID: "tx-1",
				PaymentStatus: payment.StatusConfirmed,
			}, nil).Times(1)

		body := map[string]any{"resource": "tx-1", "topic": "payment"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/webhook", body, "")

		var resp resdto.WebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("SETTLED", resp.Outcome)
		s.Equal("tx-1", resp.TransactionID)
		s.Equal("CONFIRMED", resp.PaymentStatus)
	})

	s.Run("success: accepts query-param notification shape", func() {
		s.mockReconcile.EXPECT().
			ProcessWebhook(gomock.Any(), "tx-2", "payment").
			Return(&commands.ReconciliationResult{
				Outcome:       commands.OutcomeExpired,
				TransactionID: "tx-2",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/webhook?id=tx-2&topic=payment", nil, "")

		var resp resdto.WebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("EXPIRED", resp.Outcome)
	})

	s.Run("success: acks unrelated topics without touching payments", func() {
		s.mockReconcile.EXPECT().
			ProcessWebhook(gomock.Any(), "order-1", "merchant_order").
			Return(&commands.ReconciliationResult{Outcome: commands.OutcomeIgnored}, nil).Times(1)

		body := map[string]any{"resource": "order-1", "topic": "merchant_order"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/webhook", body, "")

		var resp resdto.WebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("IGNORED", resp.Outcome)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			reconcileError error
			expectedStatus int
		}{
			{"validation error returns 400", commands.ErrWebhookValidation, http.StatusBadRequest},
			{"unknown transaction returns 404", commands.ErrPaymentNotFound, http.StatusNotFound},
			{"unknown owner returns 404", commands.ErrUserNotFound, http.StatusNotFound},
			{"missing appointment returns 404", commands.ErrAppointmentNotFound, http.StatusNotFound},
			{"disconnected merchant returns 404", commands.ErrMerchantTokenNotFound, http.StatusNotFound},
			{"gateway transport failure returns 502", errs.ErrGatewayUnavailable, http.StatusBadGateway},
			{"gateway rejection returns 502", errs.ErrGatewayResponse, http.StatusBadGateway},
			{"unexpected error returns 500", errs.New("boom"), http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockReconcile.EXPECT().
					ProcessWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.reconcileError).Times(1)

				body := map[string]any{"resource": "tx-err", "topic": "payment"}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/webhook", body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
