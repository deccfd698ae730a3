package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	resdto "agendapay/internal/handler/dto/response"
	"agendapay/internal/handler/httperr"
	"agendapay/internal/handler/middleware"
	"agendapay/internal/pkg/errs"
	"agendapay/internal/usecase/commands"
)

type OAuthHandler struct {
	oauth commands.OAuthCommands
}

func NewOAuthHandler(oauth commands.OAuthCommands) *OAuthHandler {
	return &OAuthHandler{oauth: oauth}
}

// @Summary Begin gateway authorization
// @Description Start the PKCE flow; returns the provider URL to redirect the merchant to
// @Tags oauth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.AuthorizationRedirectResponse
// @Failure 503 {object} httperr.Response
// @Router /oauth/redirect [get]
func (h *OAuthHandler) Redirect(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	authURL, err := h.oauth.BeginAuthorization(c.Request.Context(), userID)
	if err != nil {
		h.abortOAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AuthorizationRedirectResponse{AuthorizationURL: authURL})
}

// @Summary Gateway authorization callback
// @Description Provider redirect target; exchanges the code and stores the merchant token
// @Tags oauth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "Anti-CSRF state"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /oauth/callback [get]
func (h *OAuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing code or state"), "Missing code or state", nil)
		return
	}

	if err := h.oauth.CompleteAuthorization(c.Request.Context(), code, state); err != nil {
		h.abortOAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "authorized"})
}

// @Summary Refresh merchant token
// @Tags oauth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /oauth/refresh [post]
func (h *OAuthHandler) Refresh(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	if err := h.oauth.RefreshMerchantToken(c.Request.Context(), userID); err != nil {
		h.abortOAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}

func (h *OAuthHandler) abortOAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrGatewayNotConfigured):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Payment gateway not configured", nil)
	case errors.Is(err, commands.ErrOAuthSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown or expired authorization state", nil)
	case errors.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, commands.ErrMerchantTokenNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Merchant has not connected the payment gateway", nil)
	case errors.Is(err, errs.ErrGatewayUnavailable), errors.Is(err, errs.ErrGatewayResponse):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway error", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
