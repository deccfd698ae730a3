package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"agendapay/internal/handler/api"
	"agendapay/internal/handler/middleware"
	"agendapay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	User        *api.UserHandler
	Work        *api.WorkHandler
	Appointment *api.AppointmentHandler
	OAuth       *api.OAuthHandler
	Webhook     *api.WebhookHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, registry *prometheus.Registry) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, registry)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, registry *prometheus.Registry) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Inbound from the gateway and the OAuth provider; no session auth.
	engine.POST("/webhook", h.Webhook.Handle)
	engine.GET("/oauth/callback", h.OAuth.Callback)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		})

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "", Handler: h.User.Register},
			})

			authRequired := users.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "", Handler: h.User.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.User.Get},
			})
		}

		works := apiGroup.Group("/works")
		works.Use(authMiddleware.RequireAuth())
		addRoutes(works, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Work.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Work.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Work.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Work.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Work.Delete},
		})

		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		addRoutes(appointments, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Appointment.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Appointment.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Appointment.Reschedule},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Appointment.UpdateStatus},
			{Method: http.MethodPatch, Path: "/:id/payments", Handler: h.Appointment.ApplyPaymentDelta},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Appointment.Delete},
		})

		oauth := apiGroup.Group("/oauth")
		oauth.Use(authMiddleware.RequireAuth())
		addRoutes(oauth, []route{
			{Method: http.MethodGet, Path: "/redirect", Handler: h.OAuth.Redirect},
			{Method: http.MethodPost, Path: "/refresh", Handler: h.OAuth.Refresh},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		group.Handle(r.Method, r.Path, handlers...)
	}
}
