package components

import (
	"agendapay/internal/handler"
	"agendapay/internal/handler/api"
	"agendapay/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewWorkHandler,
		api.NewAppointmentHandler,
		api.NewOAuthHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			user *api.UserHandler,
			work *api.WorkHandler,
			appointment *api.AppointmentHandler,
			oauth *api.OAuthHandler,
			webhook *api.WebhookHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:        auth,
				User:        user,
				Work:        work,
				Appointment: appointment,
				OAuth:       oauth,
				Webhook:     webhook,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
