package components

import (
	"agendapay/internal/infra/repository"
	"agendapay/internal/usecase/commands"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewUserRepository,
		repository.NewWorkRepository,
		repository.NewAppointmentRepository,
		repository.NewPaymentRepository,
		repository.NewOAuthSessionRepository,
		repository.NewGatewayTokenRepository,

		func(r *repository.UserRepository) commands.UserRepository { return r },
		func(r *repository.WorkRepository) commands.WorkRepository { return r },
		func(r *repository.AppointmentRepository) commands.AppointmentRepository { return r },
		func(r *repository.PaymentRepository) commands.PaymentRepository { return r },
		func(r *repository.OAuthSessionRepository) commands.OAuthSessionRepository { return r },
		func(r *repository.GatewayTokenRepository) commands.GatewayTokenRepository { return r },
	),
)
