package components

import (
	"agendapay/internal/pkg/clock"
	"agendapay/internal/usecase/commands"
	"agendapay/internal/usecase/dispatch"
	"agendapay/internal/usecase/queries"

	"go.uber.org/fx"
)

const webhookMaxConcurrent = 32

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func() *dispatch.Dispatcher { return dispatch.New(webhookMaxConcurrent) },
	commands.NewMerchantTokenSource,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewWorkUseCase,
		commands.NewAppointmentUseCase,
		commands.NewPaymentUseCase,
		commands.NewReconcileUseCase,
		commands.NewOAuthUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewWorkQueries,
		queries.NewAppointmentQueries,
	),
)
