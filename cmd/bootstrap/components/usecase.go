package components

import (
	"workshop-admin-api/internal/pkg/clock"
	"workshop-admin-api/internal/usecase/commands"
	"workshop-admin-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOperationQueries,
		queries.NewCustomerQueries,
		queries.NewVehicleQueries,
		queries.NewConsentQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOperationCommands,
		commands.NewCustomerCommands,
		commands.NewVehicleCommands,
		commands.NewConsentCommands,
	),
)
