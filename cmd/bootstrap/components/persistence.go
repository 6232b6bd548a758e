package components

import (
	"workshop-admin-api/internal/infra/readstore"
	"workshop-admin-api/internal/infra/repository"
	"workshop-admin-api/internal/usecase/commands"
	"workshop-admin-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewVehicleReadStore,
			fx.As(new(queries.VehicleReadStore)),
		),
		fx.Annotate(
			readstore.NewConsentReadStore,
			fx.As(new(queries.ConsentReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repository.NewVehicleRepository,
			fx.As(new(commands.VehicleRepository)),
		),
		fx.Annotate(
			repository.NewConsentRepository,
			fx.As(new(commands.ConsentRepository)),
		),
	),
)
