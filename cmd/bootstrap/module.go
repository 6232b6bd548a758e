package bootstrap

import (
	"workshop-admin-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	UpstreamModule,
	RealtimeModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
