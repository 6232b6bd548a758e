package bootstrap

import (
	"workshop-admin-api/internal/infra/upstream"
	"workshop-admin-api/internal/pkg/config"
	"workshop-admin-api/internal/usecase/commands"
	"workshop-admin-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		fx.Annotate(
			NewVisitsClient,
			fx.As(new(queries.VisitReadStore)),
		),
		fx.Annotate(
			NewAppointmentsClient,
			fx.As(new(queries.AppointmentReadStore)),
			fx.As(new(commands.AppointmentGateway)),
		),
	),
)

func NewVisitsClient(cfg config.Config) *upstream.VisitsClient {
	return upstream.NewVisitsClient(cfg.Upstream, cfg.Billing)
}

func NewAppointmentsClient(cfg config.Config) *upstream.AppointmentsClient {
	return upstream.NewAppointmentsClient(cfg.Upstream, cfg.Billing)
}
