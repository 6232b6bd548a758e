package bootstrap

import (
	"context"

	"workshop-admin-api/internal/infra/realtime"
	"workshop-admin-api/internal/pkg/config"
	"workshop-admin-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		fx.Annotate(
			NewHub,
			fx.As(new(commands.ChangeNotifier)),
			fx.As(fx.Self()),
		),
	),
)

func NewHub(lc fx.Lifecycle, cfg config.Config) *realtime.Hub {
	hub := realtime.NewHub(cfg.Realtime)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			hub.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			hub.Stop()
			return nil
		},
	})

	return hub
}
