package components

import (
	"workshop-admin-api/internal/handler"
	"workshop-admin-api/internal/handler/api"
	"workshop-admin-api/internal/handler/middleware"
	"workshop-admin-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOperationHandler,
		api.NewCustomerHandler,
		api.NewVehicleHandler,
		api.NewConsentHandler,
		api.NewEventsHandler,
		NewHandlers,
		func(svc *jwt.Service) middleware.TokenValidator { return svc },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	operation *api.OperationHandler,
	customer *api.CustomerHandler,
	vehicle *api.VehicleHandler,
	consent *api.ConsentHandler,
	events *api.EventsHandler,
) handler.Handlers {
	return handler.Handlers{
		Operation: operation,
		Customer:  customer,
		Vehicle:   vehicle,
		Consent:   consent,
		Events:    events,
	}
}
