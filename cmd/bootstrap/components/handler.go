package components

import (
	"reservation-management/internal/handler"
	"reservation-management/internal/handler/api"
	"reservation-management/internal/handler/middleware"
	"reservation-management/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCustomerHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		func(cfg config.Config) *middleware.ActorMiddleware {
			return middleware.NewActorMiddleware(cfg.Audit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
