package components

import (
	"reservation-management/internal/domain/reservation"
	"reservation-management/internal/pkg/audit"
	"reservation-management/internal/pkg/clock"
	"reservation-management/internal/pkg/config"
	"reservation-management/internal/usecase/commands"
	"reservation-management/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewStandardPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
	func(clk clock.Clock, cfg config.Config) *audit.Stamper {
		return audit.NewStamper(clk, cfg.Audit.DefaultActor)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCustomerCommands,
		commands.NewRoomCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCustomerQueries,
		queries.NewRoomQueries,
		queries.NewReservationQueries,
	),
)
