package components

import (
	"reservation-management/internal/infra"
	"reservation-management/internal/infra/readstore"
	"reservation-management/internal/infra/uow"
	"reservation-management/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// UnitOfWork opens its own transactions against the pool
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
