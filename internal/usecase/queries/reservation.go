package queries

import (
	"context"
	"time"

	"reservation-management/internal/infra"
	"reservation-management/internal/pkg/clock"
	"reservation-management/internal/pkg/dateutil"
	"reservation-management/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationView, error)
	// Search matches reservations whose active flag equals active OR whose
	// end date falls within the next endsInMonths months. The two predicates
	// are independent: an unset active flag matches nothing on its own.
	Search(ctx context.Context, active *bool, endsInMonths int) ([]*ReservationView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationView, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationView, error)
	Search(ctx context.Context, active *bool, endsFrom, endsTo time.Time) ([]*ReservationView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*ReservationView, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clk}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) Search(ctx context.Context, active *bool, endsInMonths int) ([]*ReservationView, error) {
	now := q.clock.Now()
	endsTo := dateutil.AddMonths(now, endsInMonths)

	views, err := q.store.Search(ctx, active, now, endsTo)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.store.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.store.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
