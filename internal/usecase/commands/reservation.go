package commands

import (
	"context"
	"errors"
	"time"

	"reservation-management/internal/domain/reservation"
	"reservation-management/internal/infra"
	"reservation-management/internal/pkg/audit"
	"reservation-management/internal/pkg/errs"
	"reservation-management/internal/pkg/patch"
	"reservation-management/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateCode = errs.New("reservation code already used")

type CreateReservationParams struct {
	Code        string
	CustomerID  uuid.UUID
	RoomID      uuid.UUID
	Price       float64
	Description string
	Duration    int
	StartDate   time.Time
	EndDate     time.Time
	Active      bool
}

type UpdateReservationParams struct {
	Code        *string
	Price       *float64
	Description *string
	Duration    *int
	StartDate   *time.Time
	EndDate     *time.Time
	Active      *bool
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateReservationParams) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	stamper *audit.Stamper
}

func NewReservationCommands(uow shared.UnitOfWork, factory *reservation.Factory, stamper *audit.Stamper) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, factory: factory, stamper: stamper}
}

// Create books a room. The room claim and the reservation insert run in one
// transaction: on any rejection the busy flag keeps its prior value, and
// concurrent bookings against the same room leave exactly one winner.
func (r *reservationCommandsImpl) Create(ctx context.Context, params CreateReservationParams) (uuid.UUID, error) {
	reads := r.uow.CommandReads()

	roomSnap, err := reads.RoomByID(ctx, params.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.ErrRoomNotFound
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if _, err = reads.CustomerByID(ctx, params.CustomerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.ErrCustomerNotFound
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := r.factory.NewReservation(reservation.BookingInput{
		Code:        params.Code,
		CustomerID:  params.CustomerID,
		RoomID:      params.RoomID,
		Price:       params.Price,
		Description: params.Description,
		Duration:    params.Duration,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		Active:      params.Active,
	}, roomSnap.PricePerMonth)
	if err != nil {
		if errors.Is(err, reservation.ErrDurationOutOfRange) {
			return uuid.Nil, errs.ErrDurationOutOfRange
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, claimErr := tx.Rooms().ClaimIfFree(ctx, tx.DB(), params.RoomID)
		if claimErr != nil {
			return errs.Mark(claimErr, errs.ErrDatabaseOperationFailed)
		}
		if !claimed {
			return errs.ErrRoomBusy
		}

		createdID, createErr := tx.Reservations().Create(ctx, tx.DB(), entity, r.stamper.NewStamp(ctx))
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrDuplicateCode
			}
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		id = createdID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *reservationCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateReservationParams) (uuid.UUID, error) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().ReservationByID(ctx, id)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(readErr, errs.ErrDatabaseOperationFailed)
		}

		merged := reservation.ReconstructReservation(
			snap.ID,
			patch.String(params.Code, snap.Code),
			snap.CustomerID,
			snap.RoomID,
			patch.Coalesce(params.Price, snap.Price),
			patch.String(params.Description, snap.Description),
			patch.Coalesce(params.Duration, snap.Duration),
			patch.Coalesce(params.StartDate, snap.StartDate),
			patch.Coalesce(params.EndDate, snap.EndDate),
			patch.Coalesce(params.Active, snap.Active),
		)

		updateErr := tx.Reservations().Update(ctx, tx.DB(), merged, r.stamper.Refresh(ctx, snap.Stamp))
		if updateErr != nil {
			if infra.IsKind(updateErr, infra.KindDuplicateKey) {
				return ErrDuplicateCode
			}
			return errs.Mark(updateErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Delete removes a reservation and, when it was still active, releases the
// bound room in the same transaction so the busy flag cannot go stale.
func (r *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().ReservationByID(ctx, id)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(readErr, errs.ErrDatabaseOperationFailed)
		}

		if snap.Active {
			if relErr := tx.Rooms().Release(ctx, tx.DB(), snap.RoomID); relErr != nil {
				return errs.Mark(relErr, errs.ErrDatabaseOperationFailed)
			}
		}

		if delErr := tx.Reservations().Delete(ctx, tx.DB(), id); delErr != nil {
			return errs.Mark(delErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
