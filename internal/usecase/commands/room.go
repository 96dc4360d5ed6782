package commands

import (
	"context"

	"reservation-management/internal/domain/room"
	"reservation-management/internal/infra"
	"reservation-management/internal/pkg/audit"
	"reservation-management/internal/pkg/errs"
	"reservation-management/internal/pkg/patch"
	"reservation-management/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateRoomNumber = errs.New("room number already registered")

type CreateRoomParams struct {
	Number        int
	Description   string
	Size          float64
	PricePerMonth float64
	Active        bool
}

type UpdateRoomParams struct {
	Number        *int
	Description   *string
	Size          *float64
	PricePerMonth *float64
	Busy          *bool
	Active        *bool
}

type RoomCommands interface {
	Create(ctx context.Context, params CreateRoomParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateRoomParams) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow     shared.UnitOfWork
	stamper *audit.Stamper
}

func NewRoomCommands(uow shared.UnitOfWork, stamper *audit.Stamper) RoomCommands {
	return &roomCommandsImpl{uow: uow, stamper: stamper}
}

func (r *roomCommandsImpl) Create(ctx context.Context, params CreateRoomParams) (uuid.UUID, error) {
	entity, err := room.NewRoom(params.Number, params.Description, params.Size, params.PricePerMonth, params.Active)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Rooms().Create(ctx, tx.DB(), entity, r.stamper.NewStamp(ctx))
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrDuplicateRoomNumber
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

func (r *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateRoomParams) (uuid.UUID, error) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().RoomByID(ctx, id)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.ErrRoomNotFound
			}
			return errs.Mark(readErr, errs.ErrDatabaseOperationFailed)
		}

		merged := room.ReconstructRoom(
			snap.ID,
			patch.Coalesce(params.Number, snap.Number),
			patch.String(params.Description, snap.Description),
			patch.Coalesce(params.Size, snap.Size),
			patch.Coalesce(params.PricePerMonth, snap.PricePerMonth),
			patch.Coalesce(params.Busy, snap.Busy),
			patch.Coalesce(params.Active, snap.Active),
		)

		updateErr := tx.Rooms().Update(ctx, tx.DB(), merged, r.stamper.Refresh(ctx, snap.Stamp))
		if updateErr != nil {
			if infra.IsKind(updateErr, infra.KindDuplicateKey) {
				return ErrDuplicateRoomNumber
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

func (r *roomCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, readErr := tx.Reads().RoomByID(ctx, id); readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.ErrRoomNotFound
			}
			return errs.Mark(readErr, errs.ErrDatabaseOperationFailed)
		}

		referenced, refErr := tx.Reservations().ExistsByRoom(ctx, tx.DB(), id)
		if refErr != nil {
			return errs.Mark(refErr, errs.ErrDatabaseOperationFailed)
		}
		if referenced {
			return errs.ErrReferentialConflict
		}

		if delErr := tx.Rooms().Delete(ctx, tx.DB(), id); delErr != nil {
			return errs.Mark(delErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
