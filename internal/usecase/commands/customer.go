package commands

import (
	"context"
	"errors"
	"time"

	"reservation-management/internal/domain/customer"
	"reservation-management/internal/infra"
	"reservation-management/internal/pkg/audit"
	"reservation-management/internal/pkg/clock"
	"reservation-management/internal/pkg/errs"
	"reservation-management/internal/pkg/patch"
	"reservation-management/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateNationalID = errs.New("national ID already registered")

type CreateCustomerParams struct {
	Name        string
	DateOfBirth time.Time
	NationalID  string
	Email       string
}

// UpdateCustomerParams carries a partial field set: nil (and blank for
// strings) means "leave unchanged".
type UpdateCustomerParams struct {
	Name        *string
	DateOfBirth *time.Time
	NationalID  *string
	Email       *string
}

type CustomerCommands interface {
	Create(ctx context.Context, params CreateCustomerParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateCustomerParams) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerCommandsImpl struct {
	uow     shared.UnitOfWork
	stamper *audit.Stamper
	clock   clock.Clock
}

func NewCustomerCommands(uow shared.UnitOfWork, stamper *audit.Stamper, clk clock.Clock) CustomerCommands {
	return &customerCommandsImpl{uow: uow, stamper: stamper, clock: clk}
}

func (c *customerCommandsImpl) Create(ctx context.Context, params CreateCustomerParams) (uuid.UUID, error) {
	entity, err := customer.NewCustomer(params.Name, params.DateOfBirth, params.NationalID, params.Email, c.clock.Now())
	if err != nil {
		if errors.Is(err, customer.ErrUnderage) {
			return uuid.Nil, errs.ErrAgeRestriction
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Customers().Create(ctx, tx.DB(), entity, c.stamper.NewStamp(ctx))
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrDuplicateNationalID
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

func (c *customerCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateCustomerParams) (uuid.UUID, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().CustomerByID(ctx, id)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.ErrCustomerNotFound
			}
			return errs.Mark(readErr, errs.ErrDatabaseOperationFailed)
		}

		merged := customer.ReconstructCustomer(
			snap.ID,
			patch.String(params.Name, snap.Name),
			patch.Coalesce(params.DateOfBirth, snap.DateOfBirth),
			patch.String(params.NationalID, snap.NationalID),
			patch.String(params.Email, snap.Email),
		)

		updateErr := tx.Customers().Update(ctx, tx.DB(), merged, c.stamper.Refresh(ctx, snap.Stamp))
		if updateErr != nil {
			if infra.IsKind(updateErr, infra.KindDuplicateKey) {
				return ErrDuplicateNationalID
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

// Delete refuses to remove a customer still referenced by a reservation.
// The guard runs inside the delete transaction so a reservation cannot be
// created against the customer mid-deletion.
func (c *customerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, readErr := tx.Reads().CustomerByID(ctx, id); readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.ErrCustomerNotFound
			}
			return errs.Mark(readErr, errs.ErrDatabaseOperationFailed)
		}

		referenced, refErr := tx.Reservations().ExistsByCustomer(ctx, tx.DB(), id)
		if refErr != nil {
			return errs.Mark(refErr, errs.ErrDatabaseOperationFailed)
		}
		if referenced {
			return errs.ErrReferentialConflict
		}

		if delErr := tx.Customers().Delete(ctx, tx.DB(), id); delErr != nil {
			return errs.Mark(delErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
