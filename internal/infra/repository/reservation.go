package repository

import (
	"context"

	"reservation-management/internal/domain/reservation"
	"reservation-management/internal/infra"
	"reservation-management/internal/pkg/audit"
	"reservation-management/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, db infra.DBTX, res *reservation.Reservation, stamp audit.Stamp) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations (id, code, customer_id, room_id, price, description,
			duration, start_date, end_date, active,
			created_by, created_at, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := db.Exec(ctx, query,
		res.ID(), res.Code(), res.CustomerID(), res.RoomID(), res.Price(), res.Description(),
		res.Duration(), pgconv.DateToPgtype(res.StartDate()), pgconv.DateToPgtype(res.EndDate()), res.IsActive(),
		stamp.CreatedBy, pgconv.TimeToPgtype(stamp.CreatedAt),
		stamp.UpdatedBy, pgconv.TimeToPgtype(stamp.UpdatedAt),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return res.ID(), nil
}

func (r *ReservationRepository) Update(ctx context.Context, db infra.DBTX, res *reservation.Reservation, stamp audit.Stamp) error {
	const query = `
		UPDATE reservations
		SET code = $2, price = $3, description = $4, duration = $5,
			start_date = $6, end_date = $7, active = $8,
			updated_by = $9, updated_at = $10
		WHERE id = $1
	`
	tag, err := db.Exec(ctx, query,
		res.ID(), res.Code(), res.Price(), res.Description(), res.Duration(),
		pgconv.DateToPgtype(res.StartDate()), pgconv.DateToPgtype(res.EndDate()), res.IsActive(),
		stamp.UpdatedBy, pgconv.TimeToPgtype(stamp.UpdatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) ExistsByCustomer(ctx context.Context, db infra.DBTX, customerID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reservations WHERE customer_id = $1)`, customerID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservations by customer", err)
	}

	return exists, nil
}

func (r *ReservationRepository) ExistsByRoom(ctx context.Context, db infra.DBTX, roomID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reservations WHERE room_id = $1)`, roomID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservations by room", err)
	}

	return exists, nil
}
