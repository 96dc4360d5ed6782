package repository

import (
	"context"

	"reservation-management/internal/domain/room"
	"reservation-management/internal/infra"
	"reservation-management/internal/pkg/audit"
	"reservation-management/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Create(ctx context.Context, db infra.DBTX, rm *room.Room, stamp audit.Stamp) (uuid.UUID, error) {
	const query = `
		INSERT INTO rooms (id, number, description, size, price_per_month, busy, active,
			created_by, created_at, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := db.Exec(ctx, query,
		rm.ID(), rm.Number(), rm.Description(), rm.Size(), rm.PricePerMonth(), rm.Busy(), rm.Active(),
		stamp.CreatedBy, pgconv.TimeToPgtype(stamp.CreatedAt),
		stamp.UpdatedBy, pgconv.TimeToPgtype(stamp.UpdatedAt),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}

	return rm.ID(), nil
}

func (r *RoomRepository) Update(ctx context.Context, db infra.DBTX, rm *room.Room, stamp audit.Stamp) error {
	const query = `
		UPDATE rooms
		SET number = $2, description = $3, size = $4, price_per_month = $5,
			busy = $6, active = $7, updated_by = $8, updated_at = $9
		WHERE id = $1
	`
	tag, err := db.Exec(ctx, query,
		rm.ID(), rm.Number(), rm.Description(), rm.Size(), rm.PricePerMonth(), rm.Busy(), rm.Active(),
		stamp.UpdatedBy, pgconv.TimeToPgtype(stamp.UpdatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

// ClaimIfFree transitions the room from free to busy in a single conditional
// update. Concurrent claims serialize on the row: at most one caller sees a
// row change, the rest observe busy.
func (r *RoomRepository) ClaimIfFree(ctx context.Context, db infra.DBTX, id uuid.UUID) (bool, error) {
	tag, err := db.Exec(ctx, `UPDATE rooms SET busy = TRUE WHERE id = $1 AND NOT busy`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim room", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *RoomRepository) Release(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	if _, err := db.Exec(ctx, `UPDATE rooms SET busy = FALSE WHERE id = $1`, id); err != nil {
		return infra.WrapRepoErr("failed to release room", err)
	}

	return nil
}
