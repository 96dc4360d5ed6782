package readstore

import (
	"context"

	"reservation-management/internal/infra"
	"reservation-management/internal/pkg/pgconv"
	"reservation-management/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const roomColumns = `id, number, description, size, price_per_month, busy, active,
	created_by, created_at, updated_by, updated_at`

type RoomReadStore struct {
	db infra.DBTX
}

func NewRoomReadStore(db infra.DBTX) *RoomReadStore {
	return &RoomReadStore{db: db}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)

	view, err := scanRoom(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	return view, nil
}

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY number`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	return collectRooms(rows)
}

func (r *RoomReadStore) FindByBusy(ctx context.Context, busy bool) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms WHERE busy = $1 ORDER BY number`, busy)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms by busy flag", err)
	}
	defer rows.Close()

	return collectRooms(rows)
}

func collectRooms(rows pgx.Rows) ([]*queries.RoomView, error) {
	var result []*queries.RoomView
	for rows.Next() {
		view, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	return result, nil
}

func scanRoom(row rowScanner) (*queries.RoomView, error) {
	var view queries.RoomView
	err := row.Scan(
		&view.ID, &view.Number, &view.Description, &view.Size, &view.PricePerMonth,
		&view.Busy, &view.Active,
		&view.CreatedBy, &view.CreatedAt, &view.UpdatedBy, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &view, nil
}
