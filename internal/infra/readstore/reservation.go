package readstore

import (
	"context"
	"time"

	"reservation-management/internal/infra"
	"reservation-management/internal/pkg/pgconv"
	"reservation-management/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationSelect = `
	SELECT r.id, r.code, r.customer_id, c.name, r.room_id, rm.number,
		r.price, r.description, r.duration, r.start_date, r.end_date, r.active,
		r.created_by, r.created_at, r.updated_by, r.updated_at
	FROM reservations r
	JOIN customers c ON c.id = r.customer_id
	JOIN rooms rm ON rm.id = r.room_id
`

type ReservationReadStore struct {
	db infra.DBTX
}

func NewReservationReadStore(db infra.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationSelect+` WHERE r.id = $1`, id)

	view, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return view, nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationSelect+` ORDER BY r.created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// Search keeps the two predicates independent: a reservation matches when its
// active flag equals the requested one OR its end date falls inside the
// window. A nil active flag contributes nothing to the OR.
func (r *ReservationReadStore) Search(ctx context.Context, active *bool, endsFrom, endsTo time.Time) ([]*queries.ReservationView, error) {
	const query = reservationSelect + `
		WHERE ($1::boolean IS NOT NULL AND r.active = $1)
			OR (r.end_date >= $2 AND r.end_date <= $3)
		ORDER BY r.end_date
	`
	rows, err := r.db.Query(ctx, query,
		pgconv.BoolPtrToPgtype(active), pgconv.DateToPgtype(endsFrom), pgconv.DateToPgtype(endsTo))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationSelect+` WHERE r.customer_id = $1 ORDER BY r.created_at`, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by customer", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationReadStore) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationSelect+` WHERE r.room_id = $1 ORDER BY r.created_at`, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by room", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func collectReservations(rows pgx.Rows) ([]*queries.ReservationView, error) {
	var result []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

func scanReservation(row rowScanner) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := row.Scan(
		&view.ID, &view.Code, &view.CustomerID, &view.CustomerName, &view.RoomID, &view.RoomNumber,
		&view.Price, &view.Description, &view.Duration, &view.StartDate, &view.EndDate, &view.Active,
		&view.CreatedBy, &view.CreatedAt, &view.UpdatedBy, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &view, nil
}
