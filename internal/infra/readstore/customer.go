package readstore

import (
	"context"

	"reservation-management/internal/infra"
	"reservation-management/internal/pkg/pgconv"
	"reservation-management/internal/usecase/queries"

	"github.com/google/uuid"
)

const customerColumns = `id, name, date_of_birth, national_id, email,
	created_by, created_at, updated_by, updated_at`

type CustomerReadStore struct {
	db infra.DBTX
}

func NewCustomerReadStore(db infra.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: db}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)

	view, err := scanCustomer(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}

	return view, nil
}

func (r *CustomerReadStore) FindAll(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var result []*queries.CustomerView
	for rows.Next() {
		view, scanErr := scanCustomer(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customer rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*queries.CustomerView, error) {
	var view queries.CustomerView
	err := row.Scan(
		&view.ID, &view.Name, &view.DateOfBirth, &view.NationalID, &view.Email,
		&view.CreatedBy, &view.CreatedAt, &view.UpdatedBy, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &view, nil
}
