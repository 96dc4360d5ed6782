package repository

import (
	"context"

	"reservation-management/internal/domain/customer"
	"reservation-management/internal/infra"
	"reservation-management/internal/pkg/audit"
	"reservation-management/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Create(ctx context.Context, db infra.DBTX, c *customer.Customer, stamp audit.Stamp) (uuid.UUID, error) {
	const query = `
		INSERT INTO customers (id, name, date_of_birth, national_id, email,
			created_by, created_at, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := db.Exec(ctx, query,
		c.ID(), c.Name(), pgconv.DateToPgtype(c.DateOfBirth()), c.NationalID(), c.Email(),
		stamp.CreatedBy, pgconv.TimeToPgtype(stamp.CreatedAt),
		stamp.UpdatedBy, pgconv.TimeToPgtype(stamp.UpdatedAt),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}

	return c.ID(), nil
}

func (r *CustomerRepository) Update(ctx context.Context, db infra.DBTX, c *customer.Customer, stamp audit.Stamp) error {
	const query = `
		UPDATE customers
		SET name = $2, date_of_birth = $3, national_id = $4, email = $5,
			updated_by = $6, updated_at = $7
		WHERE id = $1
	`
	tag, err := db.Exec(ctx, query,
		c.ID(), c.Name(), pgconv.DateToPgtype(c.DateOfBirth()), c.NationalID(), c.Email(),
		stamp.UpdatedBy, pgconv.TimeToPgtype(stamp.UpdatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}

	return nil
}
