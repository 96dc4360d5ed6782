//go:build unit || e2e

package builder

import (
	"time"

	domcustomer "reservation-management/internal/domain/customer"
	reqdto "reservation-management/internal/handler/dto/request"
	"reservation-management/internal/usecase/queries"
	"reservation-management/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID          uuid.UUID
	Name        string
	DateOfBirth time.Time
	NationalID  string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	now := time.Now()
	return &CustomerBuilder{
		ID:          uuid.New(),
		Name:        "John Miller",
		DateOfBirth: time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC),
		NationalID:  "AB123456",
		Email:       "john.miller@example.com",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) BuildDomain(now time.Time) (*domcustomer.Customer, error) {
	return domcustomer.NewCustomer(b.Name, b.DateOfBirth, b.NationalID, b.Email, now)
}

func (b *CustomerBuilder) BuildSnapshot() *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:          b.ID,
		Name:        b.Name,
		DateOfBirth: b.DateOfBirth,
		NationalID:  b.NationalID,
		Email:       b.Email,
	}
}

func (b *CustomerBuilder) BuildView() *queries.CustomerView {
	return &queries.CustomerView{
		ID:          b.ID,
		Name:        b.Name,
		DateOfBirth: b.DateOfBirth,
		NationalID:  b.NationalID,
		Email:       b.Email,
		CreatedBy:   "system",
		CreatedAt:   b.CreatedAt,
		UpdatedBy:   "system",
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *CustomerBuilder) BuildCreateRequestDTO() reqdto.CreateCustomerRequest {
	return reqdto.CreateCustomerRequest{
		Name:        b.Name,
		DateOfBirth: b.DateOfBirth,
		NationalID:  b.NationalID,
		Email:       b.Email,
	}
}

func (b *CustomerBuilder) BuildUpdateRequestDTO() reqdto.UpdateCustomerRequest {
	name := b.Name
	email := b.Email
	return reqdto.UpdateCustomerRequest{
		Name:  &name,
		Email: &email,
	}
}
