package request

import (
	"time"

	"reservation-management/internal/usecase/commands"
)

type CreateCustomerRequest struct {
	Name        string    `json:"name" binding:"required"`
	DateOfBirth time.Time `json:"dateOfBirth" binding:"required"`
	NationalID  string    `json:"nationalId" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
}

func (r CreateCustomerRequest) ToParams() commands.CreateCustomerParams {
	return commands.CreateCustomerParams{
		Name:        r.Name,
		DateOfBirth: r.DateOfBirth,
		NationalID:  r.NationalID,
		Email:       r.Email,
	}
}

// UpdateCustomerRequest fields are optional: absent (or blank string)
// fields keep their stored value.
type UpdateCustomerRequest struct {
	Name        *string    `json:"name,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	NationalID  *string    `json:"nationalId,omitempty"`
	Email       *string    `json:"email,omitempty"`
}

func (r UpdateCustomerRequest) ToParams() commands.UpdateCustomerParams {
	return commands.UpdateCustomerParams{
		Name:        r.Name,
		DateOfBirth: r.DateOfBirth,
		NationalID:  r.NationalID,
		Email:       r.Email,
	}
}
