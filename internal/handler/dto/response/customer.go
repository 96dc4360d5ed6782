package response

import (
	"time"

	"reservation-management/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	NationalID  string    `json:"nationalId"`
	Email       string    `json:"email"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedBy   string    `json:"updatedBy"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromCustomerView(v *queries.CustomerView) *CustomerResponse {
	return &CustomerResponse{
		ID:          v.ID,
		Name:        v.Name,
		DateOfBirth: v.DateOfBirth,
		NationalID:  v.NationalID,
		Email:       v.Email,
		CreatedBy:   v.CreatedBy,
		CreatedAt:   v.CreatedAt,
		UpdatedBy:   v.UpdatedBy,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromCustomerViews(views []*queries.CustomerView) []*CustomerResponse {
	responses := make([]*CustomerResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromCustomerView(v))
	}
	return responses
}
