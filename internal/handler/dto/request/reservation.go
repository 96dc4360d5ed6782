package request

import (
	"time"

	"reservation-management/internal/usecase/commands"

	"github.com/google/uuid"
)

// Price and EndDate are advisory: the booking workflow derives both from
// the room rate and the duration, overwriting whatever the caller sent.
type CreateReservationRequest struct {
	Code        string     `json:"code" binding:"required"`
	CustomerID  uuid.UUID  `json:"customerId" binding:"required"`
	RoomID      uuid.UUID  `json:"roomId" binding:"required"`
	Price       float64    `json:"price"`
	Description string     `json:"description"`
	Duration    int        `json:"duration" binding:"required,gt=0"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Active      bool       `json:"active"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	params := commands.CreateReservationParams{
		Code:        r.Code,
		CustomerID:  r.CustomerID,
		RoomID:      r.RoomID,
		Price:       r.Price,
		Description: r.Description,
		Duration:    r.Duration,
		StartDate:   r.StartDate,
		Active:      r.Active,
	}
	if r.EndDate != nil {
		params.EndDate = *r.EndDate
	}
	return params
}

type UpdateReservationRequest struct {
	Code        *string    `json:"code,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Description *string    `json:"description,omitempty"`
	Duration    *int       `json:"duration,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Active      *bool      `json:"active,omitempty"`
}

func (r UpdateReservationRequest) ToParams() commands.UpdateReservationParams {
	return commands.UpdateReservationParams{
		Code:        r.Code,
		Price:       r.Price,
		Description: r.Description,
		Duration:    r.Duration,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Active:      r.Active,
	}
}
