package response

import (
	"time"

	"reservation-management/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	CustomerID   uuid.UUID `json:"customerId"`
	CustomerName string    `json:"customerName"`
	RoomID       uuid.UUID `json:"roomId"`
	RoomNumber   int       `json:"roomNumber"`
	Price        float64   `json:"price"`
	Description  string    `json:"description"`
	Duration     int       `json:"duration"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Active       bool      `json:"active"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedBy    string    `json:"updatedBy"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           v.ID,
		Code:         v.Code,
		CustomerID:   v.CustomerID,
		CustomerName: v.CustomerName,
		RoomID:       v.RoomID,
		RoomNumber:   v.RoomNumber,
		Price:        v.Price,
		Description:  v.Description,
		Duration:     v.Duration,
		StartDate:    v.StartDate,
		EndDate:      v.EndDate,
		Active:       v.Active,
		CreatedBy:    v.CreatedBy,
		CreatedAt:    v.CreatedAt,
		UpdatedBy:    v.UpdatedBy,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	responses := make([]*ReservationResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromReservationView(v))
	}
	return responses
}
