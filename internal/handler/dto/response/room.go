package response

import (
	"time"

	"reservation-management/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID            uuid.UUID `json:"id"`
	Number        int       `json:"number"`
	Description   string    `json:"description"`
	Size          float64   `json:"size"`
	PricePerMonth float64   `json:"pricePerMonth"`
	Busy          bool      `json:"busy"`
	Active        bool      `json:"active"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedBy     string    `json:"updatedBy"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:            v.ID,
		Number:        v.Number,
		Description:   v.Description,
		Size:          v.Size,
		PricePerMonth: v.PricePerMonth,
		Busy:          v.Busy,
		Active:        v.Active,
		CreatedBy:     v.CreatedBy,
		CreatedAt:     v.CreatedAt,
		UpdatedBy:     v.UpdatedBy,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	responses := make([]*RoomResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromRoomView(v))
	}
	return responses
}
