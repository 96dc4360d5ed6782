package request

import (
	"reservation-management/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Number        int     `json:"number" binding:"required,gt=0"`
	Description   string  `json:"description"`
	Size          float64 `json:"size" binding:"required,gt=0"`
	PricePerMonth float64 `json:"pricePerMonth" binding:"required,gt=0"`
	Active        bool    `json:"active"`
}

func (r CreateRoomRequest) ToParams() commands.CreateRoomParams {
	return commands.CreateRoomParams{
		Number:        r.Number,
		Description:   r.Description,
		Size:          r.Size,
		PricePerMonth: r.PricePerMonth,
		Active:        r.Active,
	}
}

type UpdateRoomRequest struct {
	Number        *int     `json:"number,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Size          *float64 `json:"size,omitempty"`
	PricePerMonth *float64 `json:"pricePerMonth,omitempty"`
	Busy          *bool    `json:"busy,omitempty"`
	Active        *bool    `json:"active,omitempty"`
}

func (r UpdateRoomRequest) ToParams() commands.UpdateRoomParams {
	return commands.UpdateRoomParams{
		Number:        r.Number,
		Description:   r.Description,
		Size:          r.Size,
		PricePerMonth: r.PricePerMonth,
		Busy:          r.Busy,
		Active:        r.Active,
	}
}
