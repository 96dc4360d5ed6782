//go:build unit || e2e

package builder

import (
	"time"

	domroom "reservation-management/internal/domain/room"
	reqdto "reservation-management/internal/handler/dto/request"
	"reservation-management/internal/usecase/queries"
	"reservation-management/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID            uuid.UUID
	Number        int
	Description   string
	Size          float64
	PricePerMonth float64
	Busy          bool
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		ID:            uuid.New(),
		Number:        101,
		Description:   "Corner room with balcony",
		Size:          24.5,
		PricePerMonth: 800.0,
		Busy:          false,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(b.Number, b.Description, b.Size, b.PricePerMonth, b.Active)
}

func (b *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:            b.ID,
		Number:        b.Number,
		Description:   b.Description,
		Size:          b.Size,
		PricePerMonth: b.PricePerMonth,
		Busy:          b.Busy,
		Active:        b.Active,
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:            b.ID,
		Number:        b.Number,
		Description:   b.Description,
		Size:          b.Size,
		PricePerMonth: b.PricePerMonth,
		Busy:          b.Busy,
		Active:        b.Active,
		CreatedBy:     "system",
		CreatedAt:     b.CreatedAt,
		UpdatedBy:     "system",
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Number:        b.Number,
		Description:   b.Description,
		Size:          b.Size,
		PricePerMonth: b.PricePerMonth,
		Active:        b.Active,
	}
}

func (b *RoomBuilder) BuildUpdateRequestDTO() reqdto.UpdateRoomRequest {
	description := b.Description
	price := b.PricePerMonth
	return reqdto.UpdateRoomRequest{
		Description:   &description,
		PricePerMonth: &price,
	}
}
