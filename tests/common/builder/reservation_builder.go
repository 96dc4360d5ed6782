//go:build unit || e2e

package builder

import (
	"time"

	domreservation "reservation-management/internal/domain/reservation"
	reqdto "reservation-management/internal/handler/dto/request"
	"reservation-management/internal/pkg/dateutil"
	"reservation-management/internal/usecase/queries"
	"reservation-management/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	Code         string
	CustomerID   uuid.UUID
	CustomerName string
	RoomID       uuid.UUID
	RoomNumber   int
	Price        float64
	Description  string
	Duration     int
	StartDate    time.Time
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		ID:           uuid.New(),
		Code:         "RES-0001",
		CustomerID:   uuid.New(),
		CustomerName: "John Miller",
		RoomID:       uuid.New(),
		RoomNumber:   101,
		Price:        4800.0,
		Description:  "Half-year stay",
		Duration:     6,
		StartDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) EndDate() time.Time {
	return dateutil.AddMonths(b.StartDate, b.Duration)
}

func (b *ReservationBuilder) BuildDomain() *domreservation.Reservation {
	return domreservation.ReconstructReservation(
		b.ID, b.Code, b.CustomerID, b.RoomID, b.Price,
		b.Description, b.Duration, b.StartDate, b.EndDate(), b.Active,
	)
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:          b.ID,
		Code:        b.Code,
		CustomerID:  b.CustomerID,
		RoomID:      b.RoomID,
		Price:       b.Price,
		Description: b.Description,
		Duration:    b.Duration,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate(),
		Active:      b.Active,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           b.ID,
		Code:         b.Code,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		RoomID:       b.RoomID,
		RoomNumber:   b.RoomNumber,
		Price:        b.Price,
		Description:  b.Description,
		Duration:     b.Duration,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate(),
		Active:       b.Active,
		CreatedBy:    "system",
		CreatedAt:    b.CreatedAt,
		UpdatedBy:    "system",
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Code:        b.Code,
		CustomerID:  b.CustomerID,
		RoomID:      b.RoomID,
		Price:       b.Price,
		Description: b.Description,
		Duration:    b.Duration,
		StartDate:   b.StartDate,
		Active:      b.Active,
	}
}

func (b *ReservationBuilder) BuildUpdateRequestDTO() reqdto.UpdateReservationRequest {
	description := b.Description
	active := b.Active
	return reqdto.UpdateReservationRequest{
		Description: &description,
		Active:      &active,
	}
}
