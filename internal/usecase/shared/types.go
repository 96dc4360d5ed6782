package shared

import (
	"time"

	"reservation-management/internal/pkg/audit"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types

type CustomerSnapshot struct {
	ID          uuid.UUID
	Name        string
	DateOfBirth time.Time
	NationalID  string
	Email       string
	Stamp       audit.Stamp
}

type RoomSnapshot struct {
	ID            uuid.UUID
	Number        int
	Description   string
	Size          float64
	PricePerMonth float64
	Busy          bool
	Active        bool
	Stamp         audit.Stamp
}

type ReservationSnapshot struct {
	ID          uuid.UUID
	Code        string
	CustomerID  uuid.UUID
	RoomID      uuid.UUID
	Price       float64
	Description string
	Duration    int
	StartDate   time.Time
	EndDate     time.Time
	Active      bool
	Stamp       audit.Stamp
}
