package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type CustomerView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	NationalID  string    `json:"national_id"`
	Email       string    `json:"email"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedBy   string    `json:"updated_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RoomView struct {
	ID            uuid.UUID `json:"id"`
	Number        int       `json:"number"`
	Description   string    `json:"description"`
	Size          float64   `json:"size"`
	PricePerMonth float64   `json:"price_per_month"`
	Busy          bool      `json:"busy"`
	Active        bool      `json:"active"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedBy     string    `json:"updated_by"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomNumber   int       `json:"room_number"`
	Price        float64   `json:"price"`
	Description  string    `json:"description"`
	Duration     int       `json:"duration"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Active       bool      `json:"active"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedBy    string    `json:"updated_by"`
	UpdatedAt    time.Time `json:"updated_at"`
}
