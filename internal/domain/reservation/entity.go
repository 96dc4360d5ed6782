package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCode          = errors.New("reservation code cannot be empty")
	ErrInvalidDuration    = errors.New("duration must be at least one month")
	ErrDurationOutOfRange = errors.New("duration cannot reach 36 months")
	ErrMissingStartDate   = errors.New("start date is required")
)

type Reservation struct {
	id          uuid.UUID
	code        string
	customerID  uuid.UUID
	roomID      uuid.UUID
	price       float64
	description string
	duration    int
	startDate   time.Time
	endDate     time.Time
	active      bool
}

func ReconstructReservation(
	id uuid.UUID,
	code string,
	customerID, roomID uuid.UUID,
	price float64,
	description string,
	duration int,
	startDate, endDate time.Time,
	active bool,
) *Reservation {
	return &Reservation{
		id:          id,
		code:        code,
		customerID:  customerID,
		roomID:      roomID,
		price:       price,
		description: description,
		duration:    duration,
		startDate:   startDate,
		endDate:     endDate,
		active:      active,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) Code() string          { return r.code }
func (r *Reservation) CustomerID() uuid.UUID { return r.customerID }
func (r *Reservation) RoomID() uuid.UUID     { return r.roomID }
func (r *Reservation) Price() float64        { return r.price }
func (r *Reservation) Description() string   { return r.description }
func (r *Reservation) Duration() int         { return r.duration }
func (r *Reservation) StartDate() time.Time  { return r.startDate }
func (r *Reservation) EndDate() time.Time    { return r.endDate }
func (r *Reservation) IsActive() bool        { return r.active }

func (r *Reservation) HasEnded(now time.Time) bool {
	return now.After(r.endDate)
}
