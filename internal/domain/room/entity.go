package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// MinSize is the smallest rentable floor area in square meters.
const MinSize = 10.0

var (
	ErrInvalidNumber = errors.New("room number must be positive")
	ErrRoomTooSmall  = errors.New("room size must be at least 10 square meters")
	ErrInvalidPrice  = errors.New("monthly price must be positive")
)

type Room struct {
	id            uuid.UUID
	number        int
	description   string
	size          float64
	pricePerMonth float64
	busy          bool
	active        bool
}

func NewRoom(number int, description string, size, pricePerMonth float64, active bool) (*Room, error) {
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	if size < MinSize {
		return nil, ErrRoomTooSmall
	}
	if pricePerMonth <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Room{
		id:            uuid.New(),
		number:        number,
		description:   strings.TrimSpace(description),
		size:          size,
		pricePerMonth: pricePerMonth,
		busy:          false,
		active:        active,
	}, nil
}

func ReconstructRoom(id uuid.UUID, number int, description string, size, pricePerMonth float64, busy, active bool) *Room {
	return &Room{
		id:            id,
		number:        number,
		description:   description,
		size:          size,
		pricePerMonth: pricePerMonth,
		busy:          busy,
		active:        active,
	}
}

func (r *Room) ID() uuid.UUID          { return r.id }
func (r *Room) Number() int            { return r.number }
func (r *Room) Description() string    { return r.description }
func (r *Room) Size() float64          { return r.size }
func (r *Room) PricePerMonth() float64 { return r.pricePerMonth }
func (r *Room) Busy() bool             { return r.busy }
func (r *Room) Active() bool           { return r.active }
