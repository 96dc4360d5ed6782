package reservation

import (
	"strings"
	"time"

	"reservation-management/internal/pkg/dateutil"

	"github.com/google/uuid"
)

// BookingInput carries the caller-supplied reservation fields. Price and
// EndDate are advisory only: the factory derives both and silently
// overwrites whatever the caller sent.
type BookingInput struct {
	Code        string
	CustomerID  uuid.UUID
	RoomID      uuid.UUID
	Price       float64
	Description string
	Duration    int
	StartDate   time.Time
	EndDate     time.Time
	Active      bool
}

type Factory struct {
	priceCalculator PriceCalculator
}

func NewFactory(priceCalculator PriceCalculator) *Factory {
	return &Factory{priceCalculator: priceCalculator}
}

// NewReservation derives the end date and price from the room's monthly rate
// and enforces the duration range. The long-stay discount is applied to the
// derived price, not merely computed.
func (f *Factory) NewReservation(input BookingInput, monthlyRate float64) (*Reservation, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	if input.Duration < 1 {
		return nil, ErrInvalidDuration
	}
	if input.StartDate.IsZero() {
		return nil, ErrMissingStartDate
	}

	endDate := dateutil.AddMonths(input.StartDate, input.Duration)

	price := f.priceCalculator.PriceFor(monthlyRate, input.Duration)
	if input.Duration >= DiscountMonths {
		price = f.priceCalculator.WithDiscount(price, DiscountPercent)
	}

	if input.Duration >= MaxDurationMonths {
		return nil, ErrDurationOutOfRange
	}

	return &Reservation{
		id:          uuid.New(),
		code:        code,
		customerID:  input.CustomerID,
		roomID:      input.RoomID,
		price:       price,
		description: strings.TrimSpace(input.Description),
		duration:    input.Duration,
		startDate:   input.StartDate,
		endDate:     endDate,
		active:      input.Active,
	}, nil
}
