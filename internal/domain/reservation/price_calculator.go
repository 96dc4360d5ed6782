package reservation

type PriceCalculator interface {
	PriceFor(monthlyRate float64, durationMonths int) float64
	WithDiscount(price, percentage float64) float64
}

// StandardPriceCalculator derives the reservation price from the room's
// monthly rate. Pure computation, no state.
type StandardPriceCalculator struct{}

func NewStandardPriceCalculator() *StandardPriceCalculator {
	return &StandardPriceCalculator{}
}

func (c *StandardPriceCalculator) PriceFor(monthlyRate float64, durationMonths int) float64 {
	return monthlyRate * float64(durationMonths)
}

func (c *StandardPriceCalculator) WithDiscount(price, percentage float64) float64 {
	discount := price * percentage / 100
	return price - discount
}
