package reservation

const (
	// DiscountMonths is the duration at which the long-stay discount kicks in.
	DiscountMonths = 12
	// DiscountPercent is the long-stay discount applied to the derived price.
	DiscountPercent = 10.0
	// MaxDurationMonths is the exclusive upper bound on reservation duration.
	MaxDurationMonths = 36
)
