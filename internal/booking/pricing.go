package booking

// PricingStrategy computes the charge for a booking from its court's hourly
// rate and its interval.
type PricingStrategy interface {
	Price(pricePerHour float64, start, end TimeOfDay) float64
}

// FlatPricing charges the hourly rate once per booking regardless of
// duration. This matches the original dashboard's revenue figures, which may
// be intentional flat-rate pricing rather than a missing multiplication.
type FlatPricing struct{}

func (FlatPricing) Price(pricePerHour float64, start, end TimeOfDay) float64 {
	return pricePerHour
}

// HourlyPricing charges the hourly rate scaled by booking duration.
type HourlyPricing struct{}

func (HourlyPricing) Price(pricePerHour float64, start, end TimeOfDay) float64 {
	return pricePerHour * float64(end-start) / 60
}
