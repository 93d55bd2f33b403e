package booking

import "math"

type PriceCalculator interface {
	TotalCents(monthlyRentCents int64, period DateRange) int64
}

// ProRataPriceCalculator charges a nightly rate of monthlyRent/30, rounded to
// the nearest cent.
type ProRataPriceCalculator struct{}

func NewProRataPriceCalculator() *ProRataPriceCalculator {
	return &ProRataPriceCalculator{}
}

func (pc *ProRataPriceCalculator) TotalCents(monthlyRentCents int64, period DateRange) int64 {
	nights := period.Nights()
	if nights < 1 {
		nights = 1
	}
	nightly := math.Round(float64(monthlyRentCents) / 30.0)
	return int64(nightly) * int64(nights)
}
