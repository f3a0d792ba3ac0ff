// Package fare prices bookings.
package fare

import (
	"math"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
)

// DefaultTaxRate is the multiplicative SST surcharge.
const DefaultTaxRate = 1.06

type Calculator struct {
	taxRate float64
}

func NewCalculator(taxRate float64) *Calculator {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	return &Calculator{taxRate: taxRate}
}

func (c *Calculator) TaxRate() float64 { return c.taxRate }

// Fare prices qty seats at basePrice for a passenger of the given tier, rounded to cents.
func (c *Calculator) Fare(basePrice float64, tier domain.PassengerTier, qty int) float64 {
	return RoundCents(Compute(basePrice, tier.Multiplier(), qty, c.taxRate))
}

// Compute is the unrounded fare formula.
func Compute(basePrice, tierMultiplier float64, qty int, taxRate float64) float64 {
	return basePrice * float64(qty) * tierMultiplier * taxRate
}

func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
