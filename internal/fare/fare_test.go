package fare

import (
	"testing"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculator_Fare(t *testing.T) {
	calc := NewCalculator(DefaultTaxRate)

	tests := []struct {
		name string
		base float64
		tier domain.PassengerTier
		qty  int
		want float64
	}{
		{"gold single", 100.00, domain.PassengerTierGold, 1, 79.50},
		{"normal pair", 200.00, domain.PassengerTierNormal, 2, 424.00},
		{"silver pair", 50.00, domain.PassengerTierSilver, 2, 90.10},
		{"unknown tier pays full", 100.00, domain.PassengerTier("PLATINUM"), 1, 106.00},
		{"zero quantity", 100.00, domain.PassengerTierNormal, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, calc.Fare(tt.base, tt.tier, tt.qty), 0.0001)
		})
	}
}

func TestCompute_TaxIsMultiplicative(t *testing.T) {
	assert.InDelta(t, 79.5, Compute(100, 0.75, 1, 1.06), 1e-9)
	assert.InDelta(t, 75.0, Compute(100, 0.75, 1, 1.0), 1e-9)
}

func TestNewCalculator_DefaultsTaxRate(t *testing.T) {
	assert.Equal(t, DefaultTaxRate, NewCalculator(0).TaxRate())
	assert.Equal(t, 1.1, NewCalculator(1.1).TaxRate())
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 424.0, RoundCents(424.00000000000006))
	assert.Equal(t, 90.1, RoundCents(90.10000000000001))
	assert.Equal(t, 0.13, RoundCents(0.125000001))
}
