package validation

import (
	"errors"
	"testing"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTrain() domain.Train {
	return domain.Train{
		ID:              "T001",
		Destination:     "Kuala Lumpur",
		StandardSeatQty: 10,
		PremiumSeatQty:  5,
		StandardPrice:   50.00,
		PremiumPrice:    80.00,
		Status:          domain.TrainStatusActive,
	}
}

func fieldError(t *testing.T, err error) *domain.FieldError {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	var fe *domain.FieldError
	require.True(t, errors.As(err, &fe))
	return fe
}

func TestTrain_Valid(t *testing.T) {
	assert.NoError(t, New().Train(validTrain()))
}

func TestTrain_Boundaries(t *testing.T) {
	v := New()

	tr := validTrain()
	tr.StandardSeatQty, tr.PremiumSeatQty = 999, 998
	tr.StandardPrice, tr.PremiumPrice = 999.98, 999.99
	assert.NoError(t, v.Train(tr))

	tr = validTrain()
	tr.StandardSeatQty, tr.PremiumSeatQty = 1, 0
	tr.StandardPrice, tr.PremiumPrice = 50.00, 50.01
	assert.NoError(t, v.Train(tr))
}

func TestTrain_RangeRules(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		mut   func(*domain.Train)
		field string
	}{
		{"standard seats zero", func(tr *domain.Train) { tr.StandardSeatQty = 0; tr.PremiumSeatQty = 0 }, FieldStandardSeatQty},
		{"standard seats too many", func(tr *domain.Train) { tr.StandardSeatQty = 1000 }, FieldStandardSeatQty},
		{"premium seats negative", func(tr *domain.Train) { tr.PremiumSeatQty = -1 }, FieldPremiumSeatQty},
		{"standard price too low", func(tr *domain.Train) { tr.StandardPrice = 49.99 }, FieldStandardPrice},
		{"premium price too high", func(tr *domain.Train) { tr.PremiumPrice = 1000 }, FieldPremiumPrice},
		{"bad id", func(tr *domain.Train) { tr.ID = "X001" }, FieldID},
		{"destination digits", func(tr *domain.Train) { tr.Destination = "Ipoh 2" }, FieldDestination},
		{"destination too long", func(tr *domain.Train) { tr.Destination = "Sungai Petani Utara" }, FieldDestination},
		{"destination blank", func(tr *domain.Train) { tr.Destination = "   " }, FieldDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := validTrain()
			tt.mut(&tr)
			fe := fieldError(t, v.Train(tr))
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestTrain_PremiumSeatsNotBelowStandard(t *testing.T) {
	tr := validTrain()
	tr.PremiumSeatQty = tr.StandardSeatQty

	fe := fieldError(t, New().Train(tr, FieldPremiumSeatQty))

	assert.Equal(t, FieldPremiumSeatQty, fe.Field)
	assert.Equal(t, 10, fe.Value)
	assert.Equal(t, FieldStandardSeatQty, fe.ConflictField)
	assert.Equal(t, 10, fe.ConflictValue)
	assert.Equal(t, "must be less than", fe.Rule)
}

func TestTrain_StandardSeatsBelowPremium(t *testing.T) {
	tr := validTrain()
	tr.StandardSeatQty = 4

	fe := fieldError(t, New().Train(tr, FieldStandardSeatQty))

	assert.Equal(t, FieldStandardSeatQty, fe.Field)
	assert.Equal(t, FieldPremiumSeatQty, fe.ConflictField)
	assert.Equal(t, 5, fe.ConflictValue)
}

func TestTrain_UntouchedSeatRuleIsIgnored(t *testing.T) {
	tr := validTrain()
	tr.StandardSeatQty = 2 // drained by bookings, premium is 5
	v := New()

	assert.NoError(t, v.Train(tr, FieldStandardPrice))
	assert.NoError(t, v.Train(tr, FieldDestination))

	fe := fieldError(t, v.Train(tr, FieldStandardSeatQty))
	assert.Equal(t, FieldStandardSeatQty, fe.Field)
	assert.Equal(t, FieldPremiumSeatQty, fe.ConflictField)

	fe = fieldError(t, v.Train(tr))
	assert.Equal(t, FieldStandardSeatQty, fe.Field)
}

func TestTrain_StandardPriceNotBelowPremium(t *testing.T) {
	tr := validTrain()
	tr.StandardPrice = 80.00

	fe := fieldError(t, New().Train(tr, FieldStandardPrice))

	assert.Equal(t, FieldStandardPrice, fe.Field)
	assert.Equal(t, "must be less than", fe.Rule)
	assert.Equal(t, FieldPremiumPrice, fe.ConflictField)
	assert.Equal(t, 80.00, fe.ConflictValue)
	assert.Contains(t, fe.Error(), "premiumPrice")
}

func TestTrain_PremiumPriceNotAboveStandard(t *testing.T) {
	tr := validTrain()
	tr.PremiumPrice = 50.00
	tr.StandardPrice = 50.00

	fe := fieldError(t, New().Train(tr, FieldPremiumPrice))

	assert.Equal(t, FieldPremiumPrice, fe.Field)
	assert.Equal(t, "must be greater than", fe.Rule)
	assert.Equal(t, FieldStandardPrice, fe.ConflictField)
}
