// Package inventory applies seat reservations to a train's tier counters.
//
// Both operations work on the value passed in and return the updated copy, so
// the caller decides when the change is persisted. Callers must pass the
// freshly loaded train record, never a copy held across user interaction.
package inventory

import (
	"fmt"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
)

// Reserve takes qty seats of the tier. Only the tier counter changes.
func Reserve(train domain.Train, tier domain.SeatTier, qty int) (domain.Train, error) {
	if qty <= 0 {
		return train, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, qty)
	}
	if !tier.Valid() {
		return train, fmt.Errorf("%w: %q", domain.ErrUnknownSeatTier, tier)
	}

	available := train.Seats(tier)
	if qty > available {
		return train, fmt.Errorf("%w: train %s %s requested %d, available %d",
			domain.ErrInsufficientSeats, train.ID, tier, qty, available)
	}

	return train.WithSeats(tier, available-qty), nil
}

// Release returns qty seats to the tier counter. There is no upper bound:
// the booking's recorded quantity is trusted.
func Release(train domain.Train, tier domain.SeatTier, qty int) domain.Train {
	if qty <= 0 || !tier.Valid() {
		return train
	}
	return train.WithSeats(tier, train.Seats(tier)+qty)
}
