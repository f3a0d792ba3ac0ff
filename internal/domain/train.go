package domain

import "time"

type TrainStatus string

const (
	TrainStatusActive       TrainStatus = "ACTIVE"
	TrainStatusDiscontinued TrainStatus = "DISCONTINUED"
)

type Train struct {
	ID              string      `json:"id"`
	Destination     string      `json:"destination"`
	Departure       time.Time   `json:"departure"`
	StandardSeatQty int         `json:"standard_seat_qty"`
	PremiumSeatQty  int         `json:"premium_seat_qty"`
	StandardPrice   float64     `json:"standard_price"`
	PremiumPrice    float64     `json:"premium_price"`
	Status          TrainStatus `json:"status"`
}

func (t Train) GetID() string { return t.ID }

func (t Train) IsActive() bool { return t.Status == TrainStatusActive }

// Seats returns the live seat counter for the tier.
func (t Train) Seats(tier SeatTier) int {
	if tier == SeatTierPremium {
		return t.PremiumSeatQty
	}
	return t.StandardSeatQty
}

func (t Train) Price(tier SeatTier) float64 {
	if tier == SeatTierPremium {
		return t.PremiumPrice
	}
	return t.StandardPrice
}

// WithSeats returns a copy with the tier counter replaced.
func (t Train) WithSeats(tier SeatTier, qty int) Train {
	if tier == SeatTierPremium {
		t.PremiumSeatQty = qty
	} else {
		t.StandardSeatQty = qty
	}
	return t
}

type CreateTrainInput struct {
	Destination     string
	Departure       time.Time
	StandardSeatQty int
	PremiumSeatQty  int
	StandardPrice   float64
	PremiumPrice    float64
}

// TrainPatch carries the proposed values of a train modification. Nil fields are left unchanged.
type TrainPatch struct {
	Destination     *string
	Departure       *time.Time
	StandardSeatQty *int
	PremiumSeatQty  *int
	StandardPrice   *float64
	PremiumPrice    *float64
}

func (p TrainPatch) Empty() bool {
	return p.Destination == nil && p.Departure == nil &&
		p.StandardSeatQty == nil && p.PremiumSeatQty == nil &&
		p.StandardPrice == nil && p.PremiumPrice == nil
}
