package domain

import "strings"

type SeatTier string

const (
	SeatTierStandard SeatTier = "STANDARD"
	SeatTierPremium  SeatTier = "PREMIUM"
)

func (t SeatTier) Valid() bool {
	return t == SeatTierStandard || t == SeatTierPremium
}

// Code returns the single-character form used in persisted records.
func (t SeatTier) Code() string {
	switch t {
	case SeatTierStandard:
		return "S"
	case SeatTierPremium:
		return "P"
	default:
		return ""
	}
}

// ParseSeatTier accepts the full name or the record code, case-insensitive.
func ParseSeatTier(s string) (SeatTier, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S", string(SeatTierStandard):
		return SeatTierStandard, nil
	case "P", string(SeatTierPremium):
		return SeatTierPremium, nil
	default:
		return "", ErrUnknownSeatTier
	}
}

type PassengerTier string

const (
	PassengerTierGold   PassengerTier = "GOLD"
	PassengerTierSilver PassengerTier = "SILVER"
	PassengerTierNormal PassengerTier = "NORMAL"
)

var tierMultipliers = map[PassengerTier]float64{
	PassengerTierGold:   0.75,
	PassengerTierSilver: 0.85,
	PassengerTierNormal: 1.00,
}

func (t PassengerTier) Valid() bool {
	_, ok := tierMultipliers[t]
	return ok
}

// Multiplier is the discount factor applied to the fare. Unknown tiers pay full price.
func (t PassengerTier) Multiplier() float64 {
	if m, ok := tierMultipliers[t]; ok {
		return m
	}
	return 1.00
}

func ParsePassengerTier(s string) (PassengerTier, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "G", string(PassengerTierGold):
		return PassengerTierGold, nil
	case "S", string(PassengerTierSilver):
		return PassengerTierSilver, nil
	case "N", string(PassengerTierNormal):
		return PassengerTierNormal, nil
	default:
		return "", ErrUnknownPassengerTier
	}
}
