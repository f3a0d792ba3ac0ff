package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrTrainNotFound   = errors.New("train not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrStaffNotFound   = errors.New("staff not found")
)

var (
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInsufficientSeats    = errors.New("insufficient seats")
	ErrTrainDiscontinued    = errors.New("train is discontinued")
	ErrUnknownSeatTier      = errors.New("unknown seat tier")
	ErrUnknownPassengerTier = errors.New("unknown passenger tier")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account locked")
)

var (
	ErrValidation           = errors.New("validation error")
	ErrDuplicateDestination = errors.New("destination already served by an active train")
	ErrIdentifierExhausted  = errors.New("identifier space exhausted")
)

// AccountLockedError is returned by a rejected login while the lockout is in force.
type AccountLockedError struct {
	Until            time.Time
	MinutesRemaining int
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked, try again in %d minute(s)", e.MinutesRemaining)
}

func (e *AccountLockedError) Unwrap() error { return ErrAccountLocked }

// FieldError describes a rejected field value. ConflictField is set when the
// rule compares the value with another field of the same record.
type FieldError struct {
	Field         string
	Value         any
	Rule          string
	ConflictField string
	ConflictValue any
}

func (e *FieldError) Error() string {
	if e.ConflictField != "" {
		return fmt.Sprintf("%s: %s %v %s %s (current %v)",
			ErrValidation, e.Field, e.Value, e.Rule, e.ConflictField, e.ConflictValue)
	}
	return fmt.Sprintf("%s: %s %v %s", ErrValidation, e.Field, e.Value, e.Rule)
}

func (e *FieldError) Unwrap() error { return ErrValidation }
