package domain

import "time"

// ContactInfo is the identity data shared by passengers and staff.
type ContactInfo struct {
	Name      string `json:"name"`
	ContactNo string `json:"contact_no"`
	IC        string `json:"ic"`
}

type Passenger struct {
	ContactInfo
	Tier PassengerTier `json:"tier"`
}

type Staff struct {
	ContactInfo
	ID              string     `json:"id"`
	PasswordHash    string     `json:"-"`
	BookingsHandled int        `json:"bookings_handled"`
	FailedAttempts  int        `json:"failed_attempts"`
	LockUntil       *time.Time `json:"lock_until,omitempty"`
}

func (s Staff) GetID() string { return s.ID }

// LockedAt reports whether the account is still locked at the given instant.
func (s Staff) LockedAt(now time.Time) bool {
	return s.LockUntil != nil && now.Before(*s.LockUntil)
}

type RegisterStaffInput struct {
	ContactInfo
	Password string
}
