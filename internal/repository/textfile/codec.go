package textfile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
)

const (
	separator  = "|"
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	statusActive       = "A"
	statusDiscontinued = "D"
)

// Codec converts one record to and from its line form.
type Codec[T any] interface {
	Encode(v T) string
	Decode(line string) (T, error)
}

// TrainCodec: trainId|destination|date|time|standardSeatQty|premiumSeatQty|standardPrice|premiumPrice|status
//
// Departure is stored as wall-clock date and time in Location (time.Local when nil).
type TrainCodec struct {
	Location *time.Location
}

func (c TrainCodec) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

func (c TrainCodec) Encode(t domain.Train) string {
	status := statusActive
	if t.Status == domain.TrainStatusDiscontinued {
		status = statusDiscontinued
	}
	return strings.Join([]string{
		t.ID,
		t.Destination,
		t.Departure.In(c.location()).Format(dateLayout),
		t.Departure.In(c.location()).Format(timeLayout),
		strconv.Itoa(t.StandardSeatQty),
		strconv.Itoa(t.PremiumSeatQty),
		formatPrice(t.StandardPrice),
		formatPrice(t.PremiumPrice),
		status,
	}, separator)
}

func (c TrainCodec) Decode(line string) (domain.Train, error) {
	f, err := fields(line, 9, 9)
	if err != nil {
		return domain.Train{}, err
	}

	var t domain.Train
	t.ID = f[0]
	t.Destination = f[1]
	if t.Departure, err = time.ParseInLocation(dateLayout+" "+timeLayout, f[2]+" "+f[3], c.location()); err != nil {
		return domain.Train{}, fmt.Errorf("departure: %w", err)
	}
	if t.StandardSeatQty, err = strconv.Atoi(f[4]); err != nil {
		return domain.Train{}, fmt.Errorf("standard seats: %w", err)
	}
	if t.PremiumSeatQty, err = strconv.Atoi(f[5]); err != nil {
		return domain.Train{}, fmt.Errorf("premium seats: %w", err)
	}
	if t.StandardPrice, err = strconv.ParseFloat(f[6], 64); err != nil {
		return domain.Train{}, fmt.Errorf("standard price: %w", err)
	}
	if t.PremiumPrice, err = strconv.ParseFloat(f[7], 64); err != nil {
		return domain.Train{}, fmt.Errorf("premium price: %w", err)
	}
	switch f[8] {
	case statusActive:
		t.Status = domain.TrainStatusActive
	case statusDiscontinued:
		t.Status = domain.TrainStatusDiscontinued
	default:
		return domain.Train{}, fmt.Errorf("unknown status flag %q", f[8])
	}

	return t, nil
}

// BookingCodec: bookingId|passengerName|seatTierCode|quantity|fare|trainId|staffId
type BookingCodec struct{}

func (BookingCodec) Encode(b domain.Booking) string {
	return strings.Join([]string{
		b.ID,
		b.PassengerName,
		b.SeatTier.Code(),
		strconv.Itoa(b.Quantity),
		formatPrice(b.Fare),
		b.TrainID,
		b.StaffID,
	}, separator)
}

func (BookingCodec) Decode(line string) (domain.Booking, error) {
	f, err := fields(line, 7, 7)
	if err != nil {
		return domain.Booking{}, err
	}

	var b domain.Booking
	b.ID = f[0]
	b.PassengerName = f[1]
	if b.SeatTier, err = domain.ParseSeatTier(f[2]); err != nil {
		return domain.Booking{}, err
	}
	if b.Quantity, err = strconv.Atoi(f[3]); err != nil {
		return domain.Booking{}, fmt.Errorf("quantity: %w", err)
	}
	if b.Quantity <= 0 {
		return domain.Booking{}, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, b.Quantity)
	}
	if b.Fare, err = strconv.ParseFloat(f[4], 64); err != nil {
		return domain.Booking{}, fmt.Errorf("fare: %w", err)
	}
	b.TrainID = f[5]
	b.StaffID = f[6]

	return b, nil
}

// StaffCodec: name|contactNo|ic|staffId|passwordHash|bookingsHandled[|failedAttempts|lockUntil]
//
// The two lockout fields are optional and only written for accounts with
// failed attempts or a lock; six-field lines load as unlocked accounts.
type StaffCodec struct{}

func (StaffCodec) Encode(s domain.Staff) string {
	f := []string{
		s.Name,
		s.ContactNo,
		s.IC,
		s.ID,
		s.PasswordHash,
		strconv.Itoa(s.BookingsHandled),
	}
	if s.FailedAttempts > 0 || s.LockUntil != nil {
		lockUntil := ""
		if s.LockUntil != nil {
			lockUntil = s.LockUntil.UTC().Format(time.RFC3339)
		}
		f = append(f, strconv.Itoa(s.FailedAttempts), lockUntil)
	}
	return strings.Join(f, separator)
}

func (StaffCodec) Decode(line string) (domain.Staff, error) {
	f, err := fields(line, 6, 8)
	if err != nil {
		return domain.Staff{}, err
	}
	if len(f) == 7 {
		return domain.Staff{}, fmt.Errorf("expected 6 or 8 fields, got 7")
	}

	var s domain.Staff
	s.Name = f[0]
	s.ContactNo = f[1]
	s.IC = f[2]
	s.ID = f[3]
	if s.ID == "" {
		return domain.Staff{}, fmt.Errorf("empty staff id")
	}
	s.PasswordHash = f[4]
	if s.BookingsHandled, err = strconv.Atoi(f[5]); err != nil {
		return domain.Staff{}, fmt.Errorf("bookings handled: %w", err)
	}

	if len(f) == 8 {
		if s.FailedAttempts, err = strconv.Atoi(f[6]); err != nil {
			return domain.Staff{}, fmt.Errorf("failed attempts: %w", err)
		}
		if f[7] != "" {
			until, err := time.Parse(time.RFC3339, f[7])
			if err != nil {
				return domain.Staff{}, fmt.Errorf("lock until: %w", err)
			}
			s.LockUntil = &until
		}
	}

	return s, nil
}

func fields(line string, minFields, maxFields int) ([]string, error) {
	f := strings.Split(line, separator)
	if len(f) < minFields || len(f) > maxFields {
		if minFields == maxFields {
			return nil, fmt.Errorf("expected %d fields, got %d", minFields, len(f))
		}
		return nil, fmt.Errorf("expected %d to %d fields, got %d", minFields, maxFields, len(f))
	}
	if f[0] == "" && minFields > 0 {
		return nil, fmt.Errorf("empty key field")
	}
	return f, nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
