package postgres

import (
	"database/sql"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type StaffRepository struct {
	store[domain.Staff]
}

func NewStaffRepo(db *dbpg.DB) *StaffRepository {
	return &StaffRepository{store: newStore(db, table[domain.Staff]{
		name: "staff",
		columns: []string{
			"id", "name", "contact_no", "ic", "password_hash",
			"bookings_handled", "failed_attempts", "lock_until",
		},
		values: func(s domain.Staff) []any {
			var lockUntil any
			if s.LockUntil != nil {
				lockUntil = *s.LockUntil
			}
			return []any{
				s.ID, s.Name, s.ContactNo, s.IC, s.PasswordHash,
				s.BookingsHandled, s.FailedAttempts, lockUntil,
			}
		},
		scan: func(row rowScanner) (domain.Staff, error) {
			var (
				s         domain.Staff
				lockUntil sql.NullTime
			)
			err := row.Scan(
				&s.ID, &s.Name, &s.ContactNo, &s.IC, &s.PasswordHash,
				&s.BookingsHandled, &s.FailedAttempts, &lockUntil,
			)
			if lockUntil.Valid {
				until := lockUntil.Time
				s.LockUntil = &until
			}
			return s, err
		},
	})}
}
