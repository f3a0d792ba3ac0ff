package postgres

import (
	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type BookingRepository struct {
	store[domain.Booking]
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{store: newStore(db, table[domain.Booking]{
		name: "bookings",
		columns: []string{
			"id", "passenger_name", "seat_tier", "quantity",
			"fare", "train_id", "staff_id",
		},
		values: func(b domain.Booking) []any {
			return []any{
				b.ID, b.PassengerName, string(b.SeatTier), b.Quantity,
				b.Fare, b.TrainID, b.StaffID,
			}
		},
		scan: func(row rowScanner) (domain.Booking, error) {
			var b domain.Booking
			err := row.Scan(
				&b.ID, &b.PassengerName, &b.SeatTier, &b.Quantity,
				&b.Fare, &b.TrainID, &b.StaffID,
			)
			return b, err
		},
	})}
}
