package postgres

import (
	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type TrainRepository struct {
	store[domain.Train]
}

func NewTrainRepo(db *dbpg.DB) *TrainRepository {
	return &TrainRepository{store: newStore(db, table[domain.Train]{
		name: "trains",
		columns: []string{
			"id", "destination", "departure",
			"standard_seat_qty", "premium_seat_qty",
			"standard_price", "premium_price", "status",
		},
		values: func(t domain.Train) []any {
			return []any{
				t.ID, t.Destination, t.Departure,
				t.StandardSeatQty, t.PremiumSeatQty,
				t.StandardPrice, t.PremiumPrice, string(t.Status),
			}
		},
		scan: func(row rowScanner) (domain.Train, error) {
			var t domain.Train
			err := row.Scan(
				&t.ID, &t.Destination, &t.Departure,
				&t.StandardSeatQty, &t.PremiumSeatQty,
				&t.StandardPrice, &t.PremiumPrice, &t.Status,
			)
			return t, err
		},
	})}
}
