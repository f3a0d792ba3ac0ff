package ports

import (
	"context"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
)

// BookingRepo persists the whole booking collection. LoadAll returns an empty
// slice when nothing was stored yet; SaveAll replaces the stored collection.
type BookingRepo interface {
	LoadAll(ctx context.Context) ([]domain.Booking, error)
	SaveAll(ctx context.Context, bookings []domain.Booking) error
}
