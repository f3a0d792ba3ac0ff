package ports

import (
	"context"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
)

type Notifier interface {
	NotifyBookingCreated(ctx context.Context, booking domain.Booking, train domain.Train)
	NotifyBookingCancelled(ctx context.Context, booking domain.Booking)
	NotifyAccountLocked(ctx context.Context, staff domain.Staff, until time.Time)
}
