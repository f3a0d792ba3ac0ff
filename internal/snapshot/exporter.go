// Package snapshot copies every collection out of the active store into the
// pipe-delimited text layout, whatever backend the application runs on.
package snapshot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/changzc22/SM-Assignment-sub000/internal/repository/textfile"
	"github.com/changzc22/SM-Assignment-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type Stats struct {
	Trains   int
	Bookings int
	Staff    int
}

type Exporter struct {
	trainRepo   ports.TrainRepo
	bookingRepo ports.BookingRepo
	staffRepo   ports.StaffRepo

	trainOut   ports.TrainRepo
	bookingOut ports.BookingRepo
	staffOut   ports.StaffRepo

	// held while reading so trains and bookings come from the same commit
	writer sync.Locker
	logger logger.Logger
}

func NewExporter(
	trainRepo ports.TrainRepo,
	bookingRepo ports.BookingRepo,
	staffRepo ports.StaffRepo,
	dir string,
	loc *time.Location,
	writer sync.Locker,
	logger logger.Logger,
) *Exporter {
	return &Exporter{
		trainRepo:   trainRepo,
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		trainOut:    textfile.NewTrainStore(dir, loc, logger),
		bookingOut:  textfile.NewBookingStore(dir, logger),
		staffOut:    textfile.NewStaffStore(dir, logger),
		writer:      writer,
		logger:      logger,
	}
}

func (e *Exporter) Export(ctx context.Context) (Stats, error) {
	trains, bookings, staff, err := e.read(ctx)
	if err != nil {
		return Stats{}, err
	}

	if err = e.trainOut.SaveAll(ctx, trains); err != nil {
		return Stats{}, fmt.Errorf("write trains: %w", err)
	}
	if err = e.bookingOut.SaveAll(ctx, bookings); err != nil {
		return Stats{}, fmt.Errorf("write bookings: %w", err)
	}
	if err = e.staffOut.SaveAll(ctx, staff); err != nil {
		return Stats{}, fmt.Errorf("write staff: %w", err)
	}

	return Stats{Trains: len(trains), Bookings: len(bookings), Staff: len(staff)}, nil
}

func (e *Exporter) read(ctx context.Context) ([]domain.Train, []domain.Booking, []domain.Staff, error) {
	e.writer.Lock()
	defer e.writer.Unlock()

	trains, err := e.trainRepo.LoadAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load trains: %w", err)
	}
	bookings, err := e.bookingRepo.LoadAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load bookings: %w", err)
	}
	staff, err := e.staffRepo.LoadAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load staff: %w", err)
	}

	return trains, bookings, staff, nil
}
