package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/changzc22/SM-Assignment-sub000/internal/fare"
	"github.com/changzc22/SM-Assignment-sub000/internal/ident"
	"github.com/changzc22/SM-Assignment-sub000/internal/inventory"
	"github.com/changzc22/SM-Assignment-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	trainRepo   ports.TrainRepo
	staffRepo   ports.StaffRepo
	fares       *fare.Calculator
	writer      sync.Locker
	notifier    ports.Notifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	trainRepo ports.TrainRepo,
	staffRepo ports.StaffRepo,
	fares *fare.Calculator,
	writer sync.Locker,
	notifier ports.Notifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		trainRepo:   trainRepo,
		staffRepo:   staffRepo,
		fares:       fares,
		writer:      writer,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create validates the request, reserves seats on the stored train, prices the
// booking and commits train and booking collections. A rejected request leaves
// every collection untouched.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, input.Quantity)
	}
	if !input.SeatTier.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSeatTier, input.SeatTier)
	}
	if !input.Passenger.Tier.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPassengerTier, input.Passenger.Tier)
	}
	name := strings.TrimSpace(input.Passenger.Name)
	if name == "" || strings.ContainsAny(name, "|\n") {
		return nil, fmt.Errorf("%w: passenger name is required and must not contain '|'", domain.ErrValidation)
	}

	s.writer.Lock()
	defer s.writer.Unlock()

	// the caller's copy of the train may be stale, always re-read
	trains, err := s.trainRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trains: %w", err)
	}
	ti := indexByID(trains, input.TrainID)
	if ti < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrTrainNotFound, input.TrainID)
	}
	train := trains[ti]
	if !train.IsActive() {
		return nil, fmt.Errorf("%w: %s", domain.ErrTrainDiscontinued, train.ID)
	}

	staff, err := s.staffRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load staff: %w", err)
	}
	si := indexByID(staff, input.StaffID)
	if si < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrStaffNotFound, input.StaffID)
	}

	reserved, err := inventory.Reserve(train, input.SeatTier, input.Quantity)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	id, err := ident.Next(ident.BookingPrefix, bookings, domain.Booking.GetID)
	if err != nil {
		return nil, err
	}

	booking := domain.Booking{
		ID:            id,
		PassengerName: name,
		SeatTier:      input.SeatTier,
		Quantity:      input.Quantity,
		Fare:          s.fares.Fare(train.Price(input.SeatTier), input.Passenger.Tier, input.Quantity),
		TrainID:       train.ID,
		StaffID:       input.StaffID,
	}

	updated := replaceAt(trains, ti, reserved)
	if err = s.commit(ctx, trains, updated, append(bookings, booking)); err != nil {
		return nil, err
	}

	staff[si].BookingsHandled++
	if err = s.staffRepo.SaveAll(ctx, staff); err != nil {
		s.logger.Warn("failed to record booking on staff",
			logger.String("staff_id", input.StaffID),
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("train_id", train.ID),
		logger.String("seat_tier", string(booking.SeatTier)),
		logger.Int("quantity", booking.Quantity),
		logger.Int("seats_left", reserved.Seats(input.SeatTier)),
		logger.String("staff_id", booking.StaffID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, reserved)

	return &booking, nil
}

// Cancel removes the booking and returns its seats to the train. A booking whose
// train no longer exists is still removed.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	s.writer.Lock()
	defer s.writer.Unlock()

	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}
	bi := indexByID(bookings, bookingID)
	if bi < 0 {
		return fmt.Errorf("%w: %s", domain.ErrBookingNotFound, bookingID)
	}
	booking := bookings[bi]

	trains, err := s.trainRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load trains: %w", err)
	}

	updated := trains
	if ti := indexByID(trains, booking.TrainID); ti >= 0 {
		updated = replaceAt(trains, ti, inventory.Release(trains[ti], booking.SeatTier, booking.Quantity))
	} else {
		s.logger.Warn("booking references missing train, seats not released",
			logger.String("booking_id", booking.ID),
			logger.String("train_id", booking.TrainID),
		)
	}

	remaining := make([]domain.Booking, 0, len(bookings)-1)
	remaining = append(remaining, bookings[:bi]...)
	remaining = append(remaining, bookings[bi+1:]...)

	if err = s.commit(ctx, trains, updated, remaining); err != nil {
		return err
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("train_id", booking.TrainID),
		logger.Int("quantity", booking.Quantity),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking)

	return nil
}

// commit writes trains then bookings. If the bookings write fails the previous
// trains collection is written back so no seat change outlives its booking.
func (s *BookingService) commit(ctx context.Context, before, trains []domain.Train, bookings []domain.Booking) error {
	if err := s.trainRepo.SaveAll(ctx, trains); err != nil {
		return fmt.Errorf("save trains: %w", err)
	}

	if err := s.bookingRepo.SaveAll(ctx, bookings); err != nil {
		if rbErr := s.trainRepo.SaveAll(context.WithoutCancel(ctx), before); rbErr != nil {
			s.logger.Error("failed to roll back seat inventory",
				logger.String("error", rbErr.Error()),
			)
		}
		return fmt.Errorf("save bookings: %w", err)
	}

	return nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	i := indexByID(bookings, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, id)
	}
	return &bookings[i], nil
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.LoadAll(ctx)
}

func (s *BookingService) ListByTrain(ctx context.Context, trainID string) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	res := make([]domain.Booking, 0)
	for _, b := range bookings {
		if b.TrainID == trainID {
			res = append(res, b)
		}
	}
	return res, nil
}
