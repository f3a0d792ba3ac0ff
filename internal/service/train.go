package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/changzc22/SM-Assignment-sub000/internal/ident"
	"github.com/changzc22/SM-Assignment-sub000/internal/service/ports"
	"github.com/changzc22/SM-Assignment-sub000/internal/validation"
	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/logger"
)

type TrainService struct {
	repo      ports.TrainRepo
	validator *validation.Validator
	clock     clockwork.Clock
	writer    sync.Locker
	logger    logger.Logger
}

func NewTrainService(
	repo ports.TrainRepo,
	validator *validation.Validator,
	clock clockwork.Clock,
	writer sync.Locker,
	logger logger.Logger,
) *TrainService {
	return &TrainService{
		repo:      repo,
		validator: validator,
		clock:     clock,
		writer:    writer,
		logger:    logger,
	}
}

func (s *TrainService) Create(ctx context.Context, input domain.CreateTrainInput) (*domain.Train, error) {
	if !input.Departure.After(s.clock.Now()) {
		return nil, fmt.Errorf("%w: departure must be in the future", domain.ErrValidation)
	}

	s.writer.Lock()
	defer s.writer.Unlock()

	trains, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trains: %w", err)
	}

	id, err := ident.Next(ident.TrainPrefix, trains, domain.Train.GetID)
	if err != nil {
		return nil, err
	}

	train := domain.Train{
		ID:              id,
		Destination:     strings.TrimSpace(input.Destination),
		Departure:       input.Departure.Truncate(time.Minute),
		StandardSeatQty: input.StandardSeatQty,
		PremiumSeatQty:  input.PremiumSeatQty,
		StandardPrice:   input.StandardPrice,
		PremiumPrice:    input.PremiumPrice,
		Status:          domain.TrainStatusActive,
	}
	if err = s.validator.Train(train); err != nil {
		return nil, err
	}
	if err = checkDestination(trains, train); err != nil {
		return nil, err
	}

	if err = s.repo.SaveAll(ctx, append(trains, train)); err != nil {
		return nil, fmt.Errorf("save trains: %w", err)
	}

	s.logger.Info("train created",
		logger.String("train_id", train.ID),
		logger.String("destination", train.Destination),
	)

	return &train, nil
}

// Update applies the proposed values onto the stored train. Each changed field
// is checked against the current value of its paired field.
func (s *TrainService) Update(ctx context.Context, id string, patch domain.TrainPatch) (*domain.Train, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrValidation)
	}

	s.writer.Lock()
	defer s.writer.Unlock()

	trains, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trains: %w", err)
	}
	i := indexByID(trains, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrTrainNotFound, id)
	}
	train := trains[i]
	if !train.IsActive() {
		return nil, fmt.Errorf("%w: %s", domain.ErrTrainDiscontinued, id)
	}

	var changed []string
	if patch.Destination != nil {
		train.Destination = strings.TrimSpace(*patch.Destination)
		changed = append(changed, validation.FieldDestination)
	}
	if patch.Departure != nil {
		if !patch.Departure.After(s.clock.Now()) {
			return nil, fmt.Errorf("%w: departure must be in the future", domain.ErrValidation)
		}
		train.Departure = patch.Departure.Truncate(time.Minute)
	}
	if patch.StandardSeatQty != nil {
		train.StandardSeatQty = *patch.StandardSeatQty
		changed = append(changed, validation.FieldStandardSeatQty)
	}
	if patch.PremiumSeatQty != nil {
		train.PremiumSeatQty = *patch.PremiumSeatQty
		changed = append(changed, validation.FieldPremiumSeatQty)
	}
	if patch.StandardPrice != nil {
		train.StandardPrice = *patch.StandardPrice
		changed = append(changed, validation.FieldStandardPrice)
	}
	if patch.PremiumPrice != nil {
		train.PremiumPrice = *patch.PremiumPrice
		changed = append(changed, validation.FieldPremiumPrice)
	}

	// departure has no field rules
	if len(changed) > 0 {
		if err = s.validator.Train(train, changed...); err != nil {
			return nil, err
		}
	}
	if err = checkDestination(trains, train); err != nil {
		return nil, err
	}

	if err = s.repo.SaveAll(ctx, replaceAt(trains, i, train)); err != nil {
		return nil, fmt.Errorf("save trains: %w", err)
	}

	s.logger.Info("train updated",
		logger.String("train_id", train.ID),
		logger.String("fields", strings.Join(changed, ",")),
	)

	return &train, nil
}

// Discontinue closes the train for new bookings. Existing bookings stay.
func (s *TrainService) Discontinue(ctx context.Context, id string) error {
	s.writer.Lock()
	defer s.writer.Unlock()

	trains, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load trains: %w", err)
	}
	i := indexByID(trains, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrTrainNotFound, id)
	}
	if !trains[i].IsActive() {
		return nil
	}

	train := trains[i]
	train.Status = domain.TrainStatusDiscontinued
	if err = s.repo.SaveAll(ctx, replaceAt(trains, i, train)); err != nil {
		return fmt.Errorf("save trains: %w", err)
	}

	s.logger.Info("train discontinued", logger.String("train_id", id))
	return nil
}

func (s *TrainService) GetByID(ctx context.Context, id string) (*domain.Train, error) {
	trains, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trains: %w", err)
	}
	i := indexByID(trains, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrTrainNotFound, id)
	}
	return &trains[i], nil
}

func (s *TrainService) List(ctx context.Context) ([]domain.Train, error) {
	return s.repo.LoadAll(ctx)
}

func (s *TrainService) ListActive(ctx context.Context) ([]domain.Train, error) {
	trains, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trains: %w", err)
	}

	res := make([]domain.Train, 0, len(trains))
	for _, t := range trains {
		if t.IsActive() {
			res = append(res, t)
		}
	}
	return res, nil
}

// checkDestination rejects a destination already served by another active train.
func checkDestination(trains []domain.Train, candidate domain.Train) error {
	for _, t := range trains {
		if t.ID == candidate.ID || !t.IsActive() {
			continue
		}
		if strings.EqualFold(t.Destination, candidate.Destination) {
			return fmt.Errorf("%w: %s (%s)", domain.ErrDuplicateDestination, candidate.Destination, t.ID)
		}
	}
	return nil
}
