package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/changzc22/SM-Assignment-sub000/internal/auth"
	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/changzc22/SM-Assignment-sub000/internal/ident"
	"github.com/changzc22/SM-Assignment-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const bootstrapStaffName = "Administrator"

type StaffService struct {
	repo   ports.StaffRepo
	hasher auth.Hasher
	writer sync.Locker
	logger logger.Logger
}

func NewStaffService(repo ports.StaffRepo, hasher auth.Hasher, writer sync.Locker, logger logger.Logger) *StaffService {
	return &StaffService{
		repo:   repo,
		hasher: hasher,
		writer: writer,
		logger: logger,
	}
}

func (s *StaffService) Register(ctx context.Context, input domain.RegisterStaffInput) (*domain.Staff, error) {
	if err := validateContact(input.ContactInfo); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	s.writer.Lock()
	defer s.writer.Unlock()

	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load staff: %w", err)
	}

	id, err := ident.Next(ident.StaffPrefix, all, domain.Staff.GetID)
	if err != nil {
		return nil, err
	}

	staff := domain.Staff{
		ContactInfo:  input.ContactInfo,
		ID:           id,
		PasswordHash: hash,
	}
	if err = s.repo.SaveAll(ctx, append(all, staff)); err != nil {
		return nil, fmt.Errorf("save staff: %w", err)
	}

	s.logger.Info("staff registered", logger.String("staff_id", staff.ID))

	return &staff, nil
}

// Bootstrap registers an administrator when no staff exists yet, so a fresh
// store can be logged into. It returns nil when staff is already present.
func (s *StaffService) Bootstrap(ctx context.Context, password string) (*domain.Staff, error) {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load staff: %w", err)
	}
	if len(all) > 0 || password == "" {
		return nil, nil
	}

	return s.Register(ctx, domain.RegisterStaffInput{
		ContactInfo: domain.ContactInfo{Name: bootstrapStaffName},
		Password:    password,
	})
}

func (s *StaffService) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load staff: %w", err)
	}
	i := indexByID(all, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrStaffNotFound, id)
	}
	return &all[i], nil
}

func (s *StaffService) List(ctx context.Context) ([]domain.Staff, error) {
	return s.repo.LoadAll(ctx)
}

func validateContact(c domain.ContactInfo) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	for _, v := range []string{c.Name, c.ContactNo, c.IC} {
		if strings.ContainsAny(v, "|\n") {
			return fmt.Errorf("%w: contact fields must not contain '|'", domain.ErrValidation)
		}
	}
	return nil
}
