// Package auth implements staff login with a failed-attempt lockout.
//
// An account is ACTIVE with a failure counter, or LOCKED until a deadline.
// Lockout expiry is evaluated lazily on the next attempt; nothing runs in the
// background. The state lives on the staff record and is persisted after
// every transition.
package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/changzc22/SM-Assignment-sub000/internal/service/ports"
	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/logger"
)

type Policy struct {
	MaxFailedAttempts int
	LockoutDuration   time.Duration
}

func DefaultPolicy() Policy {
	return Policy{MaxFailedAttempts: 4, LockoutDuration: 5 * time.Minute}
}

type lockoutNotifier interface {
	NotifyAccountLocked(ctx context.Context, staff domain.Staff, until time.Time)
}

type Guard struct {
	repo     ports.StaffRepo
	hasher   Hasher
	policy   Policy
	clock    clockwork.Clock
	writer   sync.Locker
	notifier lockoutNotifier
	logger   logger.Logger
}

func NewGuard(
	repo ports.StaffRepo,
	hasher Hasher,
	policy Policy,
	clock clockwork.Clock,
	writer sync.Locker,
	notifier lockoutNotifier,
	logger logger.Logger,
) *Guard {
	if policy.MaxFailedAttempts <= 0 || policy.LockoutDuration <= 0 {
		policy = DefaultPolicy()
	}
	return &Guard{
		repo:     repo,
		hasher:   hasher,
		policy:   policy,
		clock:    clock,
		writer:   writer,
		notifier: notifier,
		logger:   logger,
	}
}

// AttemptLogin checks the password of staffID and applies the lockout rules.
// It returns domain.ErrInvalidCredentials or a *domain.AccountLockedError on rejection.
func (g *Guard) AttemptLogin(ctx context.Context, staffID, password string) (*domain.Staff, error) {
	g.writer.Lock()
	defer g.writer.Unlock()

	all, err := g.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load staff: %w", err)
	}

	idx := indexOf(all, staffID)
	if idx < 0 {
		g.logger.Warn("login attempt for unknown staff", logger.String("staff_id", staffID))
		return nil, domain.ErrInvalidCredentials
	}

	s := all[idx]
	now := g.clock.Now()
	dirty := false

	if s.LockUntil != nil {
		if now.Before(*s.LockUntil) {
			return nil, lockedError(*s.LockUntil, now)
		}
		s.FailedAttempts = 0
		s.LockUntil = nil
		dirty = true
	}

	ok, err := g.hasher.Verify(s.PasswordHash, password)
	if err != nil {
		g.logger.Error("stored password hash unusable",
			logger.String("staff_id", s.ID),
			logger.String("error", err.Error()),
		)
	}

	if ok {
		if s.FailedAttempts != 0 {
			s.FailedAttempts = 0
			dirty = true
		}
		if dirty {
			all[idx] = s
			if err = g.repo.SaveAll(ctx, all); err != nil {
				return nil, fmt.Errorf("save staff: %w", err)
			}
		}

		g.logger.Info("staff logged in", logger.String("staff_id", s.ID))
		return &s, nil
	}

	s.FailedAttempts++
	if s.FailedAttempts < g.policy.MaxFailedAttempts {
		all[idx] = s
		if err = g.repo.SaveAll(ctx, all); err != nil {
			return nil, fmt.Errorf("save staff: %w", err)
		}

		g.logger.Warn("login failed",
			logger.String("staff_id", s.ID),
			logger.Int("failed_attempts", s.FailedAttempts),
		)
		return nil, domain.ErrInvalidCredentials
	}

	until := now.Add(g.policy.LockoutDuration)
	s.LockUntil = &until
	all[idx] = s
	if err = g.repo.SaveAll(ctx, all); err != nil {
		return nil, fmt.Errorf("save staff: %w", err)
	}

	g.logger.Warn("account locked",
		logger.String("staff_id", s.ID),
		logger.Int("failed_attempts", s.FailedAttempts),
		logger.Duration("lockout", g.policy.LockoutDuration),
	)
	go g.notifier.NotifyAccountLocked(context.WithoutCancel(ctx), s, until)

	return nil, lockedError(until, now)
}

// ChangePassword replaces the password after checking the current one. A wrong
// current password is rejected without touching the failure counter.
func (g *Guard) ChangePassword(ctx context.Context, staffID, oldPassword, newPassword string) error {
	g.writer.Lock()
	defer g.writer.Unlock()

	all, err := g.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load staff: %w", err)
	}

	idx := indexOf(all, staffID)
	if idx < 0 {
		return domain.ErrStaffNotFound
	}

	s := all[idx]
	now := g.clock.Now()
	if s.LockedAt(now) {
		return lockedError(*s.LockUntil, now)
	}

	ok, err := g.hasher.Verify(s.PasswordHash, oldPassword)
	if err != nil || !ok {
		return domain.ErrInvalidCredentials
	}

	hash, err := g.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	s.PasswordHash = hash
	s.FailedAttempts = 0
	s.LockUntil = nil
	all[idx] = s
	if err = g.repo.SaveAll(ctx, all); err != nil {
		return fmt.Errorf("save staff: %w", err)
	}

	g.logger.Info("password changed", logger.String("staff_id", s.ID))
	return nil
}

func lockedError(until, now time.Time) *domain.AccountLockedError {
	remaining := until.Sub(now)
	minutes := int((remaining + time.Minute - 1) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return &domain.AccountLockedError{Until: until, MinutesRemaining: minutes}
}

func indexOf(all []domain.Staff, id string) int {
	for i := range all {
		if all[i].ID == id {
			return i
		}
	}
	return -1
}
