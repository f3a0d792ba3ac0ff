package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/changzc22/SM-Assignment-sub000/internal/repository/memory"
	"github.com/changzc22/SM-Assignment-sub000/internal/service/ports/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const (
	staffID  = "S001"
	password = "secret123"
)

var start = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fixture struct {
	guard    *Guard
	repo     *memory.Store[domain.Staff]
	clock    *clockwork.FakeClock
	notifier *mocks.MockNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	hasher := NewHasher(bcrypt.MinCost)
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	repo := memory.NewStore(domain.Staff{
		ContactInfo:  domain.ContactInfo{Name: "Aina"},
		ID:           staffID,
		PasswordHash: hash,
	})
	clock := clockwork.NewFakeClockAt(start)
	notifier := mocks.NewMockNotifier(t)

	g := NewGuard(repo, hasher, DefaultPolicy(), clock, &sync.Mutex{}, notifier, newTestLogger(t))
	return &fixture{guard: g, repo: repo, clock: clock, notifier: notifier}
}

func (f *fixture) staff(t *testing.T) domain.Staff {
	t.Helper()
	all, err := f.repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	return all[0]
}

func (f *fixture) fail(t *testing.T, times int) error {
	t.Helper()
	var err error
	for i := 0; i < times; i++ {
		_, err = f.guard.AttemptLogin(context.Background(), staffID, "wrong")
	}
	return err
}

func TestGuard_Success(t *testing.T) {
	f := newFixture(t)

	s, err := f.guard.AttemptLogin(context.Background(), staffID, password)

	require.NoError(t, err)
	assert.Equal(t, staffID, s.ID)
	assert.Equal(t, 0, f.staff(t).FailedAttempts)
}

func TestGuard_ThreeFailuresStayActive(t *testing.T) {
	f := newFixture(t)

	err := f.fail(t, 3)

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	s := f.staff(t)
	assert.Equal(t, 3, s.FailedAttempts)
	assert.Nil(t, s.LockUntil)
}

func TestGuard_FourthFailureLocks(t *testing.T) {
	f := newFixture(t)
	locked := make(chan time.Time, 1)
	f.notifier.EXPECT().NotifyAccountLocked(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ domain.Staff, until time.Time) { locked <- until }).
		Return()

	err := f.fail(t, 4)

	var lockErr *domain.AccountLockedError
	require.True(t, errors.As(err, &lockErr))
	assert.ErrorIs(t, err, domain.ErrAccountLocked)
	assert.Equal(t, 5, lockErr.MinutesRemaining)
	assert.Equal(t, start.Add(5*time.Minute), lockErr.Until)

	s := f.staff(t)
	require.NotNil(t, s.LockUntil)
	assert.Equal(t, start.Add(5*time.Minute), *s.LockUntil)

	select {
	case until := <-locked:
		assert.Equal(t, start.Add(5*time.Minute), until)
	case <-time.After(time.Second):
		t.Fatal("lockout was not notified")
	}
}

func TestGuard_LockedRejectsCorrectPassword(t *testing.T) {
	f := newFixture(t)
	f.notifier.EXPECT().NotifyAccountLocked(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	f.fail(t, 4)

	f.clock.Advance(2*time.Minute + 30*time.Second)
	_, err := f.guard.AttemptLogin(context.Background(), staffID, password)

	var lockErr *domain.AccountLockedError
	require.True(t, errors.As(err, &lockErr))
	assert.Equal(t, 3, lockErr.MinutesRemaining)
	assert.Equal(t, 4, f.staff(t).FailedAttempts, "state unchanged while locked")
}

func TestGuard_LockExpiresLazily(t *testing.T) {
	f := newFixture(t)
	f.notifier.EXPECT().NotifyAccountLocked(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	f.fail(t, 4)

	f.clock.Advance(5 * time.Minute)
	s, err := f.guard.AttemptLogin(context.Background(), staffID, password)

	require.NoError(t, err)
	assert.Equal(t, staffID, s.ID)
	stored := f.staff(t)
	assert.Equal(t, 0, stored.FailedAttempts)
	assert.Nil(t, stored.LockUntil)
}

func TestGuard_ExpiredLockThenWrongPasswordCountsFromZero(t *testing.T) {
	f := newFixture(t)
	f.notifier.EXPECT().NotifyAccountLocked(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	f.fail(t, 4)

	f.clock.Advance(6 * time.Minute)
	err := f.fail(t, 1)

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	s := f.staff(t)
	assert.Equal(t, 1, s.FailedAttempts)
	assert.Nil(t, s.LockUntil)
}

func TestGuard_SuccessResetsCounter(t *testing.T) {
	f := newFixture(t)

	f.fail(t, 1)
	_, err := f.guard.AttemptLogin(context.Background(), staffID, password)
	require.NoError(t, err)
	assert.Equal(t, 0, f.staff(t).FailedAttempts)

	err = f.fail(t, 3)

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, f.staff(t).LockUntil)
}

func TestGuard_UnknownStaff(t *testing.T) {
	f := newFixture(t)

	_, err := f.guard.AttemptLogin(context.Background(), "S404", password)

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, 0, f.staff(t).FailedAttempts)
}

func TestGuard_LoadError(t *testing.T) {
	repo := mocks.NewMockStaffRepo(t)
	g := NewGuard(repo, NewHasher(bcrypt.MinCost), DefaultPolicy(), clockwork.NewFakeClockAt(start),
		&sync.Mutex{}, mocks.NewMockNotifier(t), newTestLogger(t))

	repoErr := errors.New("disk error")
	repo.EXPECT().LoadAll(mock.Anything).Return(nil, repoErr)

	_, err := g.AttemptLogin(context.Background(), staffID, password)

	assert.ErrorIs(t, err, repoErr)
}

func TestGuard_CustomPolicy(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	repo := memory.NewStore(domain.Staff{ID: staffID, PasswordHash: hash})
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().NotifyAccountLocked(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	g := NewGuard(repo, hasher, Policy{MaxFailedAttempts: 2, LockoutDuration: time.Hour},
		clockwork.NewFakeClockAt(start), &sync.Mutex{}, notifier, newTestLogger(t))

	_, err = g.AttemptLogin(context.Background(), staffID, "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = g.AttemptLogin(context.Background(), staffID, "nope")
	var lockErr *domain.AccountLockedError
	require.True(t, errors.As(err, &lockErr))
	assert.Equal(t, 60, lockErr.MinutesRemaining)
}

func TestGuard_ChangePassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.guard.ChangePassword(ctx, staffID, password, "n3wpassword"))

	_, err := f.guard.AttemptLogin(ctx, staffID, password)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.guard.AttemptLogin(ctx, staffID, "n3wpassword")
	assert.NoError(t, err)
}

func TestGuard_ChangePasswordRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.guard.ChangePassword(ctx, "S404", password, "n3wpassword"), domain.ErrStaffNotFound)
	assert.ErrorIs(t, f.guard.ChangePassword(ctx, staffID, "wrong", "n3wpassword"), domain.ErrInvalidCredentials)
	assert.Equal(t, 0, f.staff(t).FailedAttempts, "wrong current password is not a login failure")
	assert.ErrorIs(t, f.guard.ChangePassword(ctx, staffID, password, "short"), domain.ErrValidation)
}

func TestGuard_ChangePasswordWhileLocked(t *testing.T) {
	f := newFixture(t)
	f.notifier.EXPECT().NotifyAccountLocked(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	f.fail(t, 4)

	err := f.guard.ChangePassword(context.Background(), staffID, password, "n3wpassword")

	assert.ErrorIs(t, err, domain.ErrAccountLocked)
}
