package textfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestStore_MissingFileIsEmpty(t *testing.T) {
	s := NewBookingStore(t.TempDir(), newTestLogger(t))

	got, err := s.LoadAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewStore[domain.Train](filepath.Join(dir, TrainsFile), TrainCodec{Location: time.UTC}, newTestLogger(t))
	trains := []domain.Train{
		{ID: "T002", Destination: "Ipoh", Departure: time.Date(2030, 2, 1, 9, 0, 0, 0, time.UTC),
			StandardSeatQty: 20, PremiumSeatQty: 4, StandardPrice: 55, PremiumPrice: 95.5, Status: domain.TrainStatusActive},
		{ID: "T001", Destination: "Butterworth", Departure: time.Date(2030, 1, 15, 8, 30, 0, 0, time.UTC),
			StandardSeatQty: 10, PremiumSeatQty: 5, StandardPrice: 50, PremiumPrice: 80, Status: domain.TrainStatusDiscontinued},
	}

	require.NoError(t, s.SaveAll(ctx, trains))
	got, err := s.LoadAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, trains, got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewBookingStore(dir, newTestLogger(t))

	require.NoError(t, s.SaveAll(ctx, []domain.Booking{
		{ID: "B001", PassengerName: "Ali", SeatTier: domain.SeatTierStandard, Quantity: 1, Fare: 53, TrainID: "T001", StaffID: "S001"},
		{ID: "B002", PassengerName: "Mei", SeatTier: domain.SeatTierPremium, Quantity: 2, Fare: 144.16, TrainID: "T001", StaffID: "S001"},
	}))
	require.NoError(t, s.SaveAll(ctx, []domain.Booking{
		{ID: "B002", PassengerName: "Mei", SeatTier: domain.SeatTierPremium, Quantity: 2, Fare: 144.16, TrainID: "T001", StaffID: "S001"},
	}))

	raw, err := os.ReadFile(filepath.Join(dir, BookingsFile))
	require.NoError(t, err)
	assert.Equal(t, "B002|Mei|P|2|144.16|T001|S001\n", string(raw))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStore_SkipsCorruptedLines(t *testing.T) {
	dir := t.TempDir()
	content := "B001|Ali|S|1|53.00|T001|S001\n" +
		"\n" +
		"B002|Mei|X|1|53.00|T001|S001\n" +
		"garbage\n" +
		"B003|Tan|P|2|144.16|T002|S002\r\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, BookingsFile), []byte(content), 0o644))
	s := NewBookingStore(dir, newTestLogger(t))

	got, err := s.LoadAll(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B001", got[0].ID)
	assert.Equal(t, "B003", got[1].ID)
	assert.Equal(t, "S002", got[1].StaffID)
}

func TestStore_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewStaffStore(dir, newTestLogger(t))

	err := s.SaveAll(context.Background(), []domain.Staff{
		{ContactInfo: domain.ContactInfo{Name: "Aina", ContactNo: "012", IC: "900101"}, ID: "S001", PasswordHash: "h"},
	})

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, StaffFile))
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewTrainStore(t.TempDir(), time.UTC, newTestLogger(t))

	_, err := s.LoadAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.SaveAll(ctx, nil), context.Canceled)
}
