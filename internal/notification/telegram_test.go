package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
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

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func TestNewTelegramNotifier_EmptyTokenDisables(t *testing.T) {
	n, err := NewTelegramNotifier("", 42, newTestLogger(t))

	require.NoError(t, err)
	assert.Nil(t, n.bot)

	// must not panic
	n.NotifyBookingCancelled(context.Background(), domain.Booking{ID: "B001"})
}

func TestTelegramNotifier_BookingCreated(t *testing.T) {
	s := &fakeSender{}
	n := &TelegramNotifier{bot: s, chatID: 42, logger: newTestLogger(t)}
	train := domain.Train{
		ID:          "T001",
		Destination: "Butterworth",
		Departure:   time.Date(2030, 1, 15, 8, 30, 0, 0, time.UTC),
	}
	booking := domain.Booking{
		ID: "B001", PassengerName: "Ali", SeatTier: domain.SeatTierPremium,
		Quantity: 2, Fare: 90.1, TrainID: "T001", StaffID: "S001",
	}

	n.NotifyBookingCreated(context.Background(), booking, train)

	require.Len(t, s.sent, 1)
	assert.Equal(t, int64(42), s.sent[0].ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, s.sent[0].ParseMode)
	assert.Contains(t, s.sent[0].Text, "B001")
	assert.Contains(t, s.sent[0].Text, "15.01.2030 08:30")
	assert.Contains(t, s.sent[0].Text, "RM 90.10")
}

func TestTelegramNotifier_AccountLocked(t *testing.T) {
	s := &fakeSender{}
	n := &TelegramNotifier{bot: s, chatID: 7, logger: newTestLogger(t)}

	n.NotifyAccountLocked(context.Background(), domain.Staff{ID: "S002"},
		time.Date(2030, 1, 1, 10, 5, 0, 0, time.UTC))

	require.Len(t, s.sent, 1)
	assert.Contains(t, s.sent[0].Text, "S002")
	assert.Contains(t, s.sent[0].Text, "01.01.2030 10:05")
}

func TestTelegramNotifier_SkipsWithoutChat(t *testing.T) {
	s := &fakeSender{}
	n := &TelegramNotifier{bot: s, logger: newTestLogger(t)}

	n.NotifyBookingCancelled(context.Background(), domain.Booking{ID: "B001"})

	assert.Empty(t, s.sent)
}

func TestTelegramNotifier_SkipsCancelledContext(t *testing.T) {
	s := &fakeSender{}
	n := &TelegramNotifier{bot: s, chatID: 42, logger: newTestLogger(t)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n.NotifyBookingCancelled(ctx, domain.Booking{ID: "B001"})

	assert.Empty(t, s.sent)
}

func TestTelegramNotifier_SendErrorIsSwallowed(t *testing.T) {
	s := &fakeSender{err: errors.New("telegram down")}
	n := &TelegramNotifier{bot: s, chatID: 42, logger: newTestLogger(t)}

	n.NotifyBookingCancelled(context.Background(), domain.Booking{ID: "B001"})

	assert.Len(t, s.sent, 1)
}
