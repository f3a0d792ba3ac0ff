package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const departureLayout = "02.01.2006 15:04"

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts operator notifications to a single chat.
type TelegramNotifier struct {
	bot    sender
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b domain.Booking, t domain.Train) {
	text := fmt.Sprintf(
		"*Booking %s created*\n\n"+"Train: %s to %s\n"+"Departure: %s\n"+"Passenger: %s\n"+"Seats: %d %s\n"+"Fare: RM %.2f\n"+"Handled by: %s",
		b.ID, t.ID, t.Destination,
		t.Departure.Format(departureLayout),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, b.PassengerName),
		b.Quantity, b.SeatTier,
		b.Fare, b.StaffID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b domain.Booking) {
	text := fmt.Sprintf(
		"*Booking %s cancelled*\n\n"+"Train: %s\n"+"Seats released: %d %s",
		b.ID, b.TrainID, b.Quantity, b.SeatTier,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyAccountLocked(ctx context.Context, s domain.Staff, until time.Time) {
	text := fmt.Sprintf(
		"*Staff account %s locked*\n\n"+"Too many failed login attempts.\n"+"Locked until: %s",
		s.ID, until.Format(departureLayout),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
