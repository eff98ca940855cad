package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"tickethub/internal/domain"
)

// TelegramNotifier posts settlement confirmations to an operations channel.
// Buyer-facing email is dispatched by an external service and is out of
// scope here.
type TelegramNotifier struct {
	bot       *tgbotapi.BotAPI
	opsChatID int64
	logger    logger.Logger
}

func NewTelegramNotifier(token string, opsChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, opsChatID: opsChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking, event *domain.Event) {
	text := fmt.Sprintf(
		"*Booking confirmed*\n\n"+
			"Ref: %s\nEvent: %s\nVenue: %s\nTickets: %d\nTotal: %s\nAttendee: %s <%s>",
		booking.BookingRef,
		event.Title,
		event.Venue,
		booking.TotalQuantity(),
		formatMinor(booking.TotalAmountMinor),
		booking.Contact.Name,
		booking.Contact.Email,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.opsChatID == 0 {
		n.logger.Debug("notification skipped (no ops chat)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.opsChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.opsChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.opsChatID),
			logger.String("error", err.Error()),
		)
	}
}

func formatMinor(amount int64) string {
	return fmt.Sprintf("%d.%02d", amount/100, amount%100)
}
