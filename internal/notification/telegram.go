package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingApproved(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking) {
	n.send(ctx, user.TelegramChatID, approvedText(event, booking))
}

func (n *TelegramNotifier) NotifyBookingRejected(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking, refunded bool) {
	n.send(ctx, user.TelegramChatID, rejectedText(event, booking, refunded))
}

func approvedText(event *domain.Event, booking *domain.Booking) string {
	text := fmt.Sprintf(
		"*Booking #%d approved!*\n\n"+"Event: %s\n"+"Venue: %s\n"+"Date: %s",
		booking.ID, escape(event.Name), escape(booking.Venue), escape(booking.Date),
	)
	if !booking.Paid {
		text += "\n\nPayment is still pending."
	}
	return text
}

func rejectedText(event *domain.Event, booking *domain.Booking, refunded bool) string {
	reason := domain.DefaultRejectionReason
	if booking.RejectionReason != nil {
		reason = *booking.RejectionReason
	}

	text := fmt.Sprintf(
		"*Booking #%d rejected*\n\n"+"Event: %s\n"+"Date: %s\n"+"Reason: %s",
		booking.ID, escape(event.Name), escape(booking.Date), escape(reason),
	)
	if refunded {
		text += fmt.Sprintf("\n\nA simulated refund of ₹%.2f has been issued.", event.Price)
	}
	return text
}

// escape protects user-supplied text from Markdown parsing.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
