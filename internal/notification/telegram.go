package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

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

func (n *TelegramNotifier) NotifyEventPublished(ctx context.Context, organizer *domain.User, event *domain.Event) {
	n.send(ctx, organizer.TelegramChatID, eventPublishedText(event))
}

func (n *TelegramNotifier) NotifyAttendanceConfirmed(ctx context.Context, user *domain.User, event *domain.Event) {
	n.send(ctx, user.TelegramChatID, attendanceConfirmedText(event))
}

func (n *TelegramNotifier) NotifyNewFollower(ctx context.Context, followee, follower *domain.User) {
	n.send(ctx, followee.TelegramChatID, newFollowerText(follower))
}

func eventPublishedText(event *domain.Event) string {
	return fmt.Sprintf(
		"*Событие опубликовано!*\n\n"+"Мероприятие: %s\n"+"Место: %s\n"+"Дата (время указано в UTC): %s",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Title),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Location),
		event.StartsAt.UTC().Format(dateLayout),
	)
}

func attendanceConfirmedText(event *domain.Event) string {
	return fmt.Sprintf(
		"*Вы идёте!*\n\n"+"Мероприятие: %s\n"+"Место: %s\n"+"Дата (время указано в UTC): %s",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Title),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Location),
		event.StartsAt.UTC().Format(dateLayout),
	)
}

func newFollowerText(follower *domain.User) string {
	return fmt.Sprintf(
		"*Новый подписчик*\n\n"+"%s (@%s) подписался на вас.",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, follower.DisplayName),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, follower.Username),
	)
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
