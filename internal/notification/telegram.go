package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier delivers workflow messages to users with a linked chat.
// Users without a chat and a disabled bot are skipped silently.
type TelegramNotifier struct {
	bot    sender
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

func (n *TelegramNotifier) NotifyReviewerAssigned(ctx context.Context, reviewer *domain.User, event *domain.Event) error {
	text := fmt.Sprintf(
		"*Новое мероприятие на согласование*\n\n"+"Мероприятие: %s\n"+"Площадка: %s\n"+"Дата (время указано в UTC): %s",
		escape(event.Title), escape(venueName(event)), event.StartAt.UTC().Format(dateLayout),
	)
	return n.send(ctx, reviewer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyDecision(ctx context.Context, creator *domain.User, event *domain.Event, decision domain.Decision, note string) error {
	var b strings.Builder
	b.WriteString(decisionHeadline(decision))
	b.WriteString("\n\nМероприятие: ")
	b.WriteString(escape(event.Title))
	b.WriteString("\nДата (время указано в UTC): ")
	b.WriteString(event.StartAt.UTC().Format(dateLayout))
	if note != "" {
		b.WriteString("\nКомментарий: ")
		b.WriteString(escape(note))
	}
	return n.send(ctx, creator.TelegramChatID, b.String())
}

func (n *TelegramNotifier) NotifyDraftReminder(ctx context.Context, user *domain.User, event *domain.Event) error {
	text := fmt.Sprintf(
		"*Черновик ждёт отправки*\n\n"+"Мероприятие: %s\n"+"Дата (время указано в UTC): %s\n"+"Отправьте его на согласование, когда он будет готов.",
		escape(event.Title), event.StartAt.UTC().Format(dateLayout),
	)
	return n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return nil
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message to %d: %w", *chatID, err)
	}

	return nil
}

func decisionHeadline(d domain.Decision) string {
	switch d {
	case domain.DecisionApproved:
		return "*Мероприятие одобрено!*"
	case domain.DecisionRejected:
		return "*Мероприятие отклонено*"
	default:
		return "*Мероприятие требует доработки*"
	}
}

func venueName(e *domain.Event) string {
	if e.Venue != nil && e.Venue.Name != "" {
		return e.Venue.Name
	}
	return e.VenueID
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
