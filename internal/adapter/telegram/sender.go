package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender delivers pre-escaped MarkdownV2 notifications to arbitrary chats.
// It satisfies the change notifier's sender dependency.
type Sender struct {
	api *tgbotapi.BotAPI
}

func NewSender(api *tgbotapi.BotAPI) *Sender {
	return &Sender{api: api}
}

func (s *Sender) Send(_ context.Context, chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2

	sent, err := s.api.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("telegram: send notification: %w", err)
	}
	return sent.MessageID, nil
}
