// Package telegram is the bot's transport layer: it runs the long-polling
// update loop, classifies incoming updates, and renders service replies into
// Telegram messages and keyboards.
package telegram

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/guidecr/placebot/internal/domain"
	"github.com/guidecr/placebot/internal/service/editor"
	"github.com/guidecr/placebot/pkg/ctxutil"
)

const updateTimeoutSeconds = 30

// Bot owns the update loop. All updates are handled sequentially, so each
// chat's session is only ever touched by one handler at a time.
type Bot struct {
	api    *tgbotapi.BotAPI
	editor *editor.Service
	log    *slog.Logger
}

func NewBot(logger *slog.Logger, api *tgbotapi.BotAPI, editorSvc *editor.Service) *Bot {
	return &Bot{
		api:    api,
		editor: editorSvc,
		log:    logger.With("adapter", "telegram"),
	}
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = updateTimeoutSeconds
	updates := b.api.GetUpdatesChan(cfg)

	b.log.InfoContext(ctx, "update loop started", slog.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, upd)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	ctx = ctxutil.WithUpdateID(ctx, upd.UpdateID)

	switch {
	case upd.CallbackQuery != nil:
		if upd.CallbackQuery.From != nil {
			ctx = ctxutil.WithOperatorID(ctx, upd.CallbackQuery.From.ID)
		}
		b.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil:
		if upd.Message.From != nil {
			ctx = ctxutil.WithOperatorID(ctx, upd.Message.From.ID)
		}
		b.handleMessage(ctx, upd.Message)
	}
}

// handleCallback dispatches inline-keyboard presses by their payload: menu
// actions, category choices, and edit-bar field names.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	// Stop the client's loading spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		b.log.WarnContext(ctx, "callback ack failed", slog.String("error", err.Error()))
	}
	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID

	var replies []editor.Reply
	switch data := cq.Data; {
	case data == callbackAddPlace:
		replies = b.editor.RequestName(ctx, chatID)
	case data == callbackShowUnfilled:
		replies = b.editor.RequestUnfilled(ctx, chatID)
	case domain.Category(data).IsValid():
		replies = b.editor.SubmitCategory(ctx, chatID, data)
	default:
		replies = b.editor.SelectField(ctx, chatID, data)
	}
	b.send(ctx, chatID, replies)
}

func (b *Bot) handleMessage(ctx context.Context, m *tgbotapi.Message) {
	chatID := m.Chat.ID

	switch {
	case m.IsCommand():
		b.handleCommand(ctx, m)

	case m.Location != nil:
		replies := b.editor.HandleLocation(ctx, chatID, m.Location.Latitude, m.Location.Longitude)
		b.send(ctx, chatID, replies)

	case len(m.Photo) > 0:
		b.handlePhoto(ctx, m)

	case m.Text == buttonExitLabel:
		b.send(ctx, chatID, b.editor.Exit(ctx, chatID))

	case m.Text == buttonSaveLabel:
		b.send(ctx, chatID, b.editor.Save(ctx, chatID))

	case m.Text != "":
		b.send(ctx, chatID, b.editor.HandleText(ctx, chatID, m.Text))
	}
}

func (b *Bot) handleCommand(ctx context.Context, m *tgbotapi.Message) {
	chatID := m.Chat.ID

	switch m.Command() {
	case "start":
		op := domain.Operator{
			ID:        m.From.ID,
			FirstName: m.From.FirstName,
			LastName:  m.From.LastName,
		}
		b.send(ctx, chatID, b.editor.Start(ctx, chatID, op))
	case "finish":
		b.send(ctx, chatID, b.editor.FinishPhotos(ctx, chatID))
	default:
		b.log.DebugContext(ctx, "unknown command", slog.String("command", m.Command()))
	}
}

// handlePhoto resolves the largest size of the received photo to a
// retrievable file URL and queues it on the session.
func (b *Bot) handlePhoto(ctx context.Context, m *tgbotapi.Message) {
	chatID := m.Chat.ID
	largest := m.Photo[len(m.Photo)-1]

	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: largest.FileID})
	if err != nil {
		b.log.ErrorContext(ctx, "photo file lookup failed", slog.String("error", err.Error()))
		return
	}

	replies := b.editor.AddPhoto(ctx, chatID, file.Link(b.api.Token))
	b.send(ctx, chatID, replies)
}

func (b *Bot) send(ctx context.Context, chatID int64, replies []editor.Reply) {
	operatorID, _ := ctxutil.OperatorIDFromCtx(ctx)
	for _, r := range replies {
		if _, err := b.api.Send(render(chatID, r)); err != nil {
			b.log.ErrorContext(ctx, "send failed",
				slog.Int64("chat_id", chatID),
				slog.Int64("operator_id", operatorID),
				slog.Int("update_id", ctxutil.UpdateIDFromCtx(ctx)),
				slog.String("error", err.Error()),
			)
		}
	}
}
