package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/guidecr/placebot/internal/domain"
	"github.com/guidecr/placebot/internal/service/editor"
)

// Callback payloads for the main-menu buttons.
const (
	callbackAddPlace     = "button_add_pressed"
	callbackShowUnfilled = "show_unfilled_places"
	buttonExitLabel      = "Exit"
	buttonSaveLabel      = "Save"
	buttonShareLocLabel  = "Share location"
	buttonShowCardLabel  = "Show place card"
	buttonUnfilledLabel  = "Show unfilled places"
	editBarButtonsPerRow = 2
)

// render turns a service reply into a sendable message with the requested
// keyboard attached.
func render(chatID int64, r editor.Reply) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, r.Text)
	if markup := keyboard(r.Markup); markup != nil {
		msg.ReplyMarkup = markup
	}
	return msg
}

func keyboard(kind editor.MarkupKind) interface{} {
	switch kind {
	case editor.MarkupMainMenu:
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(buttonShowCardLabel, callbackAddPlace),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(buttonUnfilledLabel, callbackShowUnfilled),
			),
		)

	case editor.MarkupEditBar:
		fields := domain.EditableFields()
		var rows [][]tgbotapi.InlineKeyboardButton
		for i := 0; i < len(fields); i += editBarButtonsPerRow {
			var row []tgbotapi.InlineKeyboardButton
			for _, f := range fields[i:min(i+editBarButtonsPerRow, len(fields))] {
				row = append(row, tgbotapi.NewInlineKeyboardButtonData(f.Label(), f.String()))
			}
			rows = append(rows, row)
		}
		return tgbotapi.NewInlineKeyboardMarkup(rows...)

	case editor.MarkupCategoryChoices:
		var rows [][]tgbotapi.InlineKeyboardButton
		for _, c := range domain.Categories() {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(c.String(), c.String()),
			))
		}
		return tgbotapi.NewInlineKeyboardMarkup(rows...)

	case editor.MarkupSaveExit:
		kb := tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(buttonExitLabel),
				tgbotapi.NewKeyboardButton(buttonSaveLabel),
			),
		)
		kb.ResizeKeyboard = true
		return kb

	case editor.MarkupForceReply:
		return tgbotapi.ForceReply{ForceReply: true}

	case editor.MarkupShareLocation:
		kb := tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButtonLocation(buttonShareLocLabel),
			),
		)
		kb.OneTimeKeyboard = true
		kb.ResizeKeyboard = true
		return kb
	}
	return nil
}
