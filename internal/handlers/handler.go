package handlers

import (
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tarbiyah-bot/internal/report"
	"tarbiyah-bot/internal/storage"
)

type Handler struct {
	Bot      *tgbotapi.BotAPI
	DB       *storage.DB
	Reporter *report.Reporter
	AdminID  int64
	Loc      *time.Location
}

// HandleUpdate routes one update. Anything not coming from a private
// chat is dropped; the bot only listens in the group, it never reads it.
func (h *Handler) HandleUpdate(upd tgbotapi.Update) {
	switch {
	case upd.Message != nil:
		if !upd.Message.Chat.IsPrivate() {
			return
		}
		if upd.Message.IsCommand() {
			h.HandleCommand(upd.Message)
			return
		}
		h.HandleText(upd.Message)

	case upd.CallbackQuery != nil:
		if upd.CallbackQuery.Message == nil || !upd.CallbackQuery.Message.Chat.IsPrivate() {
			return
		}
		h.HandleCallback(upd.CallbackQuery)
	}
}

func (h *Handler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := h.Bot.Send(msg); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = kb
	if _, err := h.Bot.Send(msg); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}

// edit replaces a message's text and drops its inline keyboard, the
// "saved" acknowledgement after a button press.
func (h *Handler) edit(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := h.Bot.Request(edit); err != nil {
		log.Printf("edit %d/%d: %v", chatID, messageID, err)
	}
}
