package handlers

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tarbiyah-bot/internal/tarbiyah"
)

var nameRx = regexp.MustCompile(`(?i)^nama:\s*(.*)$`)

// HandleText handles non-command messages: the "Nama: …" prefix always
// wins, only then may the text be consumed as a pending excuse reason.
func (h *Handler) HandleText(msg *tgbotapi.Message) {
	if m := nameRx.FindStringSubmatch(msg.Text); m != nil {
		h.handleSetName(msg, m[1])
		return
	}
	h.handleExcuseReason(msg)
}

func (h *Handler) handleSetName(msg *tgbotapi.Message, raw string) {
	chatID := msg.Chat.ID

	name := strings.TrimSpace(raw)
	if name == "" {
		h.send(chatID, textNameInvalid)
		return
	}

	if _, err := h.DB.FindOrCreateUser(msg.From.ID, msg.From.FirstName, msg.From.UserName); err != nil {
		log.Printf("set name: %v", err)
		h.send(chatID, textStoreError)
		return
	}
	if err := h.DB.SetDisplayName(msg.From.ID, name); err != nil {
		log.Printf("set name: %v", err)
		h.send(chatID, textStoreError)
		return
	}

	h.send(chatID, fmt.Sprintf(textNameSaved, name))

	u, err := h.DB.GetUser(msg.From.ID)
	if err == nil && u != nil && u.TeamHandler == nil {
		h.askTeamRole(chatID)
	}
}

func (h *Handler) handleExcuseReason(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	p, err := h.DB.GetPendingExcuse(msg.From.ID)
	if err != nil {
		log.Printf("excuse reason: %v", err)
		h.send(chatID, textStoreError)
		return
	}
	if p == nil {
		return
	}

	reason, err := tarbiyah.ValidateReason(msg.Text)
	if err != nil {
		// re-prompt; the pending request stays open
		switch {
		case errors.Is(err, tarbiyah.ErrReasonTooShort):
			h.send(chatID, textReasonTooShort)
		case errors.Is(err, tarbiyah.ErrReasonTooLong):
			h.send(chatID, textReasonTooLong)
		}
		return
	}

	// saved under the key captured when udzhur was requested, even if
	// the day's mode changed while the request was pending
	if err := h.DB.SetItemExcused(p.TelegramID, p.ItemKey, reason); err != nil {
		log.Printf("excuse reason: save: %v", err)
		h.send(chatID, textStoreError)
		return
	}
	if err := h.DB.ClearPendingExcuse(p.TelegramID); err != nil {
		log.Printf("excuse reason: clear pending: %v", err)
	}
	h.send(chatID, fmt.Sprintf(textReasonSaved, p.Label, reason))
}
