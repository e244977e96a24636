package handlers

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tarbiyah-bot/internal/catalog"
	"tarbiyah-bot/internal/models"
	"tarbiyah-bot/internal/tarbiyah"
)

const (
	tokenPrefix = "tarbiyah_"

	actionDone   = "done"
	actionUndone = "undone"
	actionUdzhur = "udzhur"

	cbModeCancel = "change_mode_cancel"
	cbTeamYes    = "setup_team_yes"
	cbTeamNo     = "setup_team_no"
)

type pointCallback struct {
	Key    string
	Action string
	Mode   models.Mode
}

func encodePointCallback(key, action string, mode models.Mode) string {
	return tokenPrefix + key + "_" + action + "_" + string(mode)
}

// parsePointCallback decodes tarbiyah_<key>_<action>_<mode>. Item keys
// may themselves contain underscores, so the last two segments are
// taken as action and mode and the rest rejoined as the key.
func parsePointCallback(data string) (pointCallback, bool) {
	rest, ok := strings.CutPrefix(data, tokenPrefix)
	if !ok {
		return pointCallback{}, false
	}
	parts := strings.Split(rest, "_")
	if len(parts) < 3 {
		return pointCallback{}, false
	}

	pc := pointCallback{
		Key:    strings.Join(parts[:len(parts)-2], "_"),
		Action: parts[len(parts)-2],
	}
	switch parts[len(parts)-1] {
	case string(models.ModeNormal):
		pc.Mode = models.ModeNormal
	case string(models.ModeHaid):
		pc.Mode = models.ModeHaid
	default:
		return pointCallback{}, false
	}
	switch pc.Action {
	case actionDone, actionUndone, actionUdzhur:
	default:
		return pointCallback{}, false
	}
	return pc, pc.Key != ""
}

func encodeModeConfirm(mode models.Mode) string {
	return "change_mode_" + string(mode) + "_confirm"
}

func parseModeConfirm(data string) (models.Mode, bool) {
	rest, ok := strings.CutPrefix(data, "change_mode_")
	if !ok {
		return "", false
	}
	rest, ok = strings.CutSuffix(rest, "_confirm")
	if !ok || (rest != string(models.ModeNormal) && rest != string(models.ModeHaid)) {
		return "", false
	}
	return models.Mode(rest), true
}

func (h *Handler) HandleCallback(cq *tgbotapi.CallbackQuery) {
	// answer first so the client stops its spinner
	if _, err := h.Bot.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		log.Printf("answer callback: %v", err)
	}

	data := cq.Data
	switch {
	case strings.HasPrefix(data, tokenPrefix):
		h.handlePointCallback(cq)
	case data == cbModeCancel:
		h.edit(cq.Message.Chat.ID, cq.Message.MessageID, textModeCancelled)
	case data == cbTeamYes, data == cbTeamNo:
		h.handleTeamCallback(cq, data == cbTeamYes)
	default:
		if mode, ok := parseModeConfirm(data); ok {
			h.handleModeConfirm(cq, mode)
		}
		// unknown tokens are ignored
	}
}

func (h *Handler) handlePointCallback(cq *tgbotapi.CallbackQuery) {
	pc, ok := parsePointCallback(cq.Data)
	if !ok {
		return
	}
	chatID := cq.Message.Chat.ID

	u, err := h.DB.GetUser(cq.From.ID)
	if err != nil {
		log.Printf("point callback: %v", err)
		h.send(chatID, textStoreError)
		return
	}
	if !u.HasName() {
		return
	}

	// buttons from a mode no longer active today are stale; so are
	// keys that dropped out of the list after a role change
	mode, err := h.DB.GetDailyMode(u.TelegramID)
	if err != nil {
		log.Printf("point callback: %v", err)
		h.send(chatID, textStoreError)
		return
	}
	if mode != pc.Mode {
		return
	}
	items := catalog.Resolve(u.IsTeamHandler(), pc.Mode)
	item, idx, ok := catalog.Find(items, pc.Key)
	if !ok {
		return
	}

	switch pc.Action {
	case actionDone, actionUndone:
		if err := h.DB.SetItemDone(u.TelegramID, pc.Key, pc.Action == actionDone); err != nil {
			log.Printf("point callback: save: %v", err)
			h.send(chatID, textStoreError)
			return
		}
		status := statusDone
		if pc.Action == actionUndone {
			status = statusUndone
		}
		h.edit(chatID, cq.Message.MessageID, fmt.Sprintf(textPointSaved, idx+1, item.Label, status))

	case actionUdzhur:
		err := h.DB.SetPendingExcuse(&models.PendingExcuse{
			TelegramID: u.TelegramID,
			ItemKey:    item.Key,
			Mode:       pc.Mode,
			Label:      item.Label,
		})
		if err != nil {
			log.Printf("point callback: pending: %v", err)
			h.send(chatID, textStoreError)
			return
		}
		h.edit(chatID, cq.Message.MessageID, fmt.Sprintf("%d. <b>%s</b>\nStatus: %s", idx+1, item.Label, statusAwaiting))
		h.send(chatID, fmt.Sprintf(textAskReason, item.Label))
	}
}

func (h *Handler) handleModeConfirm(cq *tgbotapi.CallbackQuery, mode models.Mode) {
	chatID := cq.Message.Chat.ID

	u, err := h.DB.GetUser(cq.From.ID)
	if err != nil || !u.HasName() {
		if err != nil {
			log.Printf("mode confirm: %v", err)
			h.send(chatID, textStoreError)
		}
		return
	}

	if err := tarbiyah.ConfirmSwitch(h.DB, u.TelegramID, mode); err != nil {
		log.Printf("mode confirm: %v", err)
		h.send(chatID, textStoreError)
		return
	}
	h.edit(chatID, cq.Message.MessageID, fmt.Sprintf(textModeChanged, mode))
	h.sendChecklist(chatID, u, mode)
}

func (h *Handler) handleTeamCallback(cq *tgbotapi.CallbackQuery, isHandler bool) {
	chatID := cq.Message.Chat.ID

	if err := h.DB.SetTeamHandler(cq.From.ID, isHandler); err != nil {
		log.Printf("team callback: %v", err)
		h.send(chatID, textStoreError)
		return
	}
	text := textTeamSavedNo
	if isHandler {
		text = textTeamSavedYes
	}
	h.edit(chatID, cq.Message.MessageID, text)
}
