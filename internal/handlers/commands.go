package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tarbiyah-bot/internal/catalog"
	"tarbiyah-bot/internal/models"
	"tarbiyah-bot/internal/tarbiyah"
)

func (h *Handler) HandleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		h.handleStart(msg)
	case "catat":
		h.handleCatat(msg)
	case "status":
		h.handleStatus(msg)
	case "settim":
		h.handleSetTim(msg)
	case "dailyreport":
		h.handleDailyReport(msg)
	case "debug":
		h.handleDebug(msg)
	}
}

func (h *Handler) handleStart(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	u, err := h.DB.FindOrCreateUser(msg.From.ID, msg.From.FirstName, msg.From.UserName)
	if err != nil {
		log.Printf("start: %v", err)
		h.send(chatID, textStoreError)
		return
	}

	if !u.HasName() {
		h.send(chatID, textWelcomeNew)
		return
	}
	h.send(chatID, fmt.Sprintf(textWelcomeBack, *u.DisplayName))
	if u.TeamHandler == nil {
		h.askTeamRole(chatID)
	}
}

func (h *Handler) handleCatat(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	u, err := h.DB.FindOrCreateUser(msg.From.ID, msg.From.FirstName, msg.From.UserName)
	if err != nil {
		log.Printf("catat: %v", err)
		h.send(chatID, textStoreError)
		return
	}
	if !u.HasName() {
		h.send(chatID, textNeedName)
		return
	}
	if u.TeamHandler == nil {
		h.askTeamRole(chatID)
		return
	}

	requested := models.ModeNormal
	if strings.EqualFold(strings.TrimSpace(msg.CommandArguments()), "haid") {
		requested = models.ModeHaid
	}

	outcome, err := tarbiyah.RequestMode(h.DB, u.TelegramID, requested)
	if err != nil {
		log.Printf("catat: request mode: %v", err)
		h.send(chatID, textStoreError)
		return
	}
	if outcome == tarbiyah.ConfirmationRequired {
		current, _ := h.DB.GetDailyMode(u.TelegramID)
		kb := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(btnConfirmSwitch, encodeModeConfirm(requested)),
				tgbotapi.NewInlineKeyboardButtonData(btnCancelSwitch, cbModeCancel),
			),
		)
		h.sendWithKeyboard(chatID, fmt.Sprintf(textModeConfirm, current, requested), kb)
		return
	}

	h.sendChecklist(chatID, u, requested)
}

// sendChecklist posts the header plus one message per item, each with
// its own done/undone/udzhur keyboard showing the current value.
func (h *Handler) sendChecklist(chatID int64, u *models.User, mode models.Mode) {
	rec, err := h.DB.GetRecord(u.TelegramID)
	if err != nil {
		log.Printf("checklist: %v", err)
		h.send(chatID, textStoreError)
		return
	}

	header := textCatatHeader
	if mode == models.ModeHaid {
		header = textCatatHaid
	}
	today := time.Now().In(h.Loc).Format("02/01/2006")
	h.send(chatID, fmt.Sprintf(header, today, *u.DisplayName))

	items := catalog.Resolve(u.IsTeamHandler(), mode)
	for i, it := range items {
		kb := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(btnDone, encodePointCallback(it.Key, actionDone, mode)),
				tgbotapi.NewInlineKeyboardButtonData(btnUndone, encodePointCallback(it.Key, actionUndone, mode)),
				tgbotapi.NewInlineKeyboardButtonData(btnUdzhur, encodePointCallback(it.Key, actionUdzhur, mode)),
			),
		)
		text := fmt.Sprintf("%d. <b>%s</b>\nStatus: %s", i+1, it.Label, pointStatus(rec, it.Key))
		h.sendWithKeyboard(chatID, text, kb)
	}
}

func pointStatus(rec map[string]models.ItemValue, key string) string {
	v, ok := rec[key]
	switch {
	case !ok:
		return statusUnset
	case v.Excused:
		return fmt.Sprintf(statusExcused, v.Reason)
	case v.Done:
		return statusDone
	default:
		return statusUndone
	}
}

func (h *Handler) handleStatus(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	u, err := h.DB.FindOrCreateUser(msg.From.ID, msg.From.FirstName, msg.From.UserName)
	if err != nil {
		log.Printf("status: %v", err)
		h.send(chatID, textStoreError)
		return
	}
	if !u.HasName() {
		h.send(chatID, textNeedName)
		return
	}

	rec, err := h.DB.GetRecord(u.TelegramID)
	if err != nil {
		log.Printf("status: %v", err)
		h.send(chatID, textStoreError)
		return
	}

	today := time.Now().In(h.Loc).Format("02/01/2006")
	var b strings.Builder
	fmt.Fprintf(&b, textStatusHeader, today, *u.DisplayName)

	if len(rec) == 0 {
		b.WriteString(textStatusEmpty)
		h.send(chatID, b.String())
		return
	}

	mode, err := h.DB.GetDailyMode(u.TelegramID)
	if err != nil {
		log.Printf("status: %v", err)
		h.send(chatID, textStoreError)
		return
	}
	items := catalog.Resolve(u.IsTeamHandler(), mode)
	for _, it := range items {
		v := rec[it.Key]
		switch {
		case v.Excused:
			fmt.Fprintf(&b, "🟡 %s (udzhur: %s)\n", it.Label, v.Reason)
		case v.Done:
			fmt.Fprintf(&b, "✅ %s\n", it.Label)
		default:
			fmt.Fprintf(&b, "❌ %s\n", it.Label)
		}
	}

	completed, total := tarbiyah.CountProgress(items, rec)
	pct := completed * 100 / total
	fmt.Fprintf(&b, textProgress, completed, total, pct)
	h.send(chatID, b.String())
}

func (h *Handler) handleSetTim(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	u, err := h.DB.FindOrCreateUser(msg.From.ID, msg.From.FirstName, msg.From.UserName)
	if err != nil {
		log.Printf("settim: %v", err)
		h.send(chatID, textStoreError)
		return
	}
	if !u.HasName() {
		h.send(chatID, textNeedName)
		return
	}
	h.askTeamRole(chatID)
}

func (h *Handler) askTeamRole(chatID int64) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnTeamYes, cbTeamYes),
			tgbotapi.NewInlineKeyboardButtonData(btnTeamNo, cbTeamNo),
		),
	)
	h.sendWithKeyboard(chatID, textAskTeam, kb)
}

func (h *Handler) handleDailyReport(msg *tgbotapi.Message) {
	if msg.From.ID != h.AdminID {
		return
	}
	if err := h.Reporter.SendDaily(); err != nil {
		log.Printf("dailyreport: %v", err)
		h.send(msg.Chat.ID, fmt.Sprintf(textReportFailed, err))
		return
	}
	h.send(msg.Chat.ID, textReportSent)
}

func (h *Handler) handleDebug(msg *tgbotapi.Message) {
	if msg.From.ID != h.AdminID {
		return
	}
	chatID := msg.Chat.ID

	if err := h.DB.Ping(); err != nil {
		h.send(chatID, fmt.Sprintf("❌ Store tidak sehat: %v", err))
		return
	}
	users, err := h.DB.ListUsers()
	if err != nil {
		h.send(chatID, fmt.Sprintf("❌ Gagal membaca users: %v", err))
		return
	}
	today, err := h.DB.CountToday()
	if err != nil {
		h.send(chatID, fmt.Sprintf("❌ Gagal membaca data hari ini: %v", err))
		return
	}

	named := 0
	for i := range users {
		if users[i].HasName() {
			named++
		}
	}
	h.send(chatID, fmt.Sprintf(
		"🛠 <b>Debug</b>\nStore: OK\nUsers: %d (%d terdaftar)\nUser dengan data hari ini: %d\nWaktu server: %s",
		len(users), named, today, time.Now().In(h.Loc).Format("02/01/2006 15:04:05"),
	))
}
