// Package report builds and delivers the nightly group report.
package report

import (
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tarbiyah-bot/internal/catalog"
	"tarbiyah-bot/internal/models"
	"tarbiyah-bot/internal/storage"
	"tarbiyah-bot/internal/tarbiyah"
)

const (
	qisosPerItem = 5000
	bonusPerItem = 1000
)

var dayNames = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Entry is one user's share of the report: the checklist resolved for
// the mode stored with the record, not the mode active at send time.
type Entry struct {
	Name   string
	Items  []catalog.Item
	Record map[string]models.ItemValue
}

// Reporter loads today's records and posts one combined message.
type Reporter struct {
	Bot         *tgbotapi.BotAPI
	DB          *storage.DB
	GroupChatID int64
	Loc         *time.Location
}

// SendDaily aggregates and delivers the report. A failure reading one
// user is logged and skipped; delivery is suppressed entirely when no
// user has data today.
func (r *Reporter) SendDaily() error {
	users, err := r.DB.ListUsers()
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	var entries []Entry
	for _, u := range users {
		if !u.HasName() {
			continue
		}
		rec, err := r.DB.GetRecord(u.TelegramID)
		if err != nil {
			log.Printf("report: skip user %d: %v", u.TelegramID, err)
			continue
		}
		if len(rec) == 0 {
			continue
		}
		mode, err := r.DB.GetDailyMode(u.TelegramID)
		if err != nil {
			log.Printf("report: skip user %d: %v", u.TelegramID, err)
			continue
		}
		entries = append(entries, Entry{
			Name:   *u.DisplayName,
			Items:  catalog.Resolve(u.IsTeamHandler(), mode),
			Record: rec,
		})
	}

	if len(entries) == 0 {
		log.Println("report: no records today, nothing sent")
		return nil
	}

	msg := tgbotapi.NewMessage(r.GroupChatID, Build(time.Now().In(r.Loc), entries))
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := r.Bot.Send(msg); err != nil {
		return fmt.Errorf("send report: %w", err)
	}
	log.Printf("report: sent for %d users", len(entries))
	return nil
}

// Build renders the combined report text.
func Build(date time.Time, entries []Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 <b>LAPORAN HARIAN TARBIYAH</b>\n%s\n\n", FormatDate(date))
	for _, e := range entries {
		if len(e.Record) == 0 {
			continue
		}
		writeEntry(&b, e)
	}
	return b.String()
}

func writeEntry(b *strings.Builder, e Entry) {
	completed, total := tarbiyah.CountProgress(e.Items, e.Record)
	notCompleted := total - completed

	b.WriteString(e.Name)
	b.WriteString("\n=====================\n")
	for i, it := range e.Items {
		fmt.Fprintf(b, "%d. %s : %s\n", i+1, it.ReportLabel, marker(e.Record[it.Key]))
	}
	b.WriteString("================\n")
	fmt.Fprintf(b, "Qisos perhari Rp %s\n", FormatRupiah(notCompleted*qisosPerItem))
	fmt.Fprintf(b, "Bonus perhari Rp %s\n\n", FormatRupiah(completed*bonusPerItem))
}

func marker(v models.ItemValue) string {
	switch {
	case v.Excused:
		return "🟡 Udzhur: " + v.Reason
	case v.Done:
		return "✅"
	default:
		return "❌"
	}
}

// FormatDate renders e.g. "Senin, 31 Agustus 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d",
		dayNames[t.Weekday()], t.Day(), monthNames[t.Month()-1], t.Year())
}

// FormatRupiah groups digits in threes with dots, no decimals.
func FormatRupiah(amount int) string {
	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
