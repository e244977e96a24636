// Package catalog holds the static tarbiyah checklist definitions.
package catalog

import "tarbiyah-bot/internal/models"

// Item is one daily activity. Label is used in the interactive /catat
// prompts, ReportLabel in the nightly group report.
type Item struct {
	Key         string
	Label       string
	ReportLabel string
}

var normalItems = []Item{
	{Key: "tahajud", Label: "Tahajjud", ReportLabel: "Tahajjud"},
	{Key: "qobliyahSubuh", Label: "Qobliyah Subuh", ReportLabel: "Qobliyah Subuh"},
	{Key: "subuh", Label: "Sholat Subuh", ReportLabel: "Subuh Berjamaah Di Masjid Tepat Waktu"},
	{Key: "dhuha", Label: "Sholat Dhuha", ReportLabel: "Dhuha"},
	{Key: "qobliyahDzuhur", Label: "Qobliyah Dzuhur", ReportLabel: "Qobliyah Zuhur"},
	{Key: "dzuhur", Label: "Sholat Dzuhur", ReportLabel: "Zuhur Berjamaah Di Masjid Tepat Waktu"},
	{Key: "badiahDzuhur", Label: "Ba'diah Dzuhur", ReportLabel: "Ba'diah Zuhur"},
	{Key: "qobliyahAshar", Label: "Qobliyah Ashar", ReportLabel: "Qobliah Ashar"},
	{Key: "ashar", Label: "Sholat Ashar", ReportLabel: "Ashar Berjamaah di Masjid Tepat Waktu"},
	{Key: "maghrib", Label: "Sholat Maghrib", ReportLabel: "Maghrib Berjamaah di Masjid Tepat Waktu"},
	{Key: "badiahMaghrib", Label: "Ba'diah Maghrib", ReportLabel: "Ba'diah Maghrib"},
	{Key: "qobliyahIsya", Label: "Qobliyah Isya", ReportLabel: "Qobliyah Isya"},
	{Key: "isya", Label: "Sholat Isya", ReportLabel: "Isya Berjamaah di Masjid Tepat Waktu"},
	{Key: "badiahIsya", Label: "Ba'diah Isya", ReportLabel: "Ba'diah Isya"},
	{Key: "nafs", Label: "NAFS", ReportLabel: "NAFS"},
	{Key: "bacaArtiQuran", Label: "Baca Arti Quran", ReportLabel: "Baca arti quran 1 lembar"},
	{Key: "infaqSubuh", Label: "Infaq Subuh", ReportLabel: "Infaq Subuh"},
	{Key: "istighfar", Label: "Istighfar 100x", ReportLabel: "Istighfar 100x"},
	{Key: "sholawat", Label: "Sholawat 100x", ReportLabel: "Sholawat 100x"},
	{Key: "buzzer", Label: "Buzzer", ReportLabel: "Buzzer PD"},
}

// The haid variant keeps buzzer last so the team-handler item can be
// inserted right before it without renumbering the shared tail.
var haidItems = []Item{
	{Key: "dzikirPagi", Label: "Dzikir Al-Matsurat Pagi", ReportLabel: "Dzikir Al-Matsurat Pagi"},
	{Key: "dzikirPetang", Label: "Dzikir Al-Matsurat Petang", ReportLabel: "Dzikir Al-Matsurat Petang"},
	{Key: "murojaah", Label: "Muroja'ah Hafalan", ReportLabel: "Muroja'ah Hafalan"},
	{Key: "kajianIslam", Label: "Dengar Kajian Islam", ReportLabel: "Dengar Kajian Islam"},
	{Key: "bacaBukuIslami", Label: "Baca Buku Islami", ReportLabel: "Baca Buku Islami 10 Halaman"},
	{Key: "nafs", Label: "NAFS", ReportLabel: "NAFS"},
	{Key: "bacaArtiQuran", Label: "Baca Arti Quran", ReportLabel: "Baca arti quran 1 lembar"},
	{Key: "infaqSubuh", Label: "Infaq Subuh", ReportLabel: "Infaq Subuh"},
	{Key: "istighfar", Label: "Istighfar 300x", ReportLabel: "Istighfar 300x"},
	{Key: "sholawat", Label: "Sholawat 300x", ReportLabel: "Sholawat 300x"},
	{Key: "buzzer", Label: "Buzzer", ReportLabel: "Buzzer PD"},
}

var teamItem = Item{Key: "handleTim", Label: "Handle Tim", ReportLabel: "Handle Tim Binaan"}

// Resolve returns the checklist for a user's role and mode. For team
// handlers the extra item goes last in normal mode but right before
// buzzer in haid mode; the numbering in prompts and report depends on
// that placement.
func Resolve(teamHandler bool, mode models.Mode) []Item {
	base := normalItems
	if mode == models.ModeHaid {
		base = haidItems
	}

	items := make([]Item, 0, len(base)+1)
	items = append(items, base...)
	if !teamHandler {
		return items
	}

	if mode == models.ModeHaid {
		pos := len(items) - 1 // buzzer is last in the base haid list
		items = append(items[:pos], append([]Item{teamItem}, items[pos:]...)...)
		return items
	}
	return append(items, teamItem)
}

// Find returns the item with the given key from a resolved checklist,
// along with its position, or ok=false for keys not in the list (e.g.
// stale buttons from a prior mode).
func Find(items []Item, key string) (Item, int, bool) {
	for i, it := range items {
		if it.Key == key {
			return it, i, true
		}
	}
	return Item{}, -1, false
}
