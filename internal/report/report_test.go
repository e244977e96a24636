package report

import (
	"strings"
	"testing"
	"time"

	"tarbiyah-bot/internal/catalog"
	"tarbiyah-bot/internal/models"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "0"},
		{500, "500"},
		{5000, "5.000"},
		{15000, "15.000"},
		{30000, "30.000"},
		{105000, "105.000"},
		{1500000, "1.500.000"},
	}
	for _, tt := range tests {
		if got := FormatRupiah(tt.amount); got != tt.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatal(err)
	}
	// a Monday
	d := time.Date(2026, time.August, 31, 23, 0, 0, 0, loc)
	if got, want := FormatDate(d), "Senin, 31 Agustus 2026"; got != want {
		t.Errorf("FormatDate = %q, want %q", got, want)
	}
}

func TestBuildTeamHandlerAmounts(t *testing.T) {
	// team handler, normal mode: 21 items, 15 done, 6 untouched
	items := catalog.Resolve(true, models.ModeNormal)
	if len(items) != 21 {
		t.Fatalf("resolved %d items, want 21", len(items))
	}
	rec := map[string]models.ItemValue{}
	for _, it := range items[:15] {
		rec[it.Key] = models.ItemValue{Done: true}
	}

	out := Build(time.Now(), []Entry{{Name: "Ahmad", Items: items, Record: rec}})

	if !strings.Contains(out, "Qisos perhari Rp 30.000") {
		t.Errorf("qisos line missing or wrong:\n%s", out)
	}
	if !strings.Contains(out, "Bonus perhari Rp 15.000") {
		t.Errorf("bonus line missing or wrong:\n%s", out)
	}
}

func TestBuildUsesReportLabelsAndNumbering(t *testing.T) {
	items := catalog.Resolve(false, models.ModeNormal)
	rec := map[string]models.ItemValue{"subuh": {Done: true}}

	out := Build(time.Now(), []Entry{{Name: "Ahmad", Items: items, Record: rec}})

	if !strings.Contains(out, "3. Subuh Berjamaah Di Masjid Tepat Waktu : ✅") {
		t.Errorf("report label line wrong:\n%s", out)
	}
	if !strings.Contains(out, "1. Tahajjud : ❌") {
		t.Errorf("untouched item should render as not done:\n%s", out)
	}
}

func TestBuildExcusedCountsAsCompleted(t *testing.T) {
	items := catalog.Resolve(false, models.ModeHaid)
	rec := map[string]models.ItemValue{
		"dzikirPagi": {Excused: true, Reason: "sakit"},
	}

	out := Build(time.Now(), []Entry{{Name: "Aisyah", Items: items, Record: rec}})

	if !strings.Contains(out, "1. Dzikir Al-Matsurat Pagi : 🟡 Udzhur: sakit") {
		t.Errorf("excused marker wrong:\n%s", out)
	}
	// 10 not completed, 1 excused-as-completed
	if !strings.Contains(out, "Qisos perhari Rp 50.000") {
		t.Errorf("excused item charged as qisos:\n%s", out)
	}
	if !strings.Contains(out, "Bonus perhari Rp 1.000") {
		t.Errorf("excused item missing from bonus:\n%s", out)
	}
}

func TestBuildSkipsEmptyRecords(t *testing.T) {
	items := catalog.Resolve(false, models.ModeNormal)
	out := Build(time.Now(), []Entry{
		{Name: "Ahmad", Items: items, Record: map[string]models.ItemValue{"subuh": {Done: true}}},
		{Name: "Budi", Items: items, Record: map[string]models.ItemValue{}},
	})

	if !strings.Contains(out, "Ahmad") {
		t.Error("user with data missing from report")
	}
	if strings.Contains(out, "Budi") {
		t.Error("user with empty record must not appear in report")
	}
}

func TestBuildHeader(t *testing.T) {
	out := Build(time.Date(2026, time.January, 2, 23, 0, 0, 0, time.UTC), nil)
	if !strings.HasPrefix(out, "📊 <b>LAPORAN HARIAN TARBIYAH</b>\nJumat, 2 Januari 2026\n\n") {
		t.Errorf("header wrong:\n%s", out)
	}
}
