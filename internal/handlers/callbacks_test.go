package handlers

import (
	"testing"

	"tarbiyah-bot/internal/models"
)

func TestParsePointCallback(t *testing.T) {
	tests := []struct {
		data string
		want pointCallback
		ok   bool
	}{
		{"tarbiyah_subuh_done_normal", pointCallback{"subuh", "done", models.ModeNormal}, true},
		{"tarbiyah_qobliyahSubuh_undone_normal", pointCallback{"qobliyahSubuh", "undone", models.ModeNormal}, true},
		{"tarbiyah_dzikirPagi_udzhur_haid", pointCallback{"dzikirPagi", "udzhur", models.ModeHaid}, true},
		// keys may contain underscores: everything before the last two
		// segments is the key
		{"tarbiyah_infaq_subuh_done_normal", pointCallback{"infaq_subuh", "done", models.ModeNormal}, true},
		{"tarbiyah_a_b_c_udzhur_haid", pointCallback{"a_b_c", "udzhur", models.ModeHaid}, true},
		{"tarbiyah_subuh_done_weekly", pointCallback{}, false},
		{"tarbiyah_subuh_skip_normal", pointCallback{}, false},
		{"tarbiyah__done_normal", pointCallback{}, false},
		{"tarbiyah_done_normal", pointCallback{}, false},
		{"change_mode_haid_confirm", pointCallback{}, false},
		{"", pointCallback{}, false},
	}
	for _, tt := range tests {
		got, ok := parsePointCallback(tt.data)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parsePointCallback(%q) = %+v, %v; want %+v, %v", tt.data, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPointCallbackRoundTrip(t *testing.T) {
	data := encodePointCallback("handleTim", actionDone, models.ModeHaid)
	got, ok := parsePointCallback(data)
	if !ok {
		t.Fatalf("round trip of %q failed to parse", data)
	}
	if got.Key != "handleTim" || got.Action != actionDone || got.Mode != models.ModeHaid {
		t.Errorf("round trip = %+v", got)
	}
}

func TestParseModeConfirm(t *testing.T) {
	tests := []struct {
		data string
		want models.Mode
		ok   bool
	}{
		{"change_mode_haid_confirm", models.ModeHaid, true},
		{"change_mode_normal_confirm", models.ModeNormal, true},
		{"change_mode_cancel", "", false},
		{"change_mode_weekly_confirm", "", false},
		{"setup_team_yes", "", false},
	}
	for _, tt := range tests {
		got, ok := parseModeConfirm(tt.data)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseModeConfirm(%q) = %q, %v; want %q, %v", tt.data, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNameRx(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"Nama: Ahmad", "Ahmad", true},
		{"nama:Budi", "Budi", true},
		{"NAMA:   Siti Aisyah  ", "Siti Aisyah  ", true},
		{"Nama:", "", true}, // matches; handler rejects the empty name
		{"Namaku: Ahmad", "", false},
		{"sakit kepala", "", false},
	}
	for _, tt := range tests {
		m := nameRx.FindStringSubmatch(tt.text)
		if (m != nil) != tt.ok {
			t.Errorf("nameRx(%q) matched=%v, want %v", tt.text, m != nil, tt.ok)
			continue
		}
		if m != nil && m[1] != tt.want {
			t.Errorf("nameRx(%q) captured %q, want %q", tt.text, m[1], tt.want)
		}
	}
}
