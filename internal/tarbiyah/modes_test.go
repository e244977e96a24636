package tarbiyah

import (
	"errors"
	"strings"
	"testing"

	"tarbiyah-bot/internal/catalog"
	"tarbiyah-bot/internal/models"
)

// fakeStore keeps one user's day in memory.
type fakeStore struct {
	mode    models.Mode
	modeSet bool
	rec     map[string]models.ItemValue
	cleared int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rec: map[string]models.ItemValue{}}
}

func (f *fakeStore) GetDailyMode(int64) (models.Mode, error) {
	if !f.modeSet {
		return models.ModeNormal, nil
	}
	return f.mode, nil
}

func (f *fakeStore) SetDailyMode(_ int64, m models.Mode) error {
	f.mode, f.modeSet = m, true
	return nil
}

func (f *fakeStore) GetRecord(int64) (map[string]models.ItemValue, error) {
	return f.rec, nil
}

func (f *fakeStore) ClearToday(int64) error {
	f.rec = map[string]models.ItemValue{}
	f.cleared++
	return nil
}

func TestRequestModeNoDataSwitchesSilently(t *testing.T) {
	s := newFakeStore()

	out, err := RequestMode(s, 1, models.ModeHaid)
	if err != nil {
		t.Fatal(err)
	}
	if out != ModeSwitched {
		t.Fatalf("outcome = %v, want ModeSwitched", out)
	}
	if got, _ := s.GetDailyMode(1); got != models.ModeHaid {
		t.Errorf("stored mode = %s, want haid", got)
	}
}

func TestRequestModeConflictAsksWithoutMutating(t *testing.T) {
	s := newFakeStore()
	s.rec["subuh"] = models.ItemValue{Done: true}

	out, err := RequestMode(s, 1, models.ModeHaid)
	if err != nil {
		t.Fatal(err)
	}
	if out != ConfirmationRequired {
		t.Fatalf("outcome = %v, want ConfirmationRequired", out)
	}
	// cancellation path: nothing else happens
	if got, _ := s.GetDailyMode(1); got != models.ModeNormal {
		t.Errorf("stored mode = %s, want normal untouched", got)
	}
	if !s.rec["subuh"].Done {
		t.Error("existing data must survive an unconfirmed request")
	}
}

func TestConfirmSwitchClearsAndSwitches(t *testing.T) {
	s := newFakeStore()
	s.rec["subuh"] = models.ItemValue{Done: true}

	if err := ConfirmSwitch(s, 1, models.ModeHaid); err != nil {
		t.Fatal(err)
	}
	if len(s.rec) != 0 {
		t.Error("record not cleared on confirmation")
	}
	if got, _ := s.GetDailyMode(1); got != models.ModeHaid {
		t.Errorf("stored mode = %s, want haid", got)
	}
}

func TestRequestModeIdempotent(t *testing.T) {
	s := newFakeStore()
	_ = s.SetDailyMode(1, models.ModeHaid)
	s.rec["dzikirPagi"] = models.ItemValue{Done: true}

	for i := 0; i < 2; i++ {
		out, err := RequestMode(s, 1, models.ModeHaid)
		if err != nil {
			t.Fatal(err)
		}
		if out != ModeUnchanged {
			t.Fatalf("call %d: outcome = %v, want ModeUnchanged", i+1, out)
		}
	}
	if s.cleared != 0 {
		t.Error("re-requesting the active mode must never clear data")
	}
	if !s.rec["dzikirPagi"].Done {
		t.Error("data lost on repeated same-mode request")
	}
}

func TestValidateReasonBounds(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"two chars rejected", "ab", ErrReasonTooShort},
		{"three chars accepted", "abc", nil},
		{"hundred chars accepted", strings.Repeat("a", 100), nil},
		{"hundred-one chars rejected", strings.Repeat("a", 101), ErrReasonTooLong},
		{"whitespace only", "   \t ", ErrReasonTooShort},
		{"trimmed before counting", "  sakit  ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateReason(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && (got != strings.TrimSpace(tt.raw)) {
				t.Errorf("reason = %q, want trimmed input", got)
			}
		})
	}
}

func TestCountProgressTreatsExcusedAsDone(t *testing.T) {
	items := catalog.Resolve(false, models.ModeNormal)
	rec := map[string]models.ItemValue{
		"subuh":  {Done: true},
		"dzuhur": {Excused: true, Reason: "safar"},
		"ashar":  {}, // explicitly marked not done
	}

	completed, total := CountProgress(items, rec)
	if total != 20 {
		t.Errorf("total = %d, want 20", total)
	}
	if completed != 2 {
		t.Errorf("completed = %d, want 2 (done + excused)", completed)
	}
}
