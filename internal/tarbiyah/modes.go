// Package tarbiyah holds the daily-record decision logic: mode
// switching, excuse validation and completion counting. Everything here
// is side-effect free except through the Store interface.
package tarbiyah

import (
	"tarbiyah-bot/internal/catalog"
	"tarbiyah-bot/internal/models"
)

// Store is the slice of the record store the policy needs.
type Store interface {
	GetDailyMode(telegramID int64) (models.Mode, error)
	SetDailyMode(telegramID int64, mode models.Mode) error
	GetRecord(telegramID int64) (map[string]models.ItemValue, error)
	ClearToday(telegramID int64) error
}

// SwitchOutcome tells the caller how a checklist-entry request for a
// given mode was resolved.
type SwitchOutcome int

const (
	// ModeUnchanged: requested mode is already active, nothing stored.
	ModeUnchanged SwitchOutcome = iota
	// ModeSwitched: no data existed today, mode switched silently.
	ModeSwitched
	// ConfirmationRequired: today already has data under the other
	// mode; nothing was stored, the user must confirm first.
	ConfirmationRequired
)

// RequestMode applies the mode-switch rules for a checklist-entry
// request. Requesting the already-active mode never touches stored
// state, so repeating a request is safe.
func RequestMode(s Store, telegramID int64, requested models.Mode) (SwitchOutcome, error) {
	current, err := s.GetDailyMode(telegramID)
	if err != nil {
		return ModeUnchanged, err
	}
	if current == requested {
		return ModeUnchanged, nil
	}

	rec, err := s.GetRecord(telegramID)
	if err != nil {
		return ModeUnchanged, err
	}
	if len(rec) > 0 {
		return ConfirmationRequired, nil
	}

	if err := s.SetDailyMode(telegramID, requested); err != nil {
		return ModeUnchanged, err
	}
	return ModeSwitched, nil
}

// ConfirmSwitch wipes today's data and activates the requested mode.
// The wiped data is gone for good.
func ConfirmSwitch(s Store, telegramID int64, requested models.Mode) error {
	if err := s.ClearToday(telegramID); err != nil {
		return err
	}
	return s.SetDailyMode(telegramID, requested)
}

// CountProgress tallies completed items of a resolved checklist against
// a day's record. Excused items count as completed, absent ones do not.
func CountProgress(items []catalog.Item, rec map[string]models.ItemValue) (completed, total int) {
	total = len(items)
	for _, it := range items {
		if rec[it.Key].IsCompleted() {
			completed++
		}
	}
	return completed, total
}
