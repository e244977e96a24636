package tarbiyah

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	minReasonLen = 3
	maxReasonLen = 100
)

var (
	ErrReasonTooShort = errors.New("alasan udzhur terlalu pendek")
	ErrReasonTooLong  = errors.New("alasan udzhur terlalu panjang")
)

// ValidateReason trims the free-text excuse reason and checks its
// length in runes. The pending request stays open when this fails.
func ValidateReason(raw string) (string, error) {
	reason := strings.TrimSpace(raw)
	switch n := utf8.RuneCountInString(reason); {
	case n < minReasonLen:
		return "", ErrReasonTooShort
	case n > maxReasonLen:
		return "", ErrReasonTooLong
	}
	return reason, nil
}
