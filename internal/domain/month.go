package domain

import (
	"strings"
	"time"
)

// ParseMonth resolves a full English month name ("January".."December") to a
// time.Month. Matching ignores case and surrounding whitespace; abbreviations
// and numbers are rejected.
func ParseMonth(name string) (time.Month, error) {
	name = strings.TrimSpace(name)
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, ErrInvalidMonth
}

// MonthName returns the canonical name of m, or "" when m is out of range.
func MonthName(m time.Month) string {
	if !ValidMonth(m) {
		return ""
	}
	return m.String()
}

// ValidMonth reports whether m is one of the twelve calendar months.
func ValidMonth(m time.Month) bool {
	return m >= time.January && m <= time.December
}

// MonthNames lists the canonical month names in calendar order.
func MonthNames() []string {
	names := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		names = append(names, m.String())
	}
	return names
}
