package internal

import (
	"strconv"
	"strings"
	"time"
)

const ledgerDateLayout = "2006/01/02"

// ParseLedgerDate converts YYYY/MM/DD text into a normalized UTC date.
// Failure modes, checked in order:
//   - EmptyDate: blank input
//   - MalformedDate: not exactly three /-separated numeric groups
//   - NonexistentDate: numeric groups that do not form a real calendar
//     day (2024/02/30, 2024/13/01)
func ParseLedgerDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, &ValidationError{Code: EmptyDate, Field: "date"}
	}

	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return time.Time{}, &ValidationError{Code: MalformedDate, Field: "date", Value: text}
	}
	nums := make([]int, 3)
	for i, part := range parts {
		if part == "" || !isDigits(part) {
			return time.Time{}, &ValidationError{Code: MalformedDate, Field: "date", Value: text}
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, &ValidationError{Code: MalformedDate, Field: "date", Value: text}
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (Feb 30 becomes
	// Mar 1), so a round-trip mismatch means the day never existed.
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, &ValidationError{Code: NonexistentDate, Field: "date", Value: text}
	}
	return date, nil
}

// FormatLedgerDate renders a date in the canonical YYYY/MM/DD form.
func FormatLedgerDate(date time.Time) string {
	return date.Format(ledgerDateLayout)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
