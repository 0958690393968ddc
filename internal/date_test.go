package internal

import (
	"errors"
	"testing"
	"time"
)

func TestParseLedgerDate_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"plain date", "2024/01/15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"leap day", "2024/02/29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"unpadded groups", "2024/2/5", time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", "  2024/12/31  ", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"last day of month", "2025/04/30", time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLedgerDate(tt.input)
			if err != nil {
				t.Fatalf("ParseLedgerDate(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseLedgerDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLedgerDate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ErrorCode
	}{
		{"empty", "", EmptyDate},
		{"whitespace only", "   ", EmptyDate},
		{"wrong separator", "2024-02-30", MalformedDate},
		{"two groups", "2024/02", MalformedDate},
		{"four groups", "2024/02/03/04", MalformedDate},
		{"non-numeric group", "2024/feb/01", MalformedDate},
		{"empty group", "2024//01", MalformedDate},
		{"signed group", "2024/-1/01", MalformedDate},
		{"day 30 of february", "2024/02/30", NonexistentDate},
		{"feb 29 in non-leap year", "2023/02/29", NonexistentDate},
		{"month 13", "2024/13/01", NonexistentDate},
		{"month 0", "2024/00/10", NonexistentDate},
		{"day 0", "2024/03/00", NonexistentDate},
		{"day 31 in april", "2025/04/31", NonexistentDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLedgerDate(tt.input)
			if err == nil {
				t.Fatalf("ParseLedgerDate(%q) succeeded, want %s", tt.input, tt.want)
			}
			if got := CodeOf(err); got != tt.want {
				t.Errorf("ParseLedgerDate(%q) code = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLedgerDate_ErrorsMatchByCode(t *testing.T) {
	_, err := ParseLedgerDate("2024/02/30")
	if !errors.Is(err, &ValidationError{Code: NonexistentDate}) {
		t.Errorf("errors.Is by code = false, want true (err = %v)", err)
	}
	if errors.Is(err, &ValidationError{Code: MalformedDate}) {
		t.Error("errors.Is matched the wrong code")
	}
}

func TestFormatLedgerDate_Canonical(t *testing.T) {
	date, err := ParseLedgerDate("2024/2/5")
	if err != nil {
		t.Fatalf("ParseLedgerDate error = %v", err)
	}
	if got := FormatLedgerDate(date); got != "2024/02/05" {
		t.Errorf("FormatLedgerDate = %q, want %q", got, "2024/02/05")
	}
}
