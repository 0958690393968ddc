package internal

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the transaction kind, a closed set of two values.
type Kind string

const (
	Expense Kind = "Expense"
	Income  Kind = "Income"
)

// ParseKind matches raw text against the closed kind set.
// Matching is case-insensitive after trimming; the canonical
// capitalized form is always returned.
func ParseKind(raw string) (Kind, bool) {
	switch {
	case strings.EqualFold(strings.TrimSpace(raw), string(Expense)):
		return Expense, true
	case strings.EqualFold(strings.TrimSpace(raw), string(Income)):
		return Income, true
	default:
		return "", false
	}
}

// Transaction is one ledger entry. It is immutable once built:
// edits replace the stored value wholesale via Ledger.Update.
type Transaction struct {
	Date     time.Time
	Kind     Kind
	Category string
	Amount   decimal.Decimal
	Memo     string
}

// DateString returns the canonical YYYY/MM/DD form of the date.
func (t Transaction) DateString() string {
	return FormatLedgerDate(t.Date)
}

// MonthKey returns the YYYY-MM bucket key for monthly reports.
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// YearKey returns the YYYY bucket key for yearly reports.
func (t Transaction) YearKey() string {
	return t.Date.Format("2006")
}
