package internal

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ReportMode selects the grouping key of an aggregate report.
type ReportMode string

const (
	ByCategory ReportMode = "category"
	ByMonth    ReportMode = "month"
	ByYear     ReportMode = "year"
)

// ParseReportMode matches raw text against the known report modes.
func ParseReportMode(raw string) (ReportMode, error) {
	switch ReportMode(strings.ToLower(strings.TrimSpace(raw))) {
	case ByCategory:
		return ByCategory, nil
	case ByMonth:
		return ByMonth, nil
	case ByYear:
		return ByYear, nil
	default:
		return "", fmt.Errorf("unknown report mode: %s (available: category, month, year)", raw)
	}
}

// ErrNoData marks a report request whose kind filter matched nothing.
// Callers render a placeholder message, never an empty table.
var ErrNoData = errors.New("no data for the requested kind")

// AggregateRow is one bucket of a report: a key (category name,
// YYYY-MM or YYYY), the exact sum of its amounts, the entry count and,
// in category mode, the percentage share of the filtered total rounded
// to one decimal place.
type AggregateRow struct {
	Key   string
	Sum   decimal.Decimal
	Count int
	Share decimal.Decimal
}

// Report is a derived, read-only view. It is recomputed from the
// ledger on every request and never stored.
type Report struct {
	Mode  ReportMode
	Kind  Kind
	Total decimal.Decimal
	Rows  []AggregateRow
}

// BuildReport filters transactions to one kind, groups them by the
// mode's bucket key and computes sums and counts. Category reports
// additionally carry percentage shares and sort descending by share;
// month and year reports sort ascending by key (chronological).
func BuildReport(txns []Transaction, mode ReportMode, kind Kind) (*Report, error) {
	keyOf := bucketKey(mode)

	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	var total decimal.Decimal
	for _, txn := range txns {
		if txn.Kind != kind {
			continue
		}
		key := keyOf(txn)
		sums[key] = sums[key].Add(txn.Amount)
		counts[key]++
		total = total.Add(txn.Amount)
	}

	if len(sums) == 0 {
		return nil, ErrNoData
	}

	rows := make([]AggregateRow, 0, len(sums))
	for key, sum := range sums {
		row := AggregateRow{Key: key, Sum: sum, Count: counts[key]}
		if mode == ByCategory {
			// total cannot be zero here: amounts are >= 1 and the
			// group set is non-empty
			row.Share = sum.Mul(decimal.NewFromInt(100)).Div(total).Round(1)
		}
		rows = append(rows, row)
	}

	report := &Report{Mode: mode, Kind: kind, Total: total, Rows: rows}
	report.defaultSort().Apply(report.Rows)
	return report, nil
}

func bucketKey(mode ReportMode) func(Transaction) string {
	switch mode {
	case ByMonth:
		return Transaction.MonthKey
	case ByYear:
		return Transaction.YearKey
	default:
		return func(txn Transaction) string { return txn.Category }
	}
}

func (r *Report) defaultSort() SortState {
	if r.Mode == ByCategory {
		return SortState{Column: ColumnShare, Desc: true}
	}
	return SortState{Column: ColumnKey}
}

// Report columns a consumer may sort by.
const (
	ColumnKey   = "key"
	ColumnSum   = "sum"
	ColumnCount = "count"
	ColumnShare = "share"
)

// SortState tracks the column and direction of a sortable report
// view. Requesting the same column again flips the direction;
// requesting another column starts ascending.
type SortState struct {
	Column string
	Desc   bool
}

func (s *SortState) Toggle(column string) {
	if s.Column == column {
		s.Desc = !s.Desc
		return
	}
	s.Column = column
	s.Desc = false
}

// Apply orders rows by the state's column and direction. Ties are
// broken by group key ascending regardless of direction, so the order
// is deterministic.
func (s SortState) Apply(rows []AggregateRow) {
	sort.Slice(rows, func(i, j int) bool {
		c := compareRows(rows[i], rows[j], s.Column)
		if c == 0 {
			return rows[i].Key < rows[j].Key
		}
		if s.Desc {
			return c > 0
		}
		return c < 0
	})
}

func compareRows(a, b AggregateRow, column string) int {
	switch column {
	case ColumnSum:
		return a.Sum.Cmp(b.Sum)
	case ColumnCount:
		switch {
		case a.Count < b.Count:
			return -1
		case a.Count > b.Count:
			return 1
		default:
			return 0
		}
	case ColumnShare:
		return a.Share.Cmp(b.Share)
	default:
		return strings.Compare(a.Key, b.Key)
	}
}
