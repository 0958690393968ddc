package internal

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// JSONLedgerOutput is the JSON rendering of the transaction list view
type JSONLedgerOutput struct {
	Transactions []JSONLedgerRow   `json:"transactions"`
	Summary      JSONLedgerSummary `json:"summary"`
}

// JSONLedgerSummary carries the exact totals as plain decimal strings
type JSONLedgerSummary struct {
	Count    int    `json:"count"`
	Expense  string `json:"expense"`
	Income   string `json:"income"`
	Net      string `json:"net"`
	Currency string `json:"currency"`
}

// JSONReportOutput is the JSON rendering of an aggregate report
type JSONReportOutput struct {
	Mode     string          `json:"mode"`
	Kind     string          `json:"kind"`
	Currency string          `json:"currency"`
	Total    string          `json:"total"`
	Rows     []JSONReportRow `json:"rows"`
}

type JSONReportRow struct {
	Key   string `json:"key"`
	Sum   string `json:"sum"`
	Count int    `json:"count"`
	Share string `json:"share,omitempty"` // category reports only
}

// PrintTransactionsJSON outputs the ledger contents in JSON format
func PrintTransactionsJSON(w io.Writer, ledger *Ledger, cur Currency) {
	txns := ledger.Transactions()
	rows := make([]JSONLedgerRow, 0, len(txns))
	for _, txn := range txns {
		rows = append(rows, JSONLedgerRow{
			Date:     txn.DateString(),
			Type:     string(txn.Kind),
			Category: txn.Category,
			Amount:   txn.Amount.String(),
			Memo:     txn.Memo,
		})
	}

	expense, income, net := ledger.Totals()
	output := JSONLedgerOutput{
		Transactions: rows,
		Summary: JSONLedgerSummary{
			Count:    ledger.Len(),
			Expense:  expense.String(),
			Income:   income.String(),
			Net:      net.String(),
			Currency: cur.Code,
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(output)
}

// PrintTransactionsTable renders the ledger as a table with the exact
// totals in the footer.
func PrintTransactionsTable(w io.Writer, ledger *Ledger, cur Currency) {
	expense, income, net := ledger.Totals()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Type", "Category", "Amount", "Memo"})

	for _, txn := range ledger.Transactions() {
		t.AppendRow(table.Row{
			txn.DateString(),
			string(txn.Kind),
			txn.Category,
			cur.Format(txn.Amount),
			txn.Memo,
		})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{"", "", text.Bold.Sprint("Net"), text.Bold.Sprint(cur.Format(net)), ""})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
	})

	t.Render()
	fmt.Fprintf(w, "Expense: %s / Income: %s / Net: %s\n",
		cur.Format(expense), cur.Format(income), cur.Format(net))
}

// PrintReportJSON outputs an aggregate report in JSON format
func PrintReportJSON(w io.Writer, report *Report, cur Currency) {
	rows := make([]JSONReportRow, 0, len(report.Rows))
	for _, row := range report.Rows {
		out := JSONReportRow{
			Key:   row.Key,
			Sum:   row.Sum.String(),
			Count: row.Count,
		}
		if report.Mode == ByCategory {
			out.Share = row.Share.StringFixed(1)
		}
		rows = append(rows, out)
	}

	output := JSONReportOutput{
		Mode:     string(report.Mode),
		Kind:     string(report.Kind),
		Currency: cur.Code,
		Total:    report.Total.String(),
		Rows:     rows,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(output)
}

// PrintReportTable renders an aggregate report as a table.
func PrintReportTable(w io.Writer, report *Report, cur Currency) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := table.Row{keyLabel(report.Mode), "Amount", "Count"}
	if report.Mode == ByCategory {
		header = append(header, "Share (%)")
	}
	t.AppendHeader(header)

	for _, row := range report.Rows {
		out := table.Row{row.Key, cur.Format(row.Sum), row.Count}
		if report.Mode == ByCategory {
			out = append(out, row.Share.StringFixed(1))
		}
		t.AppendRow(out)
	}

	t.AppendSeparator()
	footer := table.Row{text.Bold.Sprint("Total"), text.Bold.Sprint(cur.Format(report.Total)), ""}
	if report.Mode == ByCategory {
		footer = append(footer, "")
	}
	t.AppendFooter(footer)

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault

	configs := []table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	}
	if report.Mode == ByCategory {
		configs = append(configs, table.ColumnConfig{Number: 4, Align: text.AlignRight})
	}
	t.SetColumnConfigs(configs)

	t.Render()
}

func keyLabel(mode ReportMode) string {
	switch mode {
	case ByMonth:
		return "Month"
	case ByYear:
		return "Year"
	default:
		return "Category"
	}
}
