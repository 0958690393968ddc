package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"

	"github.com/tkoide/kakeibo/internal"
)

type Params struct {
	File     string `descr:"Path to the ledger file (format by extension, or prefixed like xlsx:book.xlsx)" positional:"true"`
	Report   string `descr:"Aggregate report to print: category, month or year"`
	Kind     string `descr:"Kind filter for reports: expense or income (default expense)"`
	SortBy   string `descr:"Report column to sort by: key, sum, count or share"`
	Desc     bool   `descr:"Sort the report descending"`
	Output   string `descr:"Output format: table or json (default table)"`
	Currency string `descr:"Currency code for display formatting (default from config)"`
	Config   string `descr:"Path to the config file (default ~/.kakeibo/config.yaml)"`
	Add      string `descr:"Add one CSV-formatted row (date,type,category,amount[,memo]) and save the ledger"`
	Export   string `descr:"Also export the ledger to this path (format by extension)"`
}

func main() {
	boa.NewCmdT[Params]("kakeibo").
		WithShort("Personal income/expense ledger").
		WithLong("Records dated income and expense entries in a delimited ledger file, keeps running totals, and produces aggregate reports by category, month or year.").
		WithRunFunc(run).
		Run()
}

func run(params *Params) {
	cfg := loadConfig(params.Config)
	cur := internal.GetCurrency(firstNonEmpty(params.Currency, cfg.Currency))

	switch params.Output {
	case "", "table", "json":
	default:
		fail("unknown output format: %s (available: table, json)", params.Output)
	}
	asJSON := params.Output == "json"

	format, path := internal.ParseFileArg(params.File)
	codec := codecFor(format, path)

	ledger := internal.NewLedger()
	if _, err := os.Stat(path); err == nil || params.Add == "" {
		result, err := codec.Import(path, cfg.Categories)
		if err != nil {
			fail("Error reading ledger: %v", err)
		}
		if result.Rejected > 0 {
			fmt.Fprintf(os.Stderr, "Skipped %d invalid row(s) in %s\n", result.Rejected, path)
		}
		ledger.InsertAll(result.Transactions)
	}

	if params.Add != "" {
		addEntry(ledger, codec, path, params.Add, cfg.Categories)
	}

	if params.Export != "" {
		exportFormat, exportPath := internal.ParseFileArg(params.Export)
		if err := codecFor(exportFormat, exportPath).Export(exportPath, ledger.Transactions()); err != nil {
			fail("Error exporting ledger: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Exported %d entries to %s\n", ledger.Len(), exportPath)
	}

	if params.Report == "" {
		if asJSON {
			internal.PrintTransactionsJSON(os.Stdout, ledger, cur)
		} else {
			internal.PrintTransactionsTable(os.Stdout, ledger, cur)
		}
		return
	}

	mode, err := internal.ParseReportMode(params.Report)
	if err != nil {
		fail("%v", err)
	}

	kind := internal.Expense
	if params.Kind != "" {
		parsed, ok := internal.ParseKind(params.Kind)
		if !ok {
			fail("unknown kind: %s (available: expense, income)", params.Kind)
		}
		kind = parsed
	}

	report, err := internal.BuildReport(ledger.Transactions(), mode, kind)
	if errors.Is(err, internal.ErrNoData) {
		fmt.Printf("No %s data.\n", strings.ToLower(string(kind)))
		return
	}
	if err != nil {
		fail("Error building report: %v", err)
	}

	if params.SortBy != "" {
		switch params.SortBy {
		case internal.ColumnKey, internal.ColumnSum, internal.ColumnCount, internal.ColumnShare:
		default:
			fail("unknown sort column: %s (available: key, sum, count, share)", params.SortBy)
		}
		internal.SortState{Column: params.SortBy, Desc: params.Desc}.Apply(report.Rows)
	}

	if asJSON {
		internal.PrintReportJSON(os.Stdout, report, cur)
	} else {
		internal.PrintReportTable(os.Stdout, report, cur)
	}
}

// addEntry runs one raw row through the same validation pipeline the
// bulk import uses, then writes the whole ledger back to disk.
func addEntry(ledger *internal.Ledger, codec internal.Codec, path, raw string, cats internal.Categories) {
	fields, err := csv.NewReader(strings.NewReader(raw)).Read()
	if err != nil {
		fail("Error parsing --add row: %v", err)
	}

	txn, err := internal.BuildTransactionFromRow(fields, cats)
	if err != nil {
		fail("Invalid entry: %v", err)
	}

	ledger.Insert(txn)
	if err := codec.Export(path, ledger.Transactions()); err != nil {
		fail("Error saving ledger: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Added %s %s entry, saved %d entries to %s\n",
		txn.DateString(), strings.ToLower(string(txn.Kind)), ledger.Len(), path)
}

func loadConfig(path string) *internal.Config {
	if path == "" {
		path = internal.DefaultConfigPath()
		if path == "" {
			return internal.NewDefaultConfig()
		}
		if _, err := os.Stat(path); err != nil {
			return internal.NewDefaultConfig()
		}
	}
	cfg, err := internal.LoadConfig(path)
	if err != nil {
		fail("Error loading config: %v", err)
	}
	return cfg
}

func codecFor(format, path string) internal.Codec {
	if format != "" {
		codec, err := internal.GetCodec(format)
		if err != nil {
			fail("%v", err)
		}
		return codec
	}
	return internal.CodecForPath(path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
