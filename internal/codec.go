package internal

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ImportResult is the accumulate-then-commit outcome of reading a
// ledger file. Transactions are only handed to the store after the
// whole file has been parsed, so a late row can never leave the store
// half-imported.
type ImportResult struct {
	Accepted     int
	Rejected     int
	Transactions []Transaction
}

// Codec reads and writes a ledger file in one persisted format.
type Codec interface {
	Import(path string, cats Categories) (ImportResult, error)
	Export(path string, txns []Transaction) error
}

// codecs is the registry of available ledger formats
var codecs = map[string]Codec{}

// extensions maps lowercased file extensions to codec names
var extensions = map[string]string{}

// RegisterCodec registers a codec under the given name and extensions
func RegisterCodec(name string, c Codec, exts ...string) {
	codecs[name] = c
	for _, ext := range exts {
		extensions[strings.ToLower(ext)] = name
	}
}

// GetCodec returns the codec registered under the given name
func GetCodec(name string) (Codec, error) {
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (available: %v)", name, AvailableFormats())
	}
	return c, nil
}

// CodecForPath picks a codec from the file extension, falling back to
// CSV for unknown extensions.
func CodecForPath(path string) Codec {
	ext := strings.ToLower(filepath.Ext(path))
	if name, ok := extensions[ext]; ok {
		return codecs[name]
	}
	return codecs["csv"]
}

// AvailableFormats returns a list of registered format names
func AvailableFormats() []string {
	var names []string
	for name := range codecs {
		names = append(names, name)
	}
	return names
}

// IsKnownFormat returns true if the name is a registered codec
func IsKnownFormat(name string) bool {
	_, ok := codecs[name]
	return ok
}

// ParseFileArg parses a file argument that may have a format prefix.
// Returns (format, path). If no valid prefix, format is empty.
// Example: "xlsx:ledger.xlsx" → ("xlsx", "ledger.xlsx")
// Example: "ledger.csv" → ("", "ledger.csv")
// Example: "C:\path\ledger.csv" → ("", "C:\path\ledger.csv") // Windows path
func ParseFileArg(arg string) (format, path string) {
	idx := strings.Index(arg, ":")
	if idx == -1 {
		return "", arg
	}
	prefix := arg[:idx]
	if IsKnownFormat(prefix) {
		return prefix, arg[idx+1:]
	}
	return "", arg // Not a known format, treat whole thing as path
}

// headerLabels is the fixed 5-column header of the persisted formats.
var headerLabels = [5]string{"Date", "Type", "Category", "Amount", "Memo"}

// isHeaderRow reports whether a row is the header line: its first four
// cells must equal the header labels exactly.
func isHeaderRow(row []string) bool {
	if len(row) < 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if row[i] != headerLabels[i] {
			return false
		}
	}
	return true
}

// buildFromRows runs positional rows through the validation pipeline,
// skipping an optional header line. Invalid rows are counted and
// skipped; import never aborts on a single bad row.
func buildFromRows(rows [][]string, cats Categories) ImportResult {
	var result ImportResult

	start := 0
	if len(rows) > 0 && isHeaderRow(rows[0]) {
		start = 1
	}

	for _, row := range rows[start:] {
		txn, err := BuildTransactionFromRow(row, cats)
		if err != nil {
			result.Rejected++
			continue
		}
		result.Transactions = append(result.Transactions, txn)
		result.Accepted++
	}

	return result
}

// rowOf flattens a transaction into the fixed 5-column form. Amount is
// the exact decimal string, no glyph or grouping, so a round-trip is
// lossless.
func rowOf(txn Transaction) []string {
	return []string{
		txn.DateString(),
		string(txn.Kind),
		txn.Category,
		txn.Amount.String(),
		txn.Memo,
	}
}
