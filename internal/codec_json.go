package internal

import (
	"encoding/json"
	"os"
)

// JSONLedgerFile is a minimal JSON format for exchanging ledger data
// with other tools. Example:
//
//	{
//	  "transactions": [
//	    {"date": "2025/01/15", "type": "Expense", "category": "Food", "amount": "1200", "memo": "lunch"}
//	  ]
//	}
//
// Amounts are exact decimal strings, matching the CSV format.
type JSONLedgerFile struct {
	Transactions []JSONLedgerRow `json:"transactions"`
}

type JSONLedgerRow struct {
	Date     string `json:"date"`     // YYYY/MM/DD
	Type     string `json:"type"`     // Expense or Income
	Category string `json:"category"`
	Amount   string `json:"amount"` // plain decimal string
	Memo     string `json:"memo,omitempty"`
}

type JSONCodec struct{}

func (JSONCodec) Import(path string, cats Categories) (ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, &IOError{Op: "import", Path: path, Err: err}
	}

	var file JSONLedgerFile
	if err := json.Unmarshal(data, &file); err != nil {
		return ImportResult{}, &IOError{Op: "import", Path: path, Err: err}
	}

	// Named fields flatten back to positional rows so the validation
	// semantics stay identical across codecs.
	rows := make([][]string, 0, len(file.Transactions))
	for _, row := range file.Transactions {
		rows = append(rows, []string{row.Date, row.Type, row.Category, row.Amount, row.Memo})
	}

	return buildFromRows(rows, cats), nil
}

func (JSONCodec) Export(path string, txns []Transaction) error {
	file := JSONLedgerFile{Transactions: make([]JSONLedgerRow, 0, len(txns))}
	for _, txn := range txns {
		file.Transactions = append(file.Transactions, JSONLedgerRow{
			Date:     txn.DateString(),
			Type:     string(txn.Kind),
			Category: txn.Category,
			Amount:   txn.Amount.String(),
			Memo:     txn.Memo,
		})
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return &IOError{Op: "export", Path: path, Err: err}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return &IOError{Op: "export", Path: path, Err: err}
	}
	return nil
}

func init() {
	RegisterCodec("json", JSONCodec{}, ".json")
}
