package internal

import (
	"encoding/csv"
	"io"
	"os"
)

// CSVCodec persists the ledger as UTF-8 comma-delimited text with the
// fixed Date,Type,Category,Amount,Memo header.
type CSVCodec struct{}

func (CSVCodec) Import(path string, cats Categories) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, &IOError{Op: "import", Path: path, Err: err}
	}
	defer f.Close()

	result, err := ReadCSV(f, cats)
	if err != nil {
		return ImportResult{}, &IOError{Op: "import", Path: path, Err: err}
	}
	return result, nil
}

func (CSVCodec) Export(path string, txns []Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "export", Path: path, Err: err}
	}

	if err := WriteCSV(f, txns); err != nil {
		f.Close()
		return &IOError{Op: "export", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "export", Path: path, Err: err}
	}
	return nil
}

// ReadCSV parses ledger rows from r. Per-row validation failures are
// counted as rejected; only a malformed file as a whole is an error.
func ReadCSV(r io.Reader, cats Categories) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // column count is validated per row

	rows, err := reader.ReadAll()
	if err != nil {
		return ImportResult{}, err
	}

	return buildFromRows(rows, cats), nil
}

// WriteCSV writes the header and one row per transaction in the order
// given (store iteration order).
func WriteCSV(w io.Writer, txns []Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(headerLabels[:]); err != nil {
		return err
	}
	for _, txn := range txns {
		if err := writer.Write(rowOf(txn)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func init() {
	RegisterCodec("csv", CSVCodec{}, ".csv")
}
