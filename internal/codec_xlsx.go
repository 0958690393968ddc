package internal

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXCodec persists the ledger as a single-sheet spreadsheet with the
// same 5-column layout as the CSV format. Amounts are written as their
// exact decimal strings so the round-trip stays lossless.
type XLSXCodec struct{}

func (XLSXCodec) Import(path string, cats Categories) (ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ImportResult{}, &IOError{Op: "import", Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{}, &IOError{Op: "import", Path: path, Err: fmt.Errorf("no sheets found in file")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ImportResult{}, &IOError{Op: "import", Path: path, Err: err}
	}

	return buildFromRows(rows, cats), nil
}

func (XLSXCodec) Export(path string, txns []Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	if err := writeSheetRow(f, sheet, 1, headerLabels[:]); err != nil {
		return &IOError{Op: "export", Path: path, Err: err}
	}
	for i, txn := range txns {
		if err := writeSheetRow(f, sheet, i+2, rowOf(txn)); err != nil {
			return &IOError{Op: "export", Path: path, Err: err}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return &IOError{Op: "export", Path: path, Err: err}
	}
	return nil
}

func writeSheetRow(f *excelize.File, sheet string, row int, cells []string) error {
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	RegisterCodec("xlsx", XLSXCodec{}, ".xlsx")
}
