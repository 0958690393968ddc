package internal

import "strings"

// BuildTransaction runs raw form fields through the full validation
// pipeline and returns a Transaction or the first failure.
//
// The check order is fixed because it decides which single error the
// user sees when several fields are bad: date, then kind, then amount,
// then category normalization (which never fails).
func BuildTransaction(rawDate, rawKind, rawCategory, rawAmount, rawMemo string, cats Categories) (Transaction, error) {
	date, err := ParseLedgerDate(rawDate)
	if err != nil {
		return Transaction{}, err
	}

	kind, ok := ParseKind(rawKind)
	if !ok {
		return Transaction{}, &ValidationError{Code: InvalidType, Field: "type", Value: rawKind}
	}

	amount, err := ParseAmountStrict(rawAmount)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		Date:     date,
		Kind:     kind,
		Category: cats.Normalize(rawCategory, kind),
		Amount:   amount,
		Memo:     strings.TrimSpace(rawMemo),
	}, nil
}

// BuildTransactionFromRow validates one positional record (a CSV row
// or spreadsheet row): date, type, category, amount, optional memo.
func BuildTransactionFromRow(fields []string, cats Categories) (Transaction, error) {
	if len(fields) < 4 {
		return Transaction{}, &ValidationError{Code: InsufficientColumns, Field: "row"}
	}

	memo := ""
	if len(fields) > 4 {
		memo = fields[4]
	}

	return BuildTransaction(
		strings.TrimSpace(fields[0]),
		fields[1],
		fields[2],
		fields[3],
		memo,
		cats,
	)
}
