package internal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// amountReplacer strips currency glyphs and thousands separators
// before decimal parsing. Both the half-width and full-width yen
// signs appear in the wild.
var amountReplacer = strings.NewReplacer("¥", "", "￥", "", ",", "")

// ParseAmount converts free-form amount text ("1234", "¥1,234") to an
// exact decimal. It does not enforce the >= 1 business rule; that is
// layered on top by ParseAmountStrict.
func ParseAmount(text string) (decimal.Decimal, error) {
	normalized := strings.TrimSpace(amountReplacer.Replace(text))
	if normalized == "" {
		return decimal.Decimal{}, &ValidationError{Code: EmptyAmount, Field: "amount"}
	}
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Code: NotANumber, Field: "amount", Value: text}
	}
	return value, nil
}

// ParseAmountStrict validates an amount field. Any parse failure is
// reported as InvalidAmount; values below 1 as NonPositiveAmount.
func ParseAmountStrict(text string) (decimal.Decimal, error) {
	value, err := ParseAmount(text)
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Code: InvalidAmount, Field: "amount", Value: text}
	}
	if value.LessThan(decimal.NewFromInt(1)) {
		return decimal.Decimal{}, &ValidationError{Code: NonPositiveAmount, Field: "amount", Value: text}
	}
	return value, nil
}
