package internal

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency formats ledger amounts for display: zero fraction digits,
// locale-aware thousands grouping, symbol placement per currency.
// Exact decimals are kept for arithmetic; formatting is display-only.
type Currency struct {
	Code    string // "JPY", "USD", "EUR"
	unit    currency.Unit
	tag     language.Tag
	printer *message.Printer
}

// symbolOverrides provides custom symbols where x/text defaults aren't
// ideal. The half-width yen sign matches the original ledger format
// (x/text renders JPY with the full-width ￥).
var symbolOverrides = map[string]string{
	"JPY": "¥",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
}

// defaultLocaleForCurrency provides a "home" locale per currency so
// grouping separators come out right without a system locale.
var defaultLocaleForCurrency = map[string]language.Tag{
	"JPY": language.Japanese,
	"USD": language.AmericanEnglish,
	"EUR": language.German,
	"GBP": language.BritishEnglish,
	"SEK": language.Swedish,
	"NOK": language.Norwegian,
	"DKK": language.Danish,
	"CHF": language.German,
	"CNY": language.Chinese,
	"KRW": language.Korean,
}

// GetCurrency returns the Currency for a given code.
func GetCurrency(code string) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))

	// Get the currency unit (validates the code)
	unit, err := currency.ParseISO(code)
	isUnknown := err != nil
	if isUnknown {
		unit = currency.USD // fallback unit for number formatting only
	}

	tag, ok := defaultLocaleForCurrency[code]
	if !ok {
		tag = language.English
	}

	c := Currency{
		Code:    code,
		unit:    unit,
		tag:     tag,
		printer: message.NewPrinter(tag),
	}

	// For unknown currencies, override the symbol to use the code
	if isUnknown {
		symbolOverrides[code] = code
	}

	return c
}

// getSymbol returns the currency symbol, using overrides where needed
func (c Currency) getSymbol() string {
	if sym, ok := symbolOverrides[c.Code]; ok {
		return sym
	}
	return c.printer.Sprint(currency.NarrowSymbol(c.unit))
}

// isPrefix returns true if this currency symbol should be placed
// before the amount. golang.org/x/text/currency doesn't implement
// symbol positioning from CLDR patterns, so the list is maintained
// manually.
func (c Currency) isPrefix() bool {
	switch c.Code {
	case "JPY", "USD", "GBP", "CAD", "AUD", "MXN", "HKD", "SGD", "NZD", "ZAR":
		return true
	default:
		return false
	}
}

// Format renders an exact amount as a currency string: "¥1,234".
// Whole currency units only; sub-unit digits are not displayed.
func (c Currency) Format(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	formatted := c.printer.Sprint(number.Decimal(f, number.MaxFractionDigits(0)))
	symbol := c.getSymbol()

	if c.isPrefix() {
		return symbol + formatted
	}
	return formatted + " " + symbol
}
