// Package money formats whole-rupee amounts for invoices.
//
// Amounts are int64 whole units (no paise) in the ledger; display code works with
// decimal.Decimal so per-unit prices (fare / passengers) keep their fraction.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter prints amounts with a currency prefix and locale digit grouping.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter builds a formatter. locale is a BCP 47 tag ("en-IN"); an invalid tag falls back to English.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// Whole formats a whole amount: 6500 -> "Rs. 6,500".
func (f *Formatter) Whole(amount int64) string {
	return f.prefix(f.printer.Sprint(number.Decimal(amount)))
}

// Fixed2 formats with two decimals: 2500 -> "Rs. 2,500.00".
// The digits come from the decimal itself, so large amounts stay exact.
func (f *Formatter) Fixed2(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	grouped := whole
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		grouped = f.printer.Sprint(number.Decimal(n))
	}
	out := grouped + "." + frac
	if amount.IsNegative() && fixed != "0.00" {
		out = "-" + out
	}
	return f.prefix(out)
}

// Plain formats a whole amount with grouping and no symbol.
func (f *Formatter) Plain(amount int64) string {
	return f.printer.Sprint(number.Decimal(amount))
}

func (f *Formatter) prefix(s string) string {
	if f.symbol == "" {
		return s
	}
	return f.symbol + " " + s
}
