// Package numfmt formats quantities, weights and money for display in the
// dashboard and on printed documents. It holds no state.
//
// Display rule: a value without a fractional part is shown as an integer,
// any other value is shown with two decimals ("10", "2.50", "90.18").
package numfmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NotAvailable is printed wherever a leaf value is missing.
const NotAvailable = "N/A"

// Coerce parses a number leniently. Blank, "null", "undefined" and anything
// that is not a number yield zero.
func Coerce(value string) decimal.Decimal {
	d, ok := Parse(value)
	if !ok {
		return decimal.Zero
	}
	return d
}

// Parse reports whether value holds a number.
func Parse(value string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(value)
	switch strings.ToLower(s) {
	case "", "null", "undefined", "nan":
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Number applies the display rule: integers print without decimals, any
// other value prints two. The rule looks at d, not at the rounded result, so
// 2.999 prints "3.00".
func Number(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.StringFixed(0)
	}
	return d.StringFixed(2)
}

// Fixed always prints the given number of decimals, like toFixed.
func Fixed(d decimal.Decimal, places int32) string {
	return d.StringFixed(places)
}

// Currency prefixes a two-decimal amount with symbol.
func Currency(d decimal.Decimal, symbol string) string {
	return symbol + Fixed(d, 2)
}

// Percentage prints a rate already expressed in percent, e.g. 18 -> "18%".
func Percentage(d decimal.Decimal) string {
	return Number(d) + "%"
}

// Weight prints a weight with its unit, e.g. "5 kg".
func Weight(d decimal.Decimal, unit string) string {
	return Number(d) + " " + unit
}

// OrNA returns s, or NotAvailable when s is blank.
func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}
