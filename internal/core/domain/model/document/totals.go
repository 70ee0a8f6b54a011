package document

import "github.com/shopspring/decimal"

// TaxRate is the fixed GST rate applied on every invoice.
var TaxRate = decimal.RequireFromString("0.18")

// Totals is the totals block of an invoice.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals applies TaxRate to subtotal.
func ComputeTotals(subtotal decimal.Decimal) Totals {
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
