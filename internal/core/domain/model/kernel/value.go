package kernel

import (
	"fulfillment/internal/pkg/numfmt"

	"github.com/shopspring/decimal"
)

// Value is an optional numeric leaf. The zero value is absent.
type Value struct {
	amount  decimal.Decimal
	present bool
}

// NewValue returns a present value.
func NewValue(d decimal.Decimal) Value {
	return Value{amount: d, present: true}
}

// NewValueFromFloat returns a present value from a float64.
func NewValueFromFloat(f float64) Value {
	return NewValue(decimal.NewFromFloat(f))
}

// ParseValue returns an absent value when s is not a number.
func ParseValue(s string) Value {
	d, ok := numfmt.Parse(s)
	if !ok {
		return Value{}
	}
	return NewValue(d)
}

func (v Value) Present() bool {
	return v.present
}

// Decimal returns the amount, coercing an absent value to zero.
func (v Value) Decimal() decimal.Decimal {
	if !v.present {
		return decimal.Zero
	}
	return v.amount
}

// Float64 returns the amount for wire payloads, zero when absent.
func (v Value) Float64() float64 {
	return v.Decimal().InexactFloat64()
}

// String applies the display rule, or prints N/A when absent.
func (v Value) String() string {
	if !v.present {
		return numfmt.NotAvailable
	}
	return numfmt.Number(v.amount)
}

func (v Value) IsEqual(other Value) bool {
	if v.present != other.present {
		return false
	}
	return !v.present || v.amount.Equal(other.amount)
}
