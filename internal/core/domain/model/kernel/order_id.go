package kernel

import (
	"strings"

	"fulfillment/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed is returned when validating a zero OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("order_id")

// OrderID is the business key of an order ("O100", "SO-2024-0017"). It is
// stage local: the collaborator may reuse the same value across lines, so it
// is only meaningful together with the stage that carries it.
type OrderID struct {
	value string
}

// NewOrderID trims surrounding whitespace and rejects blank keys.
func NewOrderID(value string) (OrderID, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return OrderID{}, ErrOrderIDIsNotConstructed
	}
	return OrderID{value: v}, nil
}

// MustNewOrderID panics on a blank key. Intended for tests and constants.
func MustNewOrderID(value string) OrderID {
	id, err := NewOrderID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (o OrderID) String() string {
	return o.value
}

func (o OrderID) IsEqual(other OrderID) bool {
	return o.value == other.value
}

func (o OrderID) IsZero() bool {
	return o.value == ""
}

func (o OrderID) Validate() error {
	if o.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
