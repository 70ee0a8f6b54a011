package packaging

import (
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Row is one line of the package table. Sequence is dense and 1-based
// regardless of the collaborator's ids.
type Row struct {
	Sequence   int
	RecordID   string
	Detail     Detail
	Dimensions string
}

// Aggregate is recomputed from package details on every read; nothing in it
// is persisted.
type Aggregate struct {
	OrderID            kernel.OrderID
	TotalWeight        decimal.Decimal
	DimensionSummaries []string
	Rows               []Row
}

// IsEmpty reports whether the order has no package detail at all.
func (a Aggregate) IsEmpty() bool {
	return len(a.Rows) == 0
}

// Row returns the n-th row, 1-based.
func (a Aggregate) Row(n int) (Row, bool) {
	if n < 1 || n > len(a.Rows) {
		return Row{}, false
	}
	return a.Rows[n-1], true
}

// Details returns the details of every row in order.
func (a Aggregate) Details() []Detail {
	details := make([]Detail, 0, len(a.Rows))
	for _, r := range a.Rows {
		details = append(details, r.Detail)
	}
	return details
}
