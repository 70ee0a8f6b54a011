package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packaging"

	"github.com/shopspring/decimal"
)

// PackageAggregator derives the package figures shown for an order. Nothing
// it computes is stored; callers recompute on every read so the figures
// cannot drift from the package details.
//
// Business rules:
//   - totalWeight is the sum of every detail weight, missing weights count as 0
//   - one dimension summary per detail, "{length}x{width}x{height} cm"
//   - details keep the order in which the collaborator returned them
//   - rows are numbered 1..N regardless of storage ids
type PackageAggregator struct{}

func NewPackageAggregator() PackageAggregator {
	return PackageAggregator{}
}

// Aggregate never fails. A nil order or nil records yield an empty aggregate,
// and records belonging to another order are still counted: the caller
// fetched them by order id and the collaborator is authoritative.
func (a PackageAggregator) Aggregate(o *order.Order, records []packaging.Record) packaging.Aggregate {
	var orderID kernel.OrderID
	if o != nil {
		orderID = o.OrderID()
	}

	agg := packaging.Aggregate{
		OrderID:            orderID,
		TotalWeight:        decimal.Zero,
		DimensionSummaries: []string{},
		Rows:               []packaging.Row{},
	}

	seq := 0
	for _, record := range records {
		for _, detail := range record.Details() {
			seq++
			dims := detail.Dimensions()
			agg.TotalWeight = agg.TotalWeight.Add(detail.Weight().Decimal())
			agg.DimensionSummaries = append(agg.DimensionSummaries, dims)
			agg.Rows = append(agg.Rows, packaging.Row{
				Sequence:   seq,
				RecordID:   record.ID(),
				Detail:     detail,
				Dimensions: dims,
			})
		}
	}

	return agg
}
