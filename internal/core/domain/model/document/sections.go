package document

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/model/production"
)

// Company is the branding block at the top of every page.
type Company struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

// Barcode is the encoded payload and its rendered symbol.
type Barcode struct {
	Payload string
	PNG     []byte
}

// Sections is everything a document is composed from. Order is required;
// every other upstream section may be missing and is then printed as N/A.
//
// For a label, LabelSequence selects the package row printed on it.
type Sections struct {
	Kind          Kind
	Number        string
	IssuedAt      time.Time
	Company       Company
	Order         *order.Order
	Production    *production.Record
	Packages      packaging.Aggregate
	Delivery      *delivery.Record
	Units         []string
	Totals        Totals
	Barcode       Barcode
	LabelSequence int
}

// Filename derives the download name from the order business key.
func (s Sections) Filename() string {
	if s.Order == nil {
		return ""
	}
	if s.Kind == Label {
		return LabelFilename(s.Order.OrderID(), s.LabelSequence)
	}
	return InvoiceFilename(s.Order.OrderID())
}
