package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order was not built through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is a sales order as reported by the collaborator.
//
// Invariants:
//   - the business key is never blank
//   - quantity and unit price, when present, are not negative
//
// Quantity and unit price are optional: an order may be printed before its
// commercial figures are final, in which case the documents print N/A.
type Order struct {
	storageID string
	orderID   kernel.OrderID
	customer  Customer
	jobName   string
	agent     string
	quantity  kernel.Value
	unitPrice kernel.Value
	bag       BagSpecification
	createdAt time.Time

	isConstructed bool
}

// NewOrder validates the business key and the commercial figures.
//
// Example:
//
//	o, err := order.NewOrder(
//	    kernel.MustNewOrderID("O100"),
//	    "Shopping bags",
//	    order.NewCustomer("Acme", "ops@acme.test", "+1-555-0100", "1 Main St"),
//	    order.NewBagSpecification("Non Woven", "Red", "White", "12x16", "80"),
//	    kernel.ParseValue("10"),
//	    kernel.ParseValue("50"),
//	)
func NewOrder(
	orderID kernel.OrderID,
	jobName string,
	customer Customer,
	bag BagSpecification,
	quantity kernel.Value,
	unitPrice kernel.Value,
) (*Order, error) {
	o := &Order{
		orderID:       orderID,
		jobName:       jobName,
		customer:      customer,
		bag:           bag,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOrder rebuilds an order from a collaborator payload. It applies the
// same validation as NewOrder and additionally carries the storage id, the
// sales agent and the creation time.
func RestoreOrder(
	storageID string,
	orderID kernel.OrderID,
	jobName string,
	agent string,
	customer Customer,
	bag BagSpecification,
	quantity kernel.Value,
	unitPrice kernel.Value,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(orderID, jobName, customer, bag, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	o.storageID = storageID
	o.agent = agent
	o.createdAt = createdAt
	return o, nil
}

// StorageID is the collaborator's own identifier. It is never used for joins.
func (o *Order) StorageID() string { return o.storageID }
func (o *Order) OrderID() kernel.OrderID { return o.orderID }
func (o *Order) Customer() Customer { return o.customer }
func (o *Order) JobName() string { return o.jobName }
func (o *Order) Agent() string { return o.agent }
func (o *Order) Quantity() kernel.Value { return o.quantity }
func (o *Order) UnitPrice() kernel.Value { return o.unitPrice }
func (o *Order) Bag() BagSpecification { return o.bag }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Subtotal is quantity times unit price. When the quantity is absent or zero
// the stored price is passed through unchanged, which is how multi-package
// invoices carry a lump-sum price.
func (o *Order) Subtotal() decimal.Decimal {
	q := o.quantity.Decimal()
	if q.IsZero() {
		return o.unitPrice.Decimal()
	}
	return q.Mul(o.unitPrice.Decimal())
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	var validationErrors []error
	if err := o.orderID.Validate(); err != nil {
		validationErrors = append(validationErrors, err)
	}
	if o.quantity.Present() && o.quantity.Decimal().IsNegative() {
		validationErrors = append(validationErrors, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%s is negative", o.quantity),
		))
	}
	if o.unitPrice.Present() && o.unitPrice.Decimal().IsNegative() {
		validationErrors = append(validationErrors, errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			fmt.Errorf("%s is negative", o.unitPrice),
		))
	}
	return errors.Join(validationErrors...)
}
