package delivery

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

var ErrRecordIsNotConstructed = errors.New("delivery Record must be created via NewRecord constructor")

// Assignment is the vehicle and driver a delivery is dispatched with. A zero
// DeliveryDate means no date was scheduled.
type Assignment struct {
	VehicleNo     string
	DriverName    string
	DriverContact string
	DeliveryDate  time.Time
}

// Record is the delivery stage state of one order. The collaborator embeds
// the order in delivery listings; Order is nil when it did not.
type Record struct {
	id         string
	orderID    kernel.OrderID
	status     Status
	assignment Assignment
	order      *order.Order

	isConstructed bool
}

func NewRecord(id string, orderID kernel.OrderID, status Status, assignment Assignment, o *order.Order) (Record, error) {
	var validationErrors []error
	if err := orderID.Validate(); err != nil {
		validationErrors = append(validationErrors, err)
	}
	if err := status.Validate(); err != nil {
		validationErrors = append(validationErrors, err)
	}
	if err := errors.Join(validationErrors...); err != nil {
		return Record{}, err
	}
	return Record{
		id:            id,
		orderID:       orderID,
		status:        status,
		assignment:    assignment,
		order:         o,
		isConstructed: true,
	}, nil
}

func (r Record) ID() string { return r.id }
func (r Record) OrderID() kernel.OrderID { return r.orderID }
func (r Record) Status() Status { return r.status }
func (r Record) Assignment() Assignment { return r.assignment }
func (r Record) Order() *order.Order { return r.order }

// IsLocked reports whether the record no longer accepts edits.
func (r Record) IsLocked() bool {
	return r.status.IsTerminal()
}

func (r Record) WithStatus(s Status) Record {
	next := r
	next.status = s
	return next
}

func (r Record) Validate() error {
	if !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}
