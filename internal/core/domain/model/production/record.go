package production

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record was not built through NewRecord.
var ErrRecordIsNotConstructed = errors.New("production Record must be created via NewRecord constructor")

// Details are the operator-edited figures of a production run.
type Details struct {
	RollSize      string
	CylinderSize  string
	QuantityKgs   kernel.Value
	QuantityRolls kernel.Value
	Remarks       string
	Progress      string
}

// Record is the state of one order on one production line. Records are
// values: transitions return a new Record and leave the receiver unchanged,
// so a caller holding the old value keeps it when a remote update fails.
type Record struct {
	id      string
	orderID kernel.OrderID
	line    string
	status  Status
	details Details
	unit    string
	order   *order.Order

	isConstructed bool
}

// NewRecord validates the business key, the line and the status. unit is the
// completion marker recorded when the run was completed, empty otherwise.
func NewRecord(id string, orderID kernel.OrderID, line string, status Status, details Details, unit string) (Record, error) {
	var validationErrors []error
	if err := orderID.Validate(); err != nil {
		validationErrors = append(validationErrors, err)
	}
	if strings.TrimSpace(line) == "" {
		validationErrors = append(validationErrors, errs.NewValueIsRequiredError("production line"))
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
		line:          strings.TrimSpace(line),
		status:        status,
		details:       details,
		unit:          strings.TrimSpace(unit),
		isConstructed: true,
	}, nil
}

func (r Record) ID() string { return r.id }
func (r Record) OrderID() kernel.OrderID { return r.orderID }
func (r Record) Line() string { return r.line }
func (r Record) Status() Status { return r.status }
func (r Record) Details() Details { return r.details }

// Unit is the unit number chosen by the operator at completion.
func (r Record) Unit() string { return r.unit }

// WithStatus returns a copy in status s carrying the completion metadata.
func (r Record) WithStatus(s Status, unit, remark string) Record {
	next := r
	next.status = s
	if u := strings.TrimSpace(unit); u != "" {
		next.unit = u
	}
	if rm := strings.TrimSpace(remark); rm != "" {
		next.details.Remarks = rm
	}
	return next
}

// Order is the order the service embeds in line listings, nil when it did not.
func (r Record) Order() *order.Order { return r.order }

// WithOrder returns a copy carrying the embedded order.
func (r Record) WithOrder(o *order.Order) Record {
	next := r
	next.order = o
	return next
}

// WithDetails returns a copy carrying d.
func (r Record) WithDetails(d Details) Record {
	next := r
	next.details = d
	return next
}

func (r Record) Validate() error {
	if !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}
