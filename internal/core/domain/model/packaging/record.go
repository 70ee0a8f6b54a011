package packaging

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

var ErrRecordIsNotConstructed = errors.New("packaging Record must be created via NewRecord constructor")

// Record is a package record as stored by the collaborator. One order may
// have several records and each record may hold several details.
type Record struct {
	id      string
	orderID kernel.OrderID
	status  Status
	details []Detail

	isConstructed bool
}

// NewRecord copies details so later changes to the caller's slice are not
// observed. A nil slice is treated as empty.
func NewRecord(id string, orderID kernel.OrderID, status Status, details []Detail) (Record, error) {
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
		details:       append([]Detail{}, details...),
		isConstructed: true,
	}, nil
}

func (r Record) ID() string { return r.id }
func (r Record) OrderID() kernel.OrderID { return r.orderID }
func (r Record) Status() Status { return r.status }

// Details returns a copy of the record's package details in received order.
func (r Record) Details() []Detail {
	return append([]Detail{}, r.details...)
}

// FindDetail looks a detail up by its collaborator id.
func (r Record) FindDetail(id string) (Detail, bool) {
	for _, d := range r.details {
		if d.id == id {
			return d, true
		}
	}
	return Detail{}, false
}

func (r Record) WithStatus(s Status) Record {
	next := r
	next.status = s
	next.details = r.Details()
	return next
}

func (r Record) Validate() error {
	if !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}
