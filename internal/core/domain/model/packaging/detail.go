package packaging

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Detail is one physical package: its dimensions in centimetres and its
// weight in kilograms. Any figure may be absent on records written by older
// clients.
type Detail struct {
	id     string
	length kernel.Value
	width  kernel.Value
	height kernel.Value
	weight kernel.Value
}

// NewDetail rejects negative figures. id is the collaborator's detail id and
// is empty for details that have not been submitted yet.
func NewDetail(id string, length, width, height, weight kernel.Value) (Detail, error) {
	var validationErrors []error
	for _, f := range []struct {
		name  string
		value kernel.Value
	}{
		{"length", length},
		{"width", width},
		{"height", height},
		{"weight", weight},
	} {
		if f.value.Present() && f.value.Decimal().IsNegative() {
			validationErrors = append(validationErrors,
				errs.NewValueIsInvalidErrorWithCause(f.name, fmt.Errorf("%s is negative", f.value)))
		}
	}
	if err := errors.Join(validationErrors...); err != nil {
		return Detail{}, err
	}
	return Detail{id: id, length: length, width: width, height: height, weight: weight}, nil
}

// RestoreDetail skips validation. Used when mapping collaborator payloads,
// which are rendered as received.
func RestoreDetail(id string, length, width, height, weight kernel.Value) Detail {
	return Detail{id: id, length: length, width: width, height: height, weight: weight}
}

func (d Detail) ID() string { return d.id }
func (d Detail) Length() kernel.Value { return d.length }
func (d Detail) Width() kernel.Value { return d.width }
func (d Detail) Height() kernel.Value { return d.height }
func (d Detail) Weight() kernel.Value { return d.weight }

// Dimensions formats the detail as "LxWxH cm".
func (d Detail) Dimensions() string {
	return fmt.Sprintf("%sx%sx%s cm", d.length, d.width, d.height)
}
