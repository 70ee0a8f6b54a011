package packaging

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Field names an editable column of a draft line.
type Field int

const (
	FieldLength Field = iota + 1
	FieldWidth
	FieldHeight
	FieldWeight
)

func (f Field) String() string {
	switch f {
	case FieldLength:
		return "length"
	case FieldWidth:
		return "width"
	case FieldHeight:
		return "height"
	case FieldWeight:
		return "weight"
	default:
		return "unknown"
	}
}

// ParseField accepts the column names used by the packaging form.
func ParseField(value string) (Field, error) {
	for _, f := range []Field{FieldLength, FieldWidth, FieldHeight, FieldWeight} {
		if strings.EqualFold(strings.TrimSpace(value), f.String()) {
			return f, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%q is not a package field", value))
}

// DraftLine is one package as typed by the operator, before parsing.
type DraftLine struct {
	Length string
	Width  string
	Height string
	Weight string
}

func (l DraftLine) with(f Field, value string) DraftLine {
	switch f {
	case FieldLength:
		l.Length = value
	case FieldWidth:
		l.Width = value
	case FieldHeight:
		l.Height = value
	case FieldWeight:
		l.Weight = value
	}
	return l
}

// Draft is the packages an operator is preparing for one order. A Draft is
// never mutated: Reduce returns the next draft, and nothing reaches the
// collaborator until Confirm succeeds and the caller submits the result.
type Draft struct {
	orderID kernel.OrderID
	lines   []DraftLine
}

func NewDraft(orderID kernel.OrderID) Draft {
	return Draft{orderID: orderID}
}

func (d Draft) OrderID() kernel.OrderID { return d.orderID }
func (d Draft) Len() int { return len(d.lines) }

func (d Draft) Lines() []DraftLine {
	return append([]DraftLine{}, d.lines...)
}

// Action is a single edit applied by Reduce.
type Action interface {
	apply(d Draft) (Draft, error)
}

// AddLine appends an empty line, or a pre-filled one.
type AddLine struct {
	Line DraftLine
}

// RemoveLine drops the line at Index (0-based).
type RemoveLine struct {
	Index int
}

// SetField edits one column of the line at Index.
type SetField struct {
	Index int
	Field Field
	Value string
}

// Reset discards every line.
type Reset struct{}

// Reduce applies a to d and returns the next draft. d itself is unchanged,
// also when an error is returned.
func Reduce(d Draft, a Action) (Draft, error) {
	if a == nil {
		return d, errs.NewValueIsRequiredError("action")
	}
	return a.apply(d)
}

func (a AddLine) apply(d Draft) (Draft, error) {
	next := d.Lines()
	next = append(next, a.Line)
	return Draft{orderID: d.orderID, lines: next}, nil
}

func (a RemoveLine) apply(d Draft) (Draft, error) {
	if err := d.checkIndex(a.Index); err != nil {
		return d, err
	}
	next := make([]DraftLine, 0, len(d.lines)-1)
	next = append(next, d.lines[:a.Index]...)
	next = append(next, d.lines[a.Index+1:]...)
	return Draft{orderID: d.orderID, lines: next}, nil
}

func (a SetField) apply(d Draft) (Draft, error) {
	if err := d.checkIndex(a.Index); err != nil {
		return d, err
	}
	if a.Field.String() == "unknown" {
		return d, errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%d is not a package field", a.Field))
	}
	next := d.Lines()
	next[a.Index] = next[a.Index].with(a.Field, a.Value)
	return Draft{orderID: d.orderID, lines: next}, nil
}

func (Reset) apply(d Draft) (Draft, error) {
	return Draft{orderID: d.orderID}, nil
}

func (d Draft) checkIndex(i int) error {
	if i < 0 || i >= len(d.lines) {
		return errs.NewValueIsOutOfRangeError("line", i, 0, len(d.lines)-1)
	}
	return nil
}

// Confirm parses every line into a Detail. All four figures of every line
// must be non-negative numbers; every failure is reported at once.
func (d Draft) Confirm() ([]Detail, error) {
	if err := d.orderID.Validate(); err != nil {
		return nil, errs.NewValidationErrorWithCause("package draft has no order", err)
	}
	if len(d.lines) == 0 {
		return nil, errs.NewValidationError("package draft has no packages")
	}

	details := make([]Detail, 0, len(d.lines))
	var lineErrors []error
	for i, line := range d.lines {
		values := make(map[Field]kernel.Value, 4)
		for _, f := range []Field{FieldLength, FieldWidth, FieldHeight, FieldWeight} {
			raw := line.field(f)
			v := kernel.ParseValue(raw)
			if !v.Present() {
				lineErrors = append(lineErrors, fmt.Errorf("package %d: %s %q is not a number", i+1, f, raw))
				continue
			}
			values[f] = v
		}
		if len(values) < 4 {
			continue
		}
		detail, err := NewDetail("", values[FieldLength], values[FieldWidth], values[FieldHeight], values[FieldWeight])
		if err != nil {
			lineErrors = append(lineErrors, fmt.Errorf("package %d: %w", i+1, err))
			continue
		}
		details = append(details, detail)
	}

	if err := errors.Join(lineErrors...); err != nil {
		return nil, errs.NewValidationErrorWithCause("package draft is incomplete", err)
	}
	return details, nil
}

func (l DraftLine) field(f Field) string {
	switch f {
	case FieldLength:
		return l.Length
	case FieldWidth:
		return l.Width
	case FieldHeight:
		return l.Height
	case FieldWeight:
		return l.Weight
	default:
		return ""
	}
}
