package document

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Kind is the type of document being issued.
type Kind int

const (
	UnknownKind Kind = iota
	Invoice
	Label
)

func (k Kind) String() string {
	switch k {
	case Invoice:
		return "invoice"
	case Label:
		return "label"
	case UnknownKind:
		return "unknown"
	default:
		return "unknown"
	}
}

func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "invoice":
		return Invoice, nil
	case "label":
		return Label, nil
	default:
		return UnknownKind, errs.NewValueIsInvalidErrorWithCause("document kind", fmt.Errorf("%q is not a document kind", value))
	}
}

func (k Kind) Validate() error {
	if k != Invoice && k != Label {
		return errs.NewValueIsInvalidErrorWithCause("document kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}
