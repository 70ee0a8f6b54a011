package delivery

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the delivery stage status.
type Status int

const (
	Unknown Status = iota
	Pending
	InTransit
	Cancelled
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		InTransit: "in_transit",
		Cancelled: "cancelled",
		Delivered: "delivered",
	}
}

func ParseStatus(value string) (Status, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for s, str := range getStatusStrings() {
		if s != Unknown && str == v {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery status",
		fmt.Errorf("%q is not a delivery status", value),
	)
}

func Statuses() []Status {
	return []Status{Pending, InTransit, Cancelled, Delivered}
}

func (s Status) Validate() error {
	if s <= Unknown || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("delivery status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns every other status when s is not Delivered.
func (s Status) Next() []Status {
	if s.Validate() != nil || s == Delivered {
		return nil
	}
	var next []Status
	for _, to := range Statuses() {
		if to != s {
			next = append(next, to)
		}
	}
	return next
}

func (s Status) CanTransitionTo(to Status) bool {
	if s.Validate() != nil || to.Validate() != nil {
		return false
	}
	return s != Delivered && s != to
}

func (s Status) IsTerminal() bool {
	return s == Delivered
}
