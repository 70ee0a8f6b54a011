package packaging

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the packaging stage status.
type Status int

const (
	Unknown Status = iota
	Pending
	Completed
	Delivered
	Cancelled
)

// legacyDeliveredAlias is the older spelling of Delivered.
const legacyDeliveredAlias = "delivery"

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Completed: "completed",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no edges
	return map[Status][]Status{
		Pending:   {Completed, Cancelled},
		Completed: {Delivered, Cancelled},
	}
}

// ParseStatus accepts the wire value and the legacy "delivery" alias.
func ParseStatus(value string) (Status, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == legacyDeliveredAlias {
		return Delivered, nil
	}
	for s, str := range getStatusStrings() {
		if s != Unknown && str == v {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"packaging status",
		fmt.Errorf("%q is not a packaging status", value),
	)
}

func Statuses() []Status {
	return []Status{Pending, Completed, Delivered, Cancelled}
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("packaging status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) Next() []Status {
	return append([]Status(nil), getTransitions()[s]...)
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range getTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(getTransitions()[s]) == 0
}
