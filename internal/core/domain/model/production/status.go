package production

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the production stage status. It is a distinct type from the
// packaging and delivery statuses even where the wire strings overlap.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	InProgress
	Completed
	Cancelled
)

// getStatusStrings maps statuses to their wire values.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getTransitions is the adjacency list of the stage.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no edges
	return map[Status][]Status{
		Pending:    {InProgress},
		InProgress: {Completed},
	}
}

// ParseStatus accepts the wire value, case-insensitively.
func ParseStatus(value string) (Status, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for s, str := range getStatusStrings() {
		if s != Unknown && str == v {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"production status",
		fmt.Errorf("%q is not a production status", value),
	)
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InProgress, Completed, Cancelled}
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("production status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire value. Invalid values print "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the statuses reachable from s in one step.
func (s Status) Next() []Status {
	return append([]Status(nil), getTransitions()[s]...)
}

// CanTransitionTo reports whether s -> to is an edge of the stage.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range getTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(getTransitions()[s]) == 0
}

// CanMoveToPackaging reports whether the record may be handed to packaging.
func (s Status) CanMoveToPackaging() bool {
	return s == Completed
}
