package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateProductionDetailsCommandIsNotConstructed = errors.New(
		"UpdateProductionDetailsCommand must be created via NewUpdateProductionDetailsCommand constructor",
	)
)

// UpdateProductionDetailsCommand replaces the operator-edited figures of a
// production run: roll and cylinder size, quantities and remarks.
type UpdateProductionDetailsCommand struct { //nolint:recvcheck //using for validation
	line    string
	orderID kernel.OrderID
	details production.Details

	guard guard.ConstructorGuard
}

// NewUpdateProductionDetailsCommand rejects negative quantities. Absent
// quantities are allowed and sent as null.
func NewUpdateProductionDetailsCommand(
	line string,
	orderID kernel.OrderID,
	details production.Details,
) (UpdateProductionDetailsCommand, error) {
	command := UpdateProductionDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLine(line),
		command.setOrderID(orderID),
		command.setDetails(details),
	); err != nil {
		return UpdateProductionDetailsCommand{}, errs.NewValidationErrorWithCause("production details are invalid", err)
	}

	return command, nil
}

func (c UpdateProductionDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductionDetailsCommandIsNotConstructed)
}

func (c UpdateProductionDetailsCommand) Line() string { return c.line }
func (c UpdateProductionDetailsCommand) OrderID() kernel.OrderID { return c.orderID }
func (c UpdateProductionDetailsCommand) Details() production.Details { return c.details }

func (c *UpdateProductionDetailsCommand) setLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return errs.NewValueIsRequiredError("line")
	}

	c.line = line
	return nil
}

func (c *UpdateProductionDetailsCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateProductionDetailsCommand) setDetails(details production.Details) error {
	var validationErrors []error
	for _, q := range []struct {
		name  string
		value kernel.Value
	}{
		{"quantity kgs", details.QuantityKgs},
		{"quantity rolls", details.QuantityRolls},
	} {
		if q.value.Present() && q.value.Decimal().IsNegative() {
			validationErrors = append(validationErrors,
				errs.NewValueIsInvalidErrorWithCause(q.name, fmt.Errorf("%s is negative", q.value)))
		}
	}
	if err := errors.Join(validationErrors...); err != nil {
		return err
	}

	c.details = production.Details{
		RollSize:      strings.TrimSpace(details.RollSize),
		CylinderSize:  strings.TrimSpace(details.CylinderSize),
		QuantityKgs:   details.QuantityKgs,
		QuantityRolls: details.QuantityRolls,
		Remarks:       strings.TrimSpace(details.Remarks),
		Progress:      strings.TrimSpace(details.Progress),
	}
	return nil
}
