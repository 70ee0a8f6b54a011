package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrMoveToPackagingCommandIsNotConstructed = errors.New(
		"MoveToPackagingCommand must be created via NewMoveToPackagingCommand constructor",
	)
)

// MoveToPackagingCommand hands a completed production run over to packaging.
type MoveToPackagingCommand struct { //nolint:recvcheck //using for validation
	line    string
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewMoveToPackagingCommand(line string, orderID kernel.OrderID) (MoveToPackagingCommand, error) {
	command := MoveToPackagingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLine(line),
		command.setOrderID(orderID),
	); err != nil {
		return MoveToPackagingCommand{}, errs.NewValidationErrorWithCause("move to packaging request is invalid", err)
	}

	return command, nil
}

func (c MoveToPackagingCommand) Validate() error {
	return c.guard.Validate(ErrMoveToPackagingCommandIsNotConstructed)
}

func (c MoveToPackagingCommand) Line() string { return c.line }
func (c MoveToPackagingCommand) OrderID() kernel.OrderID { return c.orderID }

func (c *MoveToPackagingCommand) setLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return errs.NewValueIsRequiredError("line")
	}

	c.line = line
	return nil
}

func (c *MoveToPackagingCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
