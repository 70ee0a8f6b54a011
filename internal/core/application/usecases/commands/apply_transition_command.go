package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrApplyTransitionCommandIsNotConstructed = errors.New(
		"ApplyTransitionCommand must be created via NewApplyTransitionCommand constructor",
	)
)

// TransitionScope locates the record a transition applies to. Line is
// required for production; RecordID selects one package record when an
// order has several.
type TransitionScope struct {
	Line     string
	RecordID string
}

// ApplyTransitionCommand asks to move one stage of an order to a new status.
//
// Example:
//
//	cmd, err := NewApplyTransitionCommand(
//	    services.ProductionStage,
//	    kernel.MustNewOrderID("ORD-1001"),
//	    "completed",
//	    services.TransitionMetadata{Unit: "U2", Remark: "order move to completed"},
//	    TransitionScope{Line: "wcut"},
//	)
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type ApplyTransitionCommand struct { //nolint:recvcheck //using for validation
	stage    services.Stage
	orderID  kernel.OrderID
	target   string
	metadata services.TransitionMetadata
	scope    TransitionScope

	guard guard.ConstructorGuard
}

// NewApplyTransitionCommand checks the shape of the request only. Whether
// the transition is legal depends on the current record and is decided by
// the handler.
func NewApplyTransitionCommand(
	stage services.Stage,
	orderID kernel.OrderID,
	target string,
	metadata services.TransitionMetadata,
	scope TransitionScope,
) (ApplyTransitionCommand, error) {
	command := ApplyTransitionCommand{
		metadata: services.TransitionMetadata{
			Unit:   strings.TrimSpace(metadata.Unit),
			Remark: strings.TrimSpace(metadata.Remark),
		},
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStage(stage),
		command.setOrderID(orderID),
		command.setTarget(target),
		command.setScope(stage, scope),
	); err != nil {
		return ApplyTransitionCommand{}, errs.NewValidationErrorWithCause("transition request is invalid", err)
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyTransitionCommand) Validate() error {
	return c.guard.Validate(ErrApplyTransitionCommandIsNotConstructed)
}

func (c ApplyTransitionCommand) Stage() services.Stage { return c.stage }
func (c ApplyTransitionCommand) OrderID() kernel.OrderID { return c.orderID }

// Target is the requested status as its wire value.
func (c ApplyTransitionCommand) Target() string { return c.target }
func (c ApplyTransitionCommand) Metadata() services.TransitionMetadata { return c.metadata }
func (c ApplyTransitionCommand) Scope() TransitionScope { return c.scope }

func (c *ApplyTransitionCommand) setStage(stage services.Stage) error {
	if stage == services.UnknownStage || stage.String() == "unknown" {
		return errs.NewValueIsRequiredError("stage")
	}

	c.stage = stage
	return nil
}

func (c *ApplyTransitionCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyTransitionCommand) setTarget(target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return errs.NewValueIsRequiredError("target status")
	}

	c.target = target
	return nil
}

func (c *ApplyTransitionCommand) setScope(stage services.Stage, scope TransitionScope) error {
	scope = TransitionScope{
		Line:     strings.TrimSpace(scope.Line),
		RecordID: strings.TrimSpace(scope.RecordID),
	}
	if stage == services.ProductionStage && scope.Line == "" {
		return errs.NewValueIsRequiredError("line")
	}

	c.scope = scope
	return nil
}
