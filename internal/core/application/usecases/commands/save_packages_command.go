package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSavePackagesCommandIsNotConstructed = errors.New(
		"SavePackagesCommand must be created via NewSavePackagesCommand constructor",
	)
)

// SavePackagesCommand submits a packaging draft. The draft is confirmed on
// construction, so an incomplete draft never becomes a command.
//
// Example:
//
//	draft := packaging.NewDraft(orderID)
//	draft, _ = packaging.Reduce(draft, packaging.AddLine{Line: packaging.DraftLine{
//	    Length: "40", Width: "30", Height: "20", Weight: "2.5",
//	}})
//
//	cmd, err := NewSavePackagesCommand(draft)
type SavePackagesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	details []packaging.Detail

	guard guard.ConstructorGuard
}

func NewSavePackagesCommand(draft packaging.Draft) (SavePackagesCommand, error) {
	details, err := draft.Confirm()
	if err != nil {
		return SavePackagesCommand{}, err
	}

	return SavePackagesCommand{
		orderID: draft.OrderID(),
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SavePackagesCommand) Validate() error {
	return c.guard.Validate(ErrSavePackagesCommandIsNotConstructed)
}

func (c SavePackagesCommand) OrderID() kernel.OrderID { return c.orderID }

func (c SavePackagesCommand) Details() []packaging.Detail {
	return append([]packaging.Detail{}, c.details...)
}
