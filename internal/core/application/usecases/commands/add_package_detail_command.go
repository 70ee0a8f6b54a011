package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAddPackageDetailCommandIsNotConstructed = errors.New(
		"AddPackageDetailCommand must be created via NewAddPackageDetailCommand constructor",
	)
)

// AddPackageDetailCommand appends one package to an order's package record.
type AddPackageDetailCommand struct {
	orderID kernel.OrderID
	detail  packaging.Detail

	guard guard.ConstructorGuard
}

// NewAddPackageDetailCommand parses line with the same rules as a full draft.
func NewAddPackageDetailCommand(orderID kernel.OrderID, line packaging.DraftLine) (AddPackageDetailCommand, error) {
	detail, err := confirmLine(orderID, line)
	if err != nil {
		return AddPackageDetailCommand{}, err
	}

	return AddPackageDetailCommand{
		orderID: orderID,
		detail:  detail,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddPackageDetailCommand) Validate() error {
	return c.guard.Validate(ErrAddPackageDetailCommandIsNotConstructed)
}

func (c AddPackageDetailCommand) OrderID() kernel.OrderID { return c.orderID }
func (c AddPackageDetailCommand) Detail() packaging.Detail { return c.detail }

// confirmLine runs a single line through a one-line draft.
func confirmLine(orderID kernel.OrderID, line packaging.DraftLine) (packaging.Detail, error) {
	draft, err := packaging.Reduce(packaging.NewDraft(orderID), packaging.AddLine{Line: line})
	if err != nil {
		return packaging.Detail{}, err
	}
	details, err := draft.Confirm()
	if err != nil {
		return packaging.Detail{}, err
	}
	return details[0], nil
}
