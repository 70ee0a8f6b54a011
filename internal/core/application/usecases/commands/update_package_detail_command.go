package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdatePackageDetailCommandIsNotConstructed = errors.New(
		"UpdatePackageDetailCommand must be created via NewUpdatePackageDetailCommand constructor",
	)
)

// UpdatePackageDetailCommand edits one package in place.
type UpdatePackageDetailCommand struct {
	orderID  kernel.OrderID
	detailID string
	detail   packaging.Detail

	guard guard.ConstructorGuard
}

func NewUpdatePackageDetailCommand(
	orderID kernel.OrderID,
	detailID string,
	line packaging.DraftLine,
) (UpdatePackageDetailCommand, error) {
	detailID = strings.TrimSpace(detailID)
	if detailID == "" {
		return UpdatePackageDetailCommand{}, errs.NewValidationErrorWithCause(
			"package detail update is invalid", errs.NewValueIsRequiredError("detail id"))
	}

	detail, err := confirmLine(orderID, line)
	if err != nil {
		return UpdatePackageDetailCommand{}, err
	}

	return UpdatePackageDetailCommand{
		orderID:  orderID,
		detailID: detailID,
		detail:   packaging.RestoreDetail(detailID, detail.Length(), detail.Width(), detail.Height(), detail.Weight()),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdatePackageDetailCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePackageDetailCommandIsNotConstructed)
}

func (c UpdatePackageDetailCommand) OrderID() kernel.OrderID { return c.orderID }
func (c UpdatePackageDetailCommand) DetailID() string { return c.detailID }
func (c UpdatePackageDetailCommand) Detail() packaging.Detail { return c.detail }
