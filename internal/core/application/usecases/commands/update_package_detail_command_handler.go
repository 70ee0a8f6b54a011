package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// UpdatePackageDetailCommandHandler checks that the detail belongs to the
// order before editing it. The previous figures are not kept.
type UpdatePackageDetailCommandHandler struct {
	packages ports.PackageGateway
}

func NewUpdatePackageDetailCommandHandler(packages ports.PackageGateway) UpdatePackageDetailCommandHandler {
	return UpdatePackageDetailCommandHandler{packages: packages}
}

func (h UpdatePackageDetailCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePackageDetailCommand,
) (packaging.Record, error) {
	if err := cmd.Validate(); err != nil {
		return packaging.Record{}, err
	}

	records, err := h.packages.ListPackages(ctx, cmd.OrderID())
	if err != nil {
		return packaging.Record{}, err
	}
	found := false
	for _, r := range records {
		if _, ok := r.FindDetail(cmd.DetailID()); ok {
			found = true
			break
		}
	}
	if !found {
		return packaging.Record{}, errs.NewObjectNotFoundError("package detail", cmd.DetailID())
	}

	return h.packages.UpdatePackageDetail(ctx, cmd.OrderID(), cmd.DetailID(), cmd.Detail())
}
