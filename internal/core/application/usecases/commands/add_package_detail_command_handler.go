package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/ports"
)

type AddPackageDetailCommandHandler struct {
	packages ports.PackageGateway
}

func NewAddPackageDetailCommandHandler(packages ports.PackageGateway) AddPackageDetailCommandHandler {
	return AddPackageDetailCommandHandler{packages: packages}
}

func (h AddPackageDetailCommandHandler) Handle(ctx context.Context, cmd AddPackageDetailCommand) (packaging.Record, error) {
	if err := cmd.Validate(); err != nil {
		return packaging.Record{}, err
	}

	return h.packages.AddPackageDetail(ctx, cmd.OrderID(), cmd.Detail())
}
