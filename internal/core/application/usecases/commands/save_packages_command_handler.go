package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/ports"
)

// SavePackagesCommandHandler creates a package record from confirmed details.
type SavePackagesCommandHandler struct {
	packages ports.PackageGateway
}

func NewSavePackagesCommandHandler(packages ports.PackageGateway) SavePackagesCommandHandler {
	return SavePackagesCommandHandler{packages: packages}
}

func (h SavePackagesCommandHandler) Handle(ctx context.Context, cmd SavePackagesCommand) (packaging.Record, error) {
	if err := cmd.Validate(); err != nil {
		return packaging.Record{}, err
	}

	return h.packages.CreatePackages(ctx, cmd.OrderID(), cmd.Details())
}
