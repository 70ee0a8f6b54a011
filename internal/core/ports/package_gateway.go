package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
)

// PackageGateway reads and updates package records.
type PackageGateway interface {
	// ListPackages returns every package record of the order. An order
	// without packages yields an empty slice, not an error.
	ListPackages(ctx context.Context, orderID kernel.OrderID) ([]packaging.Record, error)

	// CreatePackages submits confirmed details as a new package record.
	CreatePackages(ctx context.Context, orderID kernel.OrderID, details []packaging.Detail) (packaging.Record, error)

	// AddPackageDetail appends one detail to the order's package record.
	AddPackageDetail(ctx context.Context, orderID kernel.OrderID, detail packaging.Detail) (packaging.Record, error)

	// UpdatePackageDetail edits a detail in place. No history is kept.
	UpdatePackageDetail(
		ctx context.Context,
		orderID kernel.OrderID,
		detailID string,
		detail packaging.Detail,
	) (packaging.Record, error)

	// UpdatePackageStatus persists a validated transition of one record.
	UpdatePackageStatus(ctx context.Context, recordID string, status packaging.Status) (packaging.Record, error)
}
