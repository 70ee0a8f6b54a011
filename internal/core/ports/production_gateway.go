package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/production"
)

// ProductionGateway reads and updates production records of one or more
// production lines ("wcut", "opsert", ...).
type ProductionGateway interface {
	// ListProduction returns every record on line in the order the service returned them.
	ListProduction(ctx context.Context, line string) ([]production.Record, error)

	// GetProduction returns the record of orderID on line.
	GetProduction(ctx context.Context, line string, orderID kernel.OrderID) (production.Record, error)

	// UpdateProductionStatus persists a validated transition and returns the
	// record as the service stored it. unit and remark are sent with completions.
	UpdateProductionStatus(
		ctx context.Context,
		line string,
		orderID kernel.OrderID,
		status production.Status,
		unit, remark string,
	) (production.Record, error)

	// UpdateProductionDetails replaces the operator-edited figures.
	UpdateProductionDetails(
		ctx context.Context,
		line string,
		orderID kernel.OrderID,
		details production.Details,
	) (production.Record, error)

	// MoveToPackaging hands a completed record over to packaging.
	MoveToPackaging(ctx context.Context, line string, orderID kernel.OrderID) error
}
