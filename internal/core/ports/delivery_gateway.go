package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryGateway reads and updates delivery records.
type DeliveryGateway interface {
	// ListDeliveries returns every delivery with its order embedded.
	ListDeliveries(ctx context.Context) ([]delivery.Record, error)

	GetDeliveryByOrder(ctx context.Context, orderID kernel.OrderID) (delivery.Record, error)

	// UpdateDelivery stores a confirmed delivery form.
	UpdateDelivery(ctx context.Context, recordID string, submission delivery.Submission) (delivery.Record, error)

	// UpdateDeliveryStatus persists a validated status transition.
	UpdateDeliveryStatus(ctx context.Context, recordID string, status delivery.Status) (delivery.Record, error)
}

// DriverGateway manages the driver lookup.
type DriverGateway interface {
	ListDrivers(ctx context.Context) ([]delivery.Driver, error)
	CreateDriver(ctx context.Context, driver delivery.Driver) (delivery.Driver, error)
	UpdateDriver(ctx context.Context, driver delivery.Driver) (delivery.Driver, error)
}
