// Package ports defines the contracts between the pipeline core and its
// adapters: the remote order service, document rendering, the local
// document archive and the stats snapshot store.
//
// Every gateway method that talks to the order service returns
// *errs.RemoteError when the service is unreachable or rejects the call, and
// an error wrapping errs.ErrObjectNotFound when the requested record does
// not exist.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderGateway reads orders from the order service.
type OrderGateway interface {
	// GetOrder returns the order with the given business key.
	GetOrder(ctx context.Context, orderID kernel.OrderID) (*order.Order, error)
}
