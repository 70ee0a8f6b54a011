package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// Pipeline is the joined read model of one order. Order is always set; a
// stage the order has not reached yet is nil (or empty for packages).
type Pipeline struct {
	Order      *order.Order
	Production *production.Record
	Packages   []packaging.Record
	Delivery   *delivery.Record
}

// GetPipelineQueryHandler joins the stage records of an order by its
// business key.
//
// The order is required: a missing order is returned as not found. The stage
// records are fetched concurrently once the order is known and a stage that
// does not exist yet is tolerated. Any other failure aborts the read.
type GetPipelineQueryHandler struct {
	orders     ports.OrderGateway
	production ports.ProductionGateway
	packages   ports.PackageGateway
	deliveries ports.DeliveryGateway
}

func NewGetPipelineQueryHandler(
	orders ports.OrderGateway,
	production ports.ProductionGateway,
	packages ports.PackageGateway,
	deliveries ports.DeliveryGateway,
) GetPipelineQueryHandler {
	return GetPipelineQueryHandler{
		orders:     orders,
		production: production,
		packages:   packages,
		deliveries: deliveries,
	}
}

func (h GetPipelineQueryHandler) Handle(ctx context.Context, query GetPipelineQuery) (Pipeline, error) {
	if err := query.Validate(); err != nil {
		return Pipeline{}, err
	}

	o, err := h.orders.GetOrder(ctx, query.OrderID())
	if err != nil {
		return Pipeline{}, err
	}
	pipeline := Pipeline{Order: o, Packages: []packaging.Record{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		record, err := h.production.GetProduction(gctx, query.Line(), query.OrderID())
		if err != nil {
			return tolerateMissing(err)
		}
		pipeline.Production = &record
		return nil
	})
	g.Go(func() error {
		records, err := h.packages.ListPackages(gctx, query.OrderID())
		if err != nil {
			return tolerateMissing(err)
		}
		if records != nil {
			pipeline.Packages = records
		}
		return nil
	})
	g.Go(func() error {
		record, err := h.deliveries.GetDeliveryByOrder(gctx, query.OrderID())
		if err != nil {
			return tolerateMissing(err)
		}
		pipeline.Delivery = &record
		return nil
	})
	if err := g.Wait(); err != nil {
		return Pipeline{}, err
	}

	return pipeline, nil
}

func tolerateMissing(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	return err
}
