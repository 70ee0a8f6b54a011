package queries

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetDeliveryStatsQueryIsNotConstructed = errors.New(
		"GetDeliveryStatsQuery must be created via NewGetDeliveryStatsQuery constructor",
	)
)

// GetDeliveryStatsQuery reads the counters of the delivery dashboard cards.
type GetDeliveryStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliveryStatsQuery() GetDeliveryStatsQuery {
	return GetDeliveryStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDeliveryStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatsQueryIsNotConstructed)
}

// GetDeliveryStatsQueryHandler serves the snapshot kept by the stats job.
// Before the first snapshot exists the stats are counted live from the
// delivery listing; the live count is not saved.
type GetDeliveryStatsQueryHandler struct {
	store      ports.StatsStore
	deliveries ports.DeliveryGateway
	now        func() time.Time
}

func NewGetDeliveryStatsQueryHandler(
	store ports.StatsStore,
	deliveries ports.DeliveryGateway,
	now func() time.Time,
) GetDeliveryStatsQueryHandler {
	if now == nil {
		now = time.Now
	}
	return GetDeliveryStatsQueryHandler{store: store, deliveries: deliveries, now: now}
}

func (h GetDeliveryStatsQueryHandler) Handle(ctx context.Context, query GetDeliveryStatsQuery) (delivery.Stats, error) {
	if err := query.Validate(); err != nil {
		return delivery.Stats{}, err
	}

	stats, err := h.store.Load(ctx)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return delivery.Stats{}, err
	}

	records, err := h.deliveries.ListDeliveries(ctx)
	if err != nil {
		return delivery.Stats{}, err
	}
	return delivery.CountStats(records, h.now().UTC()), nil
}
