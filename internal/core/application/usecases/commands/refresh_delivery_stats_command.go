package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRefreshDeliveryStatsCommandIsNotConstructed = errors.New(
		"RefreshDeliveryStatsCommand must be created via NewRefreshDeliveryStatsCommand constructor",
	)
)

// RefreshDeliveryStatsCommand recounts the delivery dashboard cards and
// saves the snapshot.
type RefreshDeliveryStatsCommand struct {
	guard guard.ConstructorGuard
}

func NewRefreshDeliveryStatsCommand() RefreshDeliveryStatsCommand {
	return RefreshDeliveryStatsCommand{guard: guard.NewConstructorGuard()}
}

func (c RefreshDeliveryStatsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshDeliveryStatsCommandIsNotConstructed)
}

type RefreshDeliveryStatsCommandHandler struct {
	deliveries ports.DeliveryGateway
	store      ports.StatsStore
	now        func() time.Time
}

func NewRefreshDeliveryStatsCommandHandler(
	deliveries ports.DeliveryGateway,
	store ports.StatsStore,
	now func() time.Time,
) RefreshDeliveryStatsCommandHandler {
	if now == nil {
		now = time.Now
	}
	return RefreshDeliveryStatsCommandHandler{deliveries: deliveries, store: store, now: now}
}

// Handle keeps the previous snapshot when the listing cannot be read.
func (h RefreshDeliveryStatsCommandHandler) Handle(
	ctx context.Context,
	cmd RefreshDeliveryStatsCommand,
) (delivery.Stats, error) {
	if err := cmd.Validate(); err != nil {
		return delivery.Stats{}, err
	}

	records, err := h.deliveries.ListDeliveries(ctx)
	if err != nil {
		return delivery.Stats{}, err
	}

	stats := delivery.CountStats(records, h.now().UTC())
	if err := h.store.Save(ctx, stats); err != nil {
		return delivery.Stats{}, err
	}
	return stats, nil
}
