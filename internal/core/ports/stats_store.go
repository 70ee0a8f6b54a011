package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
)

// StatsStore keeps the latest delivery stats snapshot.
type StatsStore interface {
	Save(ctx context.Context, stats delivery.Stats) error

	// Load returns errs.ErrObjectNotFound until a snapshot was saved.
	Load(ctx context.Context) (delivery.Stats, error)
}
