// Package memstore keeps the delivery stats snapshot in process memory. It
// is used when no Redis address is configured.
package memstore

import (
	"context"
	"sync"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

var _ ports.StatsStore = (*StatsStore)(nil)

type StatsStore struct {
	mu    sync.RWMutex
	stats delivery.Stats
	saved bool
}

func NewStatsStore() *StatsStore {
	return &StatsStore{}
}

func (s *StatsStore) Save(_ context.Context, stats delivery.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = stats
	s.saved = true
	return nil
}

func (s *StatsStore) Load(_ context.Context) (delivery.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.saved {
		return delivery.Stats{}, errs.NewObjectNotFoundError("delivery stats", "latest")
	}
	return s.stats, nil
}
