// Package redisstore keeps the delivery stats snapshot in Redis so every
// instance of the service serves the same figures.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is where the snapshot is stored when no key is configured.
const DefaultKey = "fulfillment:delivery-stats"

const pingTimeout = 5 * time.Second

var _ ports.StatsStore = (*StatsStore)(nil)

type StatsStore struct {
	client *redis.Client
	key    string
}

// NewStatsStore connects to addr and fails when Redis does not answer.
func NewStatsStore(addr, password string, db int) (*StatsStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewStatsStoreWithClient(client, DefaultKey), nil
}

// NewStatsStoreWithClient shares an existing client. An empty key falls back
// to DefaultKey.
func NewStatsStoreWithClient(client *redis.Client, key string) *StatsStore {
	if key == "" {
		key = DefaultKey
	}
	return &StatsStore{client: client, key: key}
}

type statsDTO struct {
	Total      int       `json:"total"`
	Pending    int       `json:"pending"`
	InTransit  int       `json:"in_transit"`
	Delivered  int       `json:"delivered"`
	Cancelled  int       `json:"cancelled"`
	ComputedAt time.Time `json:"computed_at"`
}

func (s *StatsStore) Save(ctx context.Context, stats delivery.Stats) error {
	raw, err := json.Marshal(statsDTO(stats))
	if err != nil {
		return fmt.Errorf("failed to encode delivery stats: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save delivery stats: %w", err)
	}
	return nil
}

func (s *StatsStore) Load(ctx context.Context) (delivery.Stats, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return delivery.Stats{}, errs.NewObjectNotFoundError("delivery stats", s.key)
	}
	if err != nil {
		return delivery.Stats{}, fmt.Errorf("failed to load delivery stats: %w", err)
	}

	var dto statsDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return delivery.Stats{}, fmt.Errorf("failed to decode delivery stats: %w", err)
	}
	return delivery.Stats(dto), nil
}

func (s *StatsStore) Close() error {
	return s.client.Close()
}
