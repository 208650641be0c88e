package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"raffle-manager-backend/internal/features/raffle/models"
	"raffle-manager-backend/internal/features/raffle/repository"
)

// Client is the part of the redis client the storage needs.
type Client interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl ...time.Duration) *redis.StatusCmd
}

type redisStorage struct {
	client Client
	key    string
}

// NewRedisStorage stores the collection as one JSON string under key.
func NewRedisStorage(client Client, key string) repository.Storage {
	if key == "" {
		key = repository.DefaultKey
	}
	return &redisStorage{client: client, key: key}
}

func (s *redisStorage) LoadAll(ctx context.Context) ([]*models.Raffle, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []*models.Raffle{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.key, err)
	}
	return repository.Decode(data)
}

func (s *redisStorage) SaveAll(ctx context.Context, raffles []*models.Raffle) error {
	data, err := repository.Encode(raffles)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", s.key, err)
	}
	return nil
}

func (s *redisStorage) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
