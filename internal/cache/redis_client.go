package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/pkg/errors"
)

// RedisCommander is the part of the redis client used by caches and stores.
//
//go:generate mockery --with-expecter --name RedisCommander
type RedisCommander interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(opts *redis.Options) *RedisClient {
	return &RedisClient{
		client: redis.NewClient(opts),
	}
}

func (r RedisClient) Client() *redis.Client {
	return r.client
}

func (r RedisClient) Ping(ctx context.Context) error {
	err := r.client.Ping(ctx).Err()
	if err != nil {
		return errors.Wrap(err, "unable to reach redis")
	}
	return nil
}

func (r RedisClient) Close() error {
	return errors.Wrap(r.client.Close(), "unable to close redis client")
}
