package recent

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisList struct {
	client *redis.Client
}

// NewRedisList returns a ListStore backed by a Redis list per key.
func NewRedisList(client *redis.Client) ListStore {
	return &redisList{client: client}
}

func (l *redisList) Range(ctx context.Context, key string, stop int64) ([]string, error) {
	return l.client.LRange(ctx, key, 0, stop).Result()
}

func (l *redisList) Remove(ctx context.Context, key, raw string) error {
	return l.client.LRem(ctx, key, 1, raw).Err()
}

func (l *redisList) Push(ctx context.Context, key, raw string, max int64, ttl time.Duration) error {
	pipe := l.client.TxPipeline()
	pipe.LPush(ctx, key, raw)
	pipe.LTrim(ctx, key, 0, max-1)
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}
