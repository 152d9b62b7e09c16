package session

import (
	"context"
	"errors"
	"time"

	"perfumebox/internal/domain"

	"github.com/redis/go-redis/v9"
)

const tokenKeyPrefix = "session:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a TokenStore backed by Redis.
func NewRedisStore(client *redis.Client) TokenStore {
	return &redisStore{client: client}
}

func (s *redisStore) Save(ctx context.Context, token, accountID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKeyPrefix+token, accountID, ttl).Err()
}

func (s *redisStore) Lookup(ctx context.Context, token string) (string, error) {
	accountID, err := s.client.Get(ctx, tokenKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return accountID, nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, tokenKeyPrefix+token).Err()
}
