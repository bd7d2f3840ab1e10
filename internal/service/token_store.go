package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenStore remembers revoked session token ids.
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const revokedTokenKeyPrefix = "revoked_token:"

type RedisTokenStore struct {
	Redis *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{Redis: rdb}
}

func (s *RedisTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.Redis.Set(ctx, revokedTokenKeyPrefix+tokenID, 1, ttl).Err()
}

func (s *RedisTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := s.Redis.Get(ctx, revokedTokenKeyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// NoopTokenStore is used when redis is disabled; logout then only drops the
// token client side.
type NoopTokenStore struct{}

func (NoopTokenStore) Revoke(context.Context, string, time.Duration) error { return nil }

func (NoopTokenStore) IsRevoked(context.Context, string) (bool, error) { return false, nil }
