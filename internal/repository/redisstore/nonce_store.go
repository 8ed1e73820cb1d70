package redisstore

import (
	"context"
	"errors"
	"time"

	"rude-dashboard-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const noncePrefix = "rude:csrf:"

type NonceStore struct {
	rdb *redis.Client
}

func NewNonceStore(rdb *redis.Client) contract.NonceStore {
	return &NonceStore{rdb: rdb}
}

func (s *NonceStore) Save(ctx context.Context, wallet, nonce string, ttl time.Duration) error {
	return s.rdb.Set(ctx, noncePrefix+wallet, nonce, ttl).Err()
}

func (s *NonceStore) Get(ctx context.Context, wallet string) (string, bool, error) {
	nonce, err := s.rdb.Get(ctx, noncePrefix+wallet).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return nonce, true, nil
}

func (s *NonceStore) Delete(ctx context.Context, wallet string) error {
	return s.rdb.Del(ctx, noncePrefix+wallet).Err()
}
