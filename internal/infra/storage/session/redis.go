package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "storefront:session"

// RedisStore хранилище сессий в Redis
// Брошенные записи удаляются самим Redis по TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore ttl = 0 означает хранение без срока
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sessionID, key string) ([]byte, error) {
	if err := validateKey(sessionID, key); err != nil {
		return nil, err
	}

	payload, err := s.client.Get(ctx, redisKey(sessionID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - redis: %v", ErrExecQuery, err)
	}
	return payload, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID, key string, payload []byte) error {
	if err := validateKey(sessionID, key); err != nil {
		return err
	}

	if err := s.client.Set(ctx, redisKey(sessionID, key), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - redis: %v", ErrExecQuery, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID, key string) error {
	if err := validateKey(sessionID, key); err != nil {
		return err
	}

	if err := s.client.Del(ctx, redisKey(sessionID, key)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - redis: %v", ErrExecQuery, err)
	}
	return nil
}

func redisKey(sessionID, key string) string {
	return fmt.Sprintf("%s:%s:%s", redisKeyPrefix, sessionID, key)
}
