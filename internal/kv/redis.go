package kv

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const scanBatchSize = 100

// RedisStore implements Store on a Redis client. Values are stored as JSON
// strings; prefix queries use SCAN with a MATCH pattern.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *RedisStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	var (
		values [][]byte
		cursor uint64
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, prefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			b, err := s.client.Get(ctx, key).Bytes()
			if err != nil {
				if err == redis.Nil {
					// deleted between SCAN and GET
					continue
				}
				return nil, err
			}
			values = append(values, b)
		}
		cursor = next
		if cursor == 0 {
			return values, nil
		}
	}
}
