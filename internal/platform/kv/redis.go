// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/gamecodex/internal/platform/dberr"
)

// redisKeyPrefix namespaces Gamecodex keys inside a shared Redis database.
const redisKeyPrefix = "gamecodex:"

// RedisStore implements [Store] on top of a Redis client.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed [Store].
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

/*
Get retrieves the raw value for key.

Returns:
  - []byte: Stored value
  - bool: false when the key does not exist
  - error: Connectivity errors
*/
func (repository *RedisStore) Get(context context.Context, key string) ([]byte, bool, error) {
	value, err := repository.client.Get(context, redisKeyPrefix+key).Bytes()
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis_kv_get_failed: %w", err)
	}
	return value, true, nil
}

// Set stores value without expiry; device state lives until the device removes it.
func (repository *RedisStore) Set(context context.Context, key string, value []byte) error {
	if err := repository.client.Set(context, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis_kv_set_failed: %w", err)
	}
	return nil
}

// Remove deletes key.
func (repository *RedisStore) Remove(context context.Context, key string) error {
	if err := repository.client.Del(context, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis_kv_delete_failed: %w", err)
	}
	return nil
}
