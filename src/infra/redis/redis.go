package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client     *redis.Client
	defaultTTL time.Duration
}

func NewRedisClient(addr string, poolSize int, defaultTTL time.Duration) *RedisClient {
	client := redis.NewClient(&redis.Options{
		Addr: addr,

		PoolSize:     poolSize,
		MinIdleConns: 2,

		// Timeouts tuned for cache usage: a slow cache is a miss
		DialTimeout:  5 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,

		MaxRetries:      3,
		MinRetryBackoff: 50 * time.Millisecond,
		MaxRetryBackoff: 500 * time.Millisecond,
	})

	return &RedisClient{
		client:     client,
		defaultTTL: defaultTTL,
	}
}

// SetWithRegistry stores a cache entry and registers it under each registry
// key, so later writes touching those registry keys can invalidate it.
func (rc *RedisClient) SetWithRegistry(ctx context.Context, cacheKey string, cacheValue string, registryKeys []string) error {
	pipe := rc.client.Pipeline()

	fields := map[string]interface{}{
		"data":      cacheValue,
		"cached_at": time.Now().Unix(),
	}
	pipe.HSet(ctx, cacheKey, fields)
	pipe.Expire(ctx, cacheKey, rc.defaultTTL)

	for _, registryKey := range registryKeys {
		pipe.SAdd(ctx, registryKey, cacheKey)
		pipe.Expire(ctx, registryKey, rc.defaultTTL)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (rc *RedisClient) GetKey(ctx context.Context, key string) (string, bool, error) {
	result := rc.client.HGet(ctx, key, "data")

	// Cache miss
	if result.Err() == redis.Nil {
		return "", false, nil
	}
	if result.Err() != nil {
		return "", false, result.Err()
	}

	return result.Val(), true, nil
}

// GetSetMembers returns the members of each registry set that exists.
func (rc *RedisClient) GetSetMembers(ctx context.Context, registryKeys []string) (map[string][]string, error) {
	pipe := rc.client.Pipeline()

	cmds := make(map[string]*redis.StringSliceCmd, len(registryKeys))
	for _, key := range registryKeys {
		cmds[key] = pipe.SMembers(ctx, key)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}

	results := make(map[string][]string, len(cmds))
	for key, cmd := range cmds {
		members, err := cmd.Result()
		if err != nil && err != redis.Nil {
			return nil, err
		}
		if len(members) > 0 {
			results[key] = members
		}
	}

	return results, nil
}

func (rc *RedisClient) DeleteKeys(ctx context.Context, keys []string) error {
	var errs []string

	for _, key := range keys {
		if err := rc.client.Del(ctx, key).Err(); err != nil {
			errs = append(errs, fmt.Sprintf("key %s: %v", key, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalidation errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

func (rc *RedisClient) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

func (rc *RedisClient) PoolStats() *redis.PoolStats {
	return rc.client.PoolStats()
}

func (rc *RedisClient) Close() error {
	return rc.client.Close()
}
