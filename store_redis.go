package swt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisTokenPrefix = "swt:token:"

// RedisTokenStore is a Redis-backed TokenStore for multi-instance
// deployments. Expiry is delegated to Redis key TTLs.
type RedisTokenStore struct {
	client *redis.Client
}

var _ TokenStore = (*RedisTokenStore)(nil)

// NewRedisTokenStore creates a Redis-based token store and verifies
// the connection with a ping.
func NewRedisTokenStore(client *redis.Client) (*RedisTokenStore, error) {
	if client == nil {
		return nil, fmt.Errorf("swt: redis client cannot be nil")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("swt: redis connection failed: %w", err)
	}

	return &RedisTokenStore{client: client}, nil
}

// Save stores wire under id for ttl.
func (r *RedisTokenStore) Save(ctx context.Context, id string, wire string, ttl time.Duration) error {
	if id == "" {
		return fmt.Errorf("swt: token ID cannot be empty")
	}
	if wire == "" {
		return fmt.Errorf("swt: wire text cannot be empty")
	}
	if ttl <= 0 {
		return fmt.Errorf("swt: ttl must be positive")
	}

	key := redisTokenPrefix + hashStoreKey(id)
	return r.client.Set(ctx, key, wire, ttl).Err()
}

// Load returns the wire string stored under id, or ErrTokenNotFound.
func (r *RedisTokenStore) Load(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("swt: token ID cannot be empty")
	}

	key := redisTokenPrefix + hashStoreKey(id)
	wire, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("swt: redis error: %w", err)
	}

	return wire, nil
}

// Delete removes the token stored under id, if any.
func (r *RedisTokenStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("swt: token ID cannot be empty")
	}

	key := redisTokenPrefix + hashStoreKey(id)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("swt: redis error: %w", err)
	}

	return nil
}

// Exists reports whether a live token is stored under id.
func (r *RedisTokenStore) Exists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("swt: token ID cannot be empty")
	}

	key := redisTokenPrefix + hashStoreKey(id)
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("swt: redis error: %w", err)
	}

	return n > 0, nil
}
