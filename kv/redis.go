package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis persists each key as a plain Redis string with no expiry.
type Redis struct {
	client *redis.Client
}

// ConnectRedis connects to Redis at addr and verifies the connection.
func ConnectRedis(addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Redis{client: client}, nil
}

// NewRedis wraps an existing client, mainly for tests.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Load fetches the value stored under key.
func (r *Redis) Load(ctx context.Context, key string) ([]byte, bool, error) {
	blob, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return blob, true, nil
}

// Save overwrites the value stored under key.
func (r *Redis) Save(ctx context.Context, key string, blob []byte) error {
	if err := r.client.Set(ctx, key, blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Close releases the client's resources.
func (r *Redis) Close() error {
	return r.client.Close()
}
