package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config selects the Redis database and the key namespace of the store.
type Config struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	Timeout   time.Duration
}

// Open dials Redis and returns a KVStore once the server answers a ping.
// Close releases the client.
func Open(ctx context.Context, cfg Config) (*KVStore, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	store := NewKVStore(redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), cfg.KeyPrefix)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := store.Ping(pingCtx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return store, nil
}

// Close closes the client behind the store.
func (s *KVStore) Close() error {
	return s.client.Close()
}
