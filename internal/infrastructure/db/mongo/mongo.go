package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config locates the collection holding the key-value documents.
type Config struct {
	URI        string
	Database   string
	Collection string // defaults to "kv"
	Timeout    time.Duration
}

// Open connects to MongoDB and returns a KVStore over cfg.Collection once
// the database answers a ping. Close releases the client.
func Open(ctx context.Context, cfg Config) (*KVStore, error) {
	if cfg.Database == "" {
		return nil, fmt.Errorf("mongo: database name is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	openCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(openCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	store := NewKVStore(client.Database(cfg.Database), cfg.Collection)
	if err := store.Ping(openCtx); err != nil {
		_ = client.Disconnect(openCtx)
		return nil, fmt.Errorf("mongo ping %s: %w", cfg.Database, err)
	}
	return store, nil
}

// Close disconnects the client behind the store.
func (s *KVStore) Close(ctx context.Context) error {
	return s.coll.Database().Client().Disconnect(ctx)
}
