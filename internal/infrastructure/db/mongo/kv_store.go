package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/reservation-system/internal/core/ports"
)

const defaultKVCollection = "kv"

// KVStore is a KeyValueStore keeping one document per key.
type KVStore struct {
	coll *mongo.Collection
}

type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// NewKVStore uses collection name in db, or "kv" when name is empty.
func NewKVStore(db *mongo.Database, name string) *KVStore {
	if name == "" {
		name = defaultKVCollection
	}
	return &KVStore{coll: db.Collection(name)}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	var doc kvDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ports.ErrKeyNotFound
		}
		return "", fmt.Errorf("find key %q: %w", key, err)
	}
	return doc.Value, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDocument{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert key %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.coll.Database().RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
