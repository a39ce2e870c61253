package mongo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/99minutos/reservation-system/internal/core/ports"
)

// Runs against a real server only when MONGO_TEST_URI is set.
func TestKVStore_Integration(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := Open(ctx, Config{URI: uri, Database: "reservas_test", Collection: "kv_" + uuid.NewString()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		_ = store.coll.Drop(context.Background())
		_ = store.Close(context.Background())
	}()

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if _, err := store.Get(ctx, "session"); err != ports.ErrKeyNotFound {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if err := store.Set(ctx, "session", "a"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "session", "b"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, err := store.Get(ctx, "session"); err != nil || v != "b" {
		t.Fatalf("Get = %q, %v", v, err)
	}
	if err := store.Remove(ctx, "session"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := store.Remove(ctx, "session"); err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if _, err := store.Get(ctx, "session"); err != ports.ErrKeyNotFound {
		t.Fatalf("expected ErrKeyNotFound after remove, got %v", err)
	}
}

func TestOpen_RequiresDatabase(t *testing.T) {
	if _, err := Open(context.Background(), Config{URI: "mongodb://localhost:27017"}); err == nil {
		t.Fatalf("expected error for empty database name")
	}
}
