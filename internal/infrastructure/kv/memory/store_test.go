package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/99minutos/reservation-system/internal/core/ports"
)

func TestStore_GetSetRemove(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, "k"); err != ports.ErrKeyNotFound {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if v, err := s.Get(ctx, "k"); err != nil || v != "v2" {
		t.Fatalf("Get = %q, %v", v, err)
	}
	if err := s.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if err := s.Remove(ctx, "k"); err != nil {
		t.Fatalf("second Remove returned error: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d keys", s.Len())
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i))
			_ = s.Set(ctx, key, "v")
			_, _ = s.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	if s.Len() != 16 {
		t.Fatalf("expected 16 keys, got %d", s.Len())
	}
}
