package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/99minutos/reservation-system/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// stubKV is an in-memory KeyValueStore that can be told to fail.
type stubKV struct {
	data   map[string]string
	sets   int
	setErr error
}

func newStubKV() *stubKV {
	return &stubKV{data: make(map[string]string)}
}

func (s *stubKV) Get(_ context.Context, key string) (string, error) {
	v, ok := s.data[key]
	if !ok {
		return "", ports.ErrKeyNotFound
	}
	return v, nil
}

func (s *stubKV) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.sets++
	s.data[key] = value
	return nil
}

func (s *stubKV) Remove(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

var errStoreDown = errors.New("store down")
