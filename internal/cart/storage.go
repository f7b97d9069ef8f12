package cart

import (
	"context"
	"sync"
)

// Storage is the persistence backend for serialized carts. A missing key
// reads as (nil, nil); callers treat unparseable data as an empty cart.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Remove(ctx context.Context, key string) error
}

// MemoryStorage keeps carts in a map. Used in tests and as the default
// backend when no external store is configured.
type MemoryStorage struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: make(map[string][]byte)}
}

func (s *MemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.carts[key]
	if !ok {
		return nil, nil
	}
	cp := append([]byte(nil), data...)
	return cp, nil
}

func (s *MemoryStorage) Set(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[key] = append([]byte(nil), data...)
	return nil
}

func (s *MemoryStorage) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, key)
	return nil
}
