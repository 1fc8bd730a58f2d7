package repositories

import (
	"context"
	"sync"
)

// MemoryKVRepository keeps the store in a map. Tests run against it, and it
// backs STORAGE_MODE=memory, which swaps only the key-value handoff; the app
// still connects to Postgres for destinations and saved itineraries.
type MemoryKVRepository struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryKVRepository() *MemoryKVRepository {
	return &MemoryKVRepository{data: make(map[string]string)}
}

func (r *MemoryKVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[key]
	return v, ok, nil
}

func (r *MemoryKVRepository) Set(ctx context.Context, key string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = value
	return nil
}

func (r *MemoryKVRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}
