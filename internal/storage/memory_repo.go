package storage

import (
	"sync"
)

type MemoryRepo struct {
	items map[string][]byte
	mu    *sync.RWMutex
}

var _ Storage = (*MemoryRepo)(nil)

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items: make(map[string][]byte),
		mu:    &sync.RWMutex{},
	}
}

func (r *MemoryRepo) GetItem(key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.items[key]
	if !ok {
		return nil, ErrNotFound
	}

	return append([]byte(nil), value...), nil
}

func (r *MemoryRepo) SetItem(key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[key] = append([]byte(nil), value...)

	return nil
}

func (r *MemoryRepo) RemoveItem(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, key)

	return nil
}
