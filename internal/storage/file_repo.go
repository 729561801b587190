package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileRepo keeps every key inside one JSON document on disk.
type FileRepo struct {
	FilePath string
	items    map[string]json.RawMessage
	mu       *sync.RWMutex
}

var _ Storage = (*FileRepo)(nil)

func NewFileRepo(filePath string) (*FileRepo, error) {
	r := &FileRepo{
		FilePath: filePath,
		items:    make(map[string]json.RawMessage),
		mu:       &sync.RWMutex{},
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, err
	}
	if err := r.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return r, nil
}

func (r *FileRepo) load() error {
	data, err := os.ReadFile(r.FilePath)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, &r.items)
}

func (r *FileRepo) save() error {
	data, err := json.Marshal(r.items)
	if err != nil {
		return err
	}

	tmp := r.FilePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmp, r.FilePath)
}

func (r *FileRepo) GetItem(key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.items[key]
	if !ok {
		return nil, ErrNotFound
	}

	return append([]byte(nil), value...), nil
}

// SetItem stores value inside the document, so it must be valid JSON.
// Insignificant whitespace does not survive a reload.
func (r *FileRepo) SetItem(key string, value []byte) error {
	if !json.Valid(value) {
		return ErrNotJSON
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	raw := json.RawMessage(append([]byte(nil), value...))

	prev, existed := r.items[key]
	r.items[key] = raw
	if err := r.save(); err != nil {
		if existed {
			r.items[key] = prev
		} else {
			delete(r.items, key)
		}

		return err
	}

	return nil
}

func (r *FileRepo) RemoveItem(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[key]; !ok {
		return nil
	}

	delete(r.items, key)

	return r.save()
}
