// Package store persists the serialized chart under a fixed key.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/designspace/designspace/internal/config"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("not found")

// Store is a key-value byte store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

// Open returns the backend selected by cfg. The local backend is only
// available in the browser build; elsewhere it falls back to memory.
func Open(ctx context.Context, cfg *config.Config) (Store, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendMemory, config.BackendLocal:
		return NewMemory(), func() {}, nil
	case config.BackendFile:
		f, err := NewFile(cfg.StorageDir)
		if err != nil {
			return nil, nil, err
		}
		return f, func() {}, nil
	case config.BackendPostgres:
		p, err := NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	}
	return nil, nil, fmt.Errorf("open store: unknown backend %q", cfg.StorageBackend)
}

// Memory keeps entries in process memory.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *Memory) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = append([]byte(nil), data...)
	return nil
}
