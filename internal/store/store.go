// Package store provides the key/value persistence used to keep a game in
// progress and the completed-game history between runs.
package store

import (
	"errors"
	"sync"
)

// Keys under which the engine and the archive keep their snapshots.
const (
	GameStateKey   = "phase10-game-state"
	GameHistoryKey = "phase10-game-history"
)

// ErrInvalidKey is returned when a key cannot be stored.
var ErrInvalidKey = errors.New("invalid store key")

// Store is durable key/value storage for serialized snapshots.
type Store interface {
	// Load returns the snapshot saved under key. The boolean is false when
	// nothing has been saved.
	Load(key string) ([]byte, bool, error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// MemoryStore keeps snapshots in a map.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrInvalidKey
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (s *MemoryStore) Save(key string, data []byte) error {
	if key == "" {
		return ErrInvalidKey
	}
	s.mu.Lock()
	s.data[key] = append([]byte(nil), data...)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Keys returns the keys currently held, for tests and diagnostics.
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}
