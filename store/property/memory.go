package property

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pandodao/watch-wallet/core"
)

// NewMemory returns a process local PropertyStore. Values are kept as JSON
// so callers never share memory with the store.
func NewMemory() core.PropertyStore {
	return &memoryStore{values: map[string][]byte{}}
}

type memoryStore struct {
	mux    sync.RWMutex
	values map[string][]byte
}

func (s *memoryStore) Get(_ context.Context, key string, value any) error {
	s.mux.RLock()
	raw, ok := s.values[key]
	s.mux.RUnlock()

	if !ok {
		return nil
	}

	return json.Unmarshal(raw, value)
}

func (s *memoryStore) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	s.mux.Lock()
	s.values[key] = raw
	s.mux.Unlock()
	return nil
}
