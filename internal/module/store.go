package module

import (
	"context"
	"sync"
)

// Store is the save sink for authored modules. It is append-only: records
// are never updated or removed, and ListAll returns them in insertion order.
type Store interface {
	Append(ctx context.Context, m *Module) error
	ListAll(ctx context.Context) ([]*Module, error)
}

// memoryStore keeps saved modules in a process-lifetime slice.
type memoryStore struct {
	mu      sync.Mutex
	modules []*Module
}

func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Append(_ context.Context, m *Module) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modules = append(s.modules, m)
	return nil
}

func (s *memoryStore) ListAll(_ context.Context) ([]*Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Module, len(s.modules))
	copy(out, s.modules)
	return out, nil
}
