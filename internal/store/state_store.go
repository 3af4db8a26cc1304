package store

import (
	"context"
	"path/filepath"
	"sync"

	"baseconv/internal/domain"
)

const stateFile = "state.json"

// StateFileStore persists widget state to a JSON file.
type StateFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewStateFileStore returns a StateFileStore rooted at dir.
func NewStateFileStore(dir string) *StateFileStore {
	return &StateFileStore{dir: dir}
}

// Path returns the file the state is written to.
func (s *StateFileStore) Path() string { return filepath.Join(s.dir, stateFile) }

// SaveState overwrites the stored state.
func (s *StateFileStore) SaveState(_ context.Context, state domain.WidgetState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.Path(), state, 0o600)
}

// LoadState reads the stored state; ok is false if none has been saved.
func (s *StateFileStore) LoadState(_ context.Context) (domain.WidgetState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.Path())
	if err != nil || b == nil {
		return domain.WidgetState{}, false, err
	}
	var state domain.WidgetState
	if err := unmarshalState(b, &state); err != nil {
		return domain.WidgetState{}, false, err
	}
	return state, true, nil
}

// MemoryStore keeps widget state in memory.
type MemoryStore struct {
	mu    sync.RWMutex
	state domain.WidgetState
	saved bool
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) SaveState(_ context.Context, state domain.WidgetState) error {
	m.mu.Lock()
	m.state, m.saved = state, true
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) LoadState(_ context.Context) (domain.WidgetState, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state, m.saved, nil
}

// Compile-time assertions that the stores implement domain.StateStore.
var (
	_ domain.StateStore = (*StateFileStore)(nil)
	_ domain.StateStore = (*MemoryStore)(nil)
)
