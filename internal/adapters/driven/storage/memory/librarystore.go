package memory

import (
	"sync"

	"github.com/custodia-labs/prompter/internal/core/domain"
	"github.com/custodia-labs/prompter/internal/core/ports/driven"
)

// Ensure LibraryStore implements the interface.
var _ driven.LibraryStore = (*LibraryStore)(nil)

// LibraryStore is an in-memory implementation of driven.LibraryStore.
type LibraryStore struct {
	mu          sync.RWMutex
	ids         []string
	registerErr error
}

// NewLibraryStore creates a library store seeded with ids.
func NewLibraryStore(ids ...string) *LibraryStore {
	return &LibraryStore{ids: append([]string(nil), ids...)}
}

// FailRegisters makes every subsequent Register return err. Pass nil to reset.
func (s *LibraryStore) FailRegisters(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registerErr = err
}

// Register appends id if absent.
func (s *LibraryStore) Register(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.registerErr != nil {
		return "", s.registerErr
	}
	if !domain.LibraryContains(s.ids, id) {
		s.ids = append(s.ids, id)
	}
	return s.Path(), nil
}

// List returns a copy of the registered IDs.
func (s *LibraryStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.ids...), nil
}

// Path returns the pseudo settings location.
func (s *LibraryStore) Path() string {
	return ":memory:"
}
