package memory

import (
	"sync"

	"github.com/custodia-labs/prompter/internal/core/domain"
	"github.com/custodia-labs/prompter/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.TextDocument
	saveErr   error
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.TextDocument),
	}
}

// FailSaves makes every subsequent Save return err. Pass nil to reset.
func (s *DocumentStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Save stores a copy of the document.
func (s *DocumentStore) Save(doc *domain.TextDocument) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return "", s.saveErr
	}

	stored := *doc
	stored.Chapters = append([]string(nil), doc.Chapters...)
	s.documents[doc.ID] = stored
	return s.Path(doc.ID), nil
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(id string) (*domain.TextDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// Path returns a pseudo location for the document.
func (s *DocumentStore) Path(id string) string {
	return ":memory:/" + id
}

// Count returns the number of stored documents.
func (s *DocumentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}
