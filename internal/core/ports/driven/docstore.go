package driven

import "github.com/custodia-labs/prompter/internal/core/domain"

// DocumentStore persists prompter documents.
type DocumentStore interface {
	// Save writes the document under its ID and returns the file location.
	// Implementations create missing parent directories.
	Save(doc *domain.TextDocument) (string, error)

	// Get loads a document by ID.
	// Returns domain.ErrNotFound if no document exists.
	Get(id string) (*domain.TextDocument, error)

	// Path returns where a document with the given ID is stored.
	Path(id string) string
}
