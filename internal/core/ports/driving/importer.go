package driving

import (
	"context"

	"github.com/custodia-labs/prompter/internal/core/domain"
)

// ImportRequest describes one text file to turn into a prompter document.
type ImportRequest struct {
	// Path is the source text file.
	Path string

	// FriendlyName is the library label. May be empty.
	FriendlyName string

	// Index is stored as-is.
	Index int
}

// ImportResult reports where an import wrote its output.
type ImportResult struct {
	Document     domain.TextDocument
	DocumentPath string
	SettingsPath string
}

// LibraryEntry is one registered ID with its document, when the file exists.
type LibraryEntry struct {
	ID       string
	Document *domain.TextDocument
}

// ImportService builds prompter documents and registers them with Camera Hub.
type ImportService interface {
	// Import reads the text file, writes the document and registers it.
	// Returns domain.ErrNotFound without side effects if the file is missing.
	// The two writes are independent: a registration failure leaves the
	// document file in place.
	Import(ctx context.Context, req ImportRequest) (*ImportResult, error)

	// BuildDocument generates a new GUID and persists the document.
	BuildDocument(chapters []string, friendlyName string, index int) (*domain.TextDocument, string, error)

	// RegisterDocument adds id to the library list if absent.
	RegisterDocument(id string) (string, error)

	// Library lists registered IDs with their documents.
	Library() ([]LibraryEntry, error)

	// Document loads a stored document by ID.
	Document(id string) (*domain.TextDocument, error)
}
