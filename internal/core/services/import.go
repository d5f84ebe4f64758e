package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/prompter/internal/core/domain"
	"github.com/custodia-labs/prompter/internal/core/ports/driven"
	"github.com/custodia-labs/prompter/internal/core/ports/driving"
	"github.com/custodia-labs/prompter/internal/logger"
)

// Ensure ImportService implements the interface.
var _ driving.ImportService = (*ImportService)(nil)

// ImportService turns text files into registered prompter documents.
type ImportService struct {
	normaliser   driven.Normaliser
	docStore     driven.DocumentStore
	libraryStore driven.LibraryStore
	newID        func() uuid.UUID
}

// NewImportService creates a new import service.
func NewImportService(
	normaliser driven.Normaliser,
	docStore driven.DocumentStore,
	libraryStore driven.LibraryStore,
) *ImportService {
	return &ImportService{
		normaliser:   normaliser,
		docStore:     docStore,
		libraryStore: libraryStore,
		newID:        uuid.New,
	}
}

// Import reads, builds and registers a document.
// Nothing is written if the source file cannot be read.
func (s *ImportService) Import(ctx context.Context, req driving.ImportRequest) (*driving.ImportResult, error) {
	if s.normaliser == nil {
		return nil, errors.New("normaliser not configured")
	}

	logger.Section("Import")
	logger.Debug("source: %s", req.Path)

	chapters, err := s.normaliser.Chapters(ctx, req.Path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	logger.Debug("chapters: %d", len(chapters))

	doc, docPath, err := s.BuildDocument(chapters, req.FriendlyName, req.Index)
	if err != nil {
		return nil, err
	}

	// The document stays on disk if registration fails.
	settingsPath, err := s.RegisterDocument(doc.ID)
	if err != nil {
		return nil, err
	}

	return &driving.ImportResult{
		Document:     *doc,
		DocumentPath: docPath,
		SettingsPath: settingsPath,
	}, nil
}

// BuildDocument assigns a fresh uppercase GUID and persists the document.
func (s *ImportService) BuildDocument(
	chapters []string,
	friendlyName string,
	index int,
) (*domain.TextDocument, string, error) {
	if s.docStore == nil {
		return nil, "", errors.New("document store not configured")
	}

	doc := domain.NewTextDocument(s.newID().String(), chapters, friendlyName, index)

	path, err := s.docStore.Save(&doc)
	if err != nil {
		return nil, "", fmt.Errorf("save document %s: %w", doc.ID, err)
	}
	logger.Info("saved document %s to %s", doc.ID, path)

	return &doc, path, nil
}

// RegisterDocument adds id to the Camera Hub library list.
func (s *ImportService) RegisterDocument(id string) (string, error) {
	if s.libraryStore == nil {
		return "", errors.New("library store not configured")
	}
	if id == "" {
		return "", fmt.Errorf("%w: empty document id", domain.ErrInvalidInput)
	}

	path, err := s.libraryStore.Register(id)
	if err != nil {
		return "", fmt.Errorf("register document %s: %w", id, err)
	}
	logger.Info("registered %s in %s", id, path)

	return path, nil
}

// Library lists registered IDs. Entries that are not GUIDs, or whose document
// file is missing or unreadable, are returned without a document.
func (s *ImportService) Library() ([]driving.LibraryEntry, error) {
	if s.libraryStore == nil {
		return nil, errors.New("library store not configured")
	}

	ids, err := s.libraryStore.List()
	if err != nil {
		return nil, fmt.Errorf("list library: %w", err)
	}

	entries := make([]driving.LibraryEntry, 0, len(ids))
	for _, id := range ids {
		entry := driving.LibraryEntry{ID: id}
		docID, err := documentID(id)
		if err != nil {
			logger.Debug("skipping document lookup: %v", err)
		} else if s.docStore != nil {
			doc, err := s.docStore.Get(docID)
			switch {
			case err == nil:
				entry.Document = doc
			case errors.Is(err, domain.ErrNotFound):
				logger.Debug("no document file for %s", id)
			default:
				logger.Warn("load document %s: %v", id, err)
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Document loads a stored document by GUID. Anything that does not parse
// as a GUID is rejected with domain.ErrInvalidInput.
func (s *ImportService) Document(id string) (*domain.TextDocument, error) {
	if s.docStore == nil {
		return nil, errors.New("document store not configured")
	}
	docID, err := documentID(id)
	if err != nil {
		return nil, err
	}
	return s.docStore.Get(docID)
}

// documentID returns the canonical file stem for a GUID.
func documentID(id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a GUID", domain.ErrInvalidInput, id)
	}
	return domain.CanonicalID(parsed.String()), nil
}
