package file

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/custodia-labs/prompter/internal/core/domain"
	"github.com/custodia-labs/prompter/internal/core/ports/driven"
	"github.com/custodia-labs/prompter/internal/logger"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

const documentSchemaURL = "document.schema.json"

//go:embed schema/document.schema.json
var documentSchema []byte

// DocumentStore writes prompter documents to <base>/Elgato/CameraHub/Texts.
type DocumentStore struct {
	layout domain.Layout
	schema *jsonschema.Schema
}

// NewDocumentStore creates a document store for the given layout.
// No I/O happens until the first Save.
func NewDocumentStore(layout domain.Layout) (*DocumentStore, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(documentSchemaURL, bytes.NewReader(documentSchema)); err != nil {
		return nil, fmt.Errorf("load document schema: %w", err)
	}
	schema, err := compiler.Compile(documentSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile document schema: %w", err)
	}

	return &DocumentStore{
		layout: layout,
		schema: schema,
	}, nil
}

// Save validates and writes the document as <GUID>.json, creating the
// Texts directory if needed. An existing file with the same GUID is replaced.
func (s *DocumentStore) Save(doc *domain.TextDocument) (string, error) {
	if doc == nil {
		return "", domain.ErrInvalidInput
	}

	data, err := encodeJSON(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	if err := s.validate(data); err != nil {
		return "", err
	}

	dir := s.layout.TextsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create texts directory: %w", err)
	}

	path := s.Path(doc.ID)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	logger.Debug("wrote %d bytes to %s", len(data), path)

	return path, nil
}

// Get reads a document by GUID.
func (s *DocumentStore) Get(id string) (*domain.TextDocument, error) {
	data, err := os.ReadFile(s.Path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var doc domain.TextDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	return &doc, nil
}

// Path returns <base>/Elgato/CameraHub/Texts/<GUID>.json.
func (s *DocumentStore) Path(id string) string {
	return s.layout.DocumentPath(id)
}

func (s *DocumentStore) validate(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	if err := s.schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	return nil
}
