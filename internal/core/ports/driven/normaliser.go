package driven

import "context"

// Normaliser converts a source text file into prompter chapters.
type Normaliser interface {
	// Chapters reads the file at path and returns its non-empty trimmed lines
	// in order. Returns domain.ErrNotFound if the file does not exist.
	Chapters(ctx context.Context, path string) ([]string, error)
}
