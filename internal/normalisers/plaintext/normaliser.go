package plaintext

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/prompter/internal/core/domain"
	"github.com/custodia-labs/prompter/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

const byteOrderMark = "\ufeff"

// Normaliser handles UTF-8 plain text files.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Chapters reads path and splits it into chapters.
// A missing path or a directory yields domain.ErrNotFound; content that is
// not valid UTF-8 yields domain.ErrInvalidInput.
func (n *Normaliser) Chapters(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, domain.ErrNotFound)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s is not valid UTF-8: %w", path, domain.ErrInvalidInput)
	}

	return Split(string(content)), nil
}

// Split returns the trimmed, non-blank lines of text in order.
// \n, \r\n and a bare \r all end a line.
func Split(text string) []string {
	text = strings.TrimPrefix(text, byteOrderMark)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	chapters := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimFunc(line, isSpace); trimmed != "" {
			chapters = append(chapters, trimmed)
		}
	}
	return chapters
}

// isSpace reports Unicode white space plus the ASCII information separators
// U+001C to U+001F, which text editors also treat as blank.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// ExtractTitle derives a human-readable name from a file path.
func ExtractTitle(path string) string {
	// Get filename from path
	filename := filepath.Base(path)

	// Remove the extension for a cleaner title
	ext := filepath.Ext(filename)
	if ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}

	// Replace underscores and dashes with spaces
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")

	return strings.TrimSpace(filename)
}
