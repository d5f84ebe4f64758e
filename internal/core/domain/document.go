package domain

import "strings"

// TextDocument is a prompter script as Camera Hub reads it.
// Field order matches the on-disk JSON layout.
type TextDocument struct {
	// ID is the uppercase canonical UUID. It doubles as the file stem.
	ID string `json:"GUID"`

	// Chapters are the non-empty, trimmed lines of the source text.
	Chapters []string `json:"chapters"`

	// FriendlyName is the label shown in the Camera Hub library.
	FriendlyName string `json:"friendlyName"`

	// Index is the position hint stored with the document. Not validated.
	Index int `json:"index"`
}

// NewTextDocument builds a document from an already generated identifier.
// A nil chapter slice is stored as an empty list.
func NewTextDocument(id string, chapters []string, friendlyName string, index int) TextDocument {
	if chapters == nil {
		chapters = []string{}
	}
	return TextDocument{
		ID:           CanonicalID(id),
		Chapters:     chapters,
		FriendlyName: friendlyName,
		Index:        index,
	}
}

// CanonicalID returns the identifier form used for GUID fields and file names.
func CanonicalID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
