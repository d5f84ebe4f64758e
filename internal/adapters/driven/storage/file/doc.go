// Package file provides the Camera Hub on-disk storage adapters.
//
// Adapters:
//   - DocumentStore: One JSON file per prompter document under Texts/
//   - LibraryStore: Read-modify-write of the library list in AppSettings.json
//
// Both write UTF-8 JSON with four-space indentation and leave non-ASCII
// characters unescaped, matching what Camera Hub itself produces.
package file
