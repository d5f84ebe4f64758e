// Package domain defines the core business entities for prompter.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TextDocument: A prompter script stored as one JSON file per GUID
//   - Layout: Where Camera Hub keeps its texts and settings on disk
//   - LibraryListKey: The settings field that registers documents
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
