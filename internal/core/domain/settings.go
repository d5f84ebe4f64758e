package domain

// LibraryListKey is the settings field enumerating registered document GUIDs.
// The key contains dots but is a single top-level JSON key, not a path.
const LibraryListKey = "applogic.prompter.libraryList"

// LibraryContains reports whether id is already registered.
// Matching is exact; no case folding is applied.
func LibraryContains(list []string, id string) bool {
	for _, existing := range list {
		if existing == id {
			return true
		}
	}
	return false
}
