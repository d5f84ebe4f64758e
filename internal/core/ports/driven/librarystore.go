package driven

// LibraryStore registers documents in the shared Camera Hub settings file.
// The file is owned by the host application; no locking is performed, so
// concurrent writers race and the last one wins.
type LibraryStore interface {
	// Register appends id to the library list if absent and persists the
	// whole settings object. Corrupt settings are replaced, not merged.
	// Returns the settings file location.
	Register(id string) (string, error)

	// List returns the registered IDs in stored order.
	List() ([]string, error)

	// Path returns the settings file location.
	Path() string
}
