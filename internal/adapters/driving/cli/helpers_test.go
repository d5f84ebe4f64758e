package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/prompter/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/prompter/internal/core/services"
	"github.com/custodia-labs/prompter/internal/normalisers/plaintext"
)

// testStores exposes the in-memory stores behind the test import service.
type testStores struct {
	docs    *memory.DocumentStore
	library *memory.LibraryStore
}

// setupTestServices installs an import service backed by memory stores and
// restores the previous state when the test ends.
func setupTestServices(t *testing.T) testStores {
	t.Helper()

	stores := testStores{
		docs:    memory.NewDocumentStore(),
		library: memory.NewLibraryStore(),
	}

	prevService, prevFactory, prevExts := importService, serviceFactory, watchExtensions
	importService = services.NewImportService(plaintext.New(), stores.docs, stores.library)
	serviceFactory = nil
	watchExtensions = nil

	t.Cleanup(func() {
		importService, serviceFactory, watchExtensions = prevService, prevFactory, prevExts
		resetFlags()
	})
	return stores
}

// resetFlags clears flag values and Changed markers left by earlier runs.
func resetFlags() {
	importName, importIndex = "", 0
	watchStartIndex, watchExts = 0, nil
	verbose, baseDir, configDir = false, "", ""

	for _, name := range []string{"name", "index"} {
		importCmd.Flags().Lookup(name).Changed = false
	}
	for _, name := range []string{"index", "ext"} {
		watchCmd.Flags().Lookup(name).Changed = false
	}
}

// executeCommand runs rootCmd with args and stdin, returning combined output.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeTextFile creates a text file in a temp dir and returns its path.
func writeTextFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
