package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "prompter", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commandNames := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "import")
	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "watch")
	assert.Contains(t, commandNames, "version")
}

func TestInteractiveImport_Success(t *testing.T) {
	stores := setupTestServices(t)
	path := writeTextFile(t, "script.txt", "  First line  \n\nSecond line\n")

	output, err := executeCommand(t, path+"\nMy Script\n5\n")

	require.NoError(t, err)
	assert.Contains(t, output, promptFilePath)
	assert.Contains(t, output, promptFriendlyName)
	assert.Contains(t, output, promptIndex)
	assert.Contains(t, output, "Saved TYPE2 JSON to: :memory:/")
	assert.Contains(t, output, "Updated AppSettings.json at: :memory:")

	ids, err := stores.library.List()
	require.NoError(t, err)
	require.Len(t, ids, 1)

	doc, err := stores.docs.Get(ids[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"First line", "Second line"}, doc.Chapters)
	assert.Equal(t, "My Script", doc.FriendlyName)
	assert.Equal(t, 5, doc.Index)
}

func TestInteractiveImport_PromptOrder(t *testing.T) {
	setupTestServices(t)
	path := writeTextFile(t, "script.txt", "line\n")

	output, err := executeCommand(t, path+"\nName\n1\n")

	require.NoError(t, err)
	first := strings.Index(output, promptFilePath)
	second := strings.Index(output, promptFriendlyName)
	third := strings.Index(output, promptIndex)
	assert.True(t, first < second && second < third, "prompts out of order: %q", output)
}

// TestInteractiveImport_RepromptsForIndex tests the index loop until a valid integer
func TestInteractiveImport_RepromptsForIndex(t *testing.T) {
	stores := setupTestServices(t)
	path := writeTextFile(t, "script.txt", "line\n")

	output, err := executeCommand(t, path+"\nName\nabc\n1.5\n\n-3\n")

	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(output, msgInvalidIndex))
	assert.Equal(t, 4, strings.Count(output, promptIndex))

	ids, err := stores.library.List()
	require.NoError(t, err)
	require.Len(t, ids, 1)
	doc, err := stores.docs.Get(ids[0])
	require.NoError(t, err)
	assert.Equal(t, -3, doc.Index)
}

func TestInteractiveImport_MissingFile(t *testing.T) {
	stores := setupTestServices(t)

	output, err := executeCommand(t, "/definitely/not/here.txt\nName\n1\n")

	require.NoError(t, err)
	assert.Contains(t, output, msgFileNotFound)
	assert.NotContains(t, output, promptFriendlyName)
	assert.Equal(t, 0, stores.docs.Count())
	ids, err := stores.library.List()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestInteractiveImport_DirectoryIsNotAFile(t *testing.T) {
	stores := setupTestServices(t)

	output, err := executeCommand(t, t.TempDir()+"\n")

	require.NoError(t, err)
	assert.Contains(t, output, msgFileNotFound)
	assert.Equal(t, 0, stores.docs.Count())
}

func TestInteractiveImport_EmptyFriendlyName(t *testing.T) {
	stores := setupTestServices(t)
	path := writeTextFile(t, "script.txt", "line\n")

	_, err := executeCommand(t, path+"\n\n0\n")

	require.NoError(t, err)
	ids, err := stores.library.List()
	require.NoError(t, err)
	require.Len(t, ids, 1)
	doc, err := stores.docs.Get(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "", doc.FriendlyName)
}

func TestInteractiveImport_InputEndsBeforeIndex(t *testing.T) {
	stores := setupTestServices(t)
	path := writeTextFile(t, "script.txt", "line\n")

	_, err := executeCommand(t, path+"\nName\nnot a number\n")

	assert.ErrorIs(t, err, errNoInput)
	assert.Equal(t, 0, stores.docs.Count())
}

func TestInteractiveImport_NoService(t *testing.T) {
	setupTestServices(t)
	importService = nil

	_, err := executeCommand(t, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "import service not configured")
}

func TestImportCmd_RequiresExactlyOneArg(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "", "import")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestImportCmd_DefaultsNameToFileName(t *testing.T) {
	stores := setupTestServices(t)
	path := writeTextFile(t, "welcome_script.txt", "Hello\n")

	output, err := executeCommand(t, "", "import", path, "--index", "3")

	require.NoError(t, err)
	assert.Contains(t, output, msgSavedDocument)
	ids, err := stores.library.List()
	require.NoError(t, err)
	require.Len(t, ids, 1)
	doc, err := stores.docs.Get(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "welcome script", doc.FriendlyName)
	assert.Equal(t, 3, doc.Index)
}

func TestImportCmd_ExplicitName(t *testing.T) {
	stores := setupTestServices(t)
	path := writeTextFile(t, "script.txt", "Hello\n")

	_, err := executeCommand(t, "", "import", "file://"+path, "--name", "Keynote")

	require.NoError(t, err)
	ids, err := stores.library.List()
	require.NoError(t, err)
	require.Len(t, ids, 1)
	doc, err := stores.docs.Get(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Keynote", doc.FriendlyName)
}

func TestImportCmd_MissingFile(t *testing.T) {
	stores := setupTestServices(t)

	_, err := executeCommand(t, "", "import", "/no/such/file.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Equal(t, 0, stores.docs.Count())
}
