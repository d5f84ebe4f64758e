package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/prompter/internal/connectors/filesystem"
	"github.com/custodia-labs/prompter/internal/core/domain"
	"github.com/custodia-labs/prompter/internal/core/ports/driving"
	"github.com/custodia-labs/prompter/internal/normalisers/plaintext"
)

// Interactive prompts and messages.
const (
	promptFilePath     = "Enter the path to the text file: "
	promptFriendlyName = "Enter the friendly name: "
	promptIndex        = "Enter the index (as an integer): "

	msgFileNotFound = "The provided file does not exist."
	msgInvalidIndex = "Please enter a valid integer for the index."

	msgSavedDocument   = "Saved TYPE2 JSON to: "
	msgUpdatedSettings = "Updated AppSettings.json at: "
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a text file without prompts",
	Long: `Import a text file as a prompter text and register it with Camera Hub.

The friendly name defaults to the file name without its extension.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var (
	importName  string
	importIndex int
)

func init() {
	importCmd.Flags().StringVarP(&importName, "name", "n", "", "Friendly name (default: file name)")
	importCmd.Flags().IntVarP(&importIndex, "index", "i", 0, "Index stored with the document")
	rootCmd.AddCommand(importCmd)
}

func runInteractiveImport(cmd *cobra.Command, _ []string) error {
	if importService == nil {
		return errors.New("import service not configured")
	}

	if isTerminal(cmd.InOrStdin()) {
		cmd.Println(titleStyle.Render("Camera Hub prompter import"))
		cmd.Println()
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	path, err := prompt(cmd, reader, promptFilePath)
	if err != nil {
		return err
	}
	if !isRegularFile(path) {
		cmd.Println(errorStyle.Render(msgFileNotFound))
		return nil
	}

	friendlyName, err := prompt(cmd, reader, promptFriendlyName)
	if err != nil {
		return err
	}

	index, err := promptUntil(cmd, reader, promptIndex, msgInvalidIndex, parseIndex)
	if err != nil {
		return err
	}

	result, err := importService.Import(cmd.Context(), driving.ImportRequest{
		Path:         path,
		FriendlyName: friendlyName,
		Index:        index,
	})
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Println(errorStyle.Render(msgFileNotFound))
		return nil
	}
	if err != nil {
		return err
	}

	printImportResult(cmd, result)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	if importService == nil {
		return errors.New("import service not configured")
	}

	path := filesystem.ResolvePath(args[0])
	name := importName
	if !cmd.Flags().Changed("name") {
		name = plaintext.ExtractTitle(path)
	}

	result, err := importService.Import(cmd.Context(), driving.ImportRequest{
		Path:         path,
		FriendlyName: name,
		Index:        importIndex,
	})
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}

	printImportResult(cmd, result)
	return nil
}

func printImportResult(cmd *cobra.Command, result *driving.ImportResult) {
	cmd.Println(successStyle.Render(msgSavedDocument + result.DocumentPath))
	cmd.Println(successStyle.Render(msgUpdatedSettings + result.SettingsPath))
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
