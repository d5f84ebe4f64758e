package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered prompter texts",
	Long:  `List the GUIDs in the Camera Hub prompter library with their friendly names.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if importService == nil {
		return errors.New("import service not configured")
	}

	entries, err := importService.Library()
	if err != nil {
		return fmt.Errorf("failed to list library: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No prompter texts registered.")
		return nil
	}

	cmd.Println(titleStyle.Render("Prompter library"))
	cmd.Println()
	for _, entry := range entries {
		cmd.Printf("  %s\n", entry.ID)
		if entry.Document == nil {
			cmd.Println(mutedStyle.Render("    (document file missing)"))
			continue
		}
		cmd.Printf("    Name: %s\n", entry.Document.FriendlyName)
		cmd.Printf("    Index: %d\n", entry.Document.Index)
		cmd.Printf("    Chapters: %d\n", len(entry.Document.Chapters))
	}
	cmd.Println()
	cmd.Printf("Total: %d texts\n", len(entries))
	return nil
}
