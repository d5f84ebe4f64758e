package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/prompter/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show [guid]",
	Short: "Show a prompter text",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if importService == nil {
		return errors.New("import service not configured")
	}

	id := args[0]
	doc, err := importService.Document(id)
	if errors.Is(err, domain.ErrInvalidInput) {
		return fmt.Errorf("invalid GUID %q", id)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no prompter text with GUID %s", id)
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", id, err)
	}

	cmd.Println(titleStyle.Render("Prompter text: " + doc.ID))
	cmd.Printf("  Name: %s\n", doc.FriendlyName)
	cmd.Printf("  Index: %d\n", doc.Index)
	cmd.Printf("  Chapters: %d\n", len(doc.Chapters))
	cmd.Println()
	for i, chapter := range doc.Chapters {
		cmd.Printf("  %3d. %s\n", i+1, chapter)
	}
	return nil
}
