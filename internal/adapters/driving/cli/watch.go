package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/prompter/internal/connectors/filesystem"
	"github.com/custodia-labs/prompter/internal/core/ports/driving"
	"github.com/custodia-labs/prompter/internal/normalisers/plaintext"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Import text files as they appear in a folder",
	Long: `Watch a folder and import every new or changed text file once.

Each file is named after its file name. The index starts at --index and
increases by one per imported file. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var (
	watchStartIndex int
	watchExts       []string
)

func init() {
	watchCmd.Flags().IntVarP(&watchStartIndex, "index", "i", 0, "Index for the first imported file")
	watchCmd.Flags().StringSliceVar(&watchExts, "ext", nil,
		"File extensions to import (default: config watch.extensions, then .txt)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if importService == nil {
		return errors.New("import service not configured")
	}

	dir := filesystem.ResolvePath(args[0])
	exts := watchExts
	if len(exts) == 0 {
		exts = watchExtensions
	}

	watcher := filesystem.NewWatcher(dir, exts, newWatchHandler(cmd, watchStartIndex))
	cmd.Printf("Watching %s (Ctrl+C to stop)\n", dir)
	return watcher.Run(cmd.Context())
}

// newWatchHandler imports each file with the next index. The index only
// advances on success.
func newWatchHandler(cmd *cobra.Command, start int) filesystem.Handler {
	next := start
	return func(ctx context.Context, path string) error {
		result, err := importService.Import(ctx, driving.ImportRequest{
			Path:         path,
			FriendlyName: plaintext.ExtractTitle(path),
			Index:        next,
		})
		if err != nil {
			cmd.PrintErrln(errorStyle.Render("Failed to import " + path + ": " + err.Error()))
			return err
		}
		next++
		printImportResult(cmd, result)
		return nil
	}
}
