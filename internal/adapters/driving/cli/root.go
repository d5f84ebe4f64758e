// Package cli implements the prompter command line.
//
// Running prompter with no subcommand asks for a text file, a friendly name
// and an index, then writes the prompter document and registers it with
// Camera Hub. Subcommands cover the same import without prompts, listing and
// showing registered texts, and watching a folder.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/prompter/internal/core/ports/driving"
	"github.com/custodia-labs/prompter/internal/logger"
)

// Options are the persistent flag values needed to build services.
type Options struct {
	// BaseDir overrides the app data root. Empty means resolve from config or env.
	BaseDir string

	// ConfigDir overrides the tool config directory (~/.prompter).
	ConfigDir string
}

// Services bundles what the commands call into.
type Services struct {
	Import driving.ImportService

	// WatchExtensions are the configured defaults for the watch command.
	WatchExtensions []string
}

// ServiceFactory builds services once flags are parsed.
type ServiceFactory func(Options) (*Services, error)

var (
	version = "dev"

	verbose   bool
	baseDir   string
	configDir string

	serviceFactory ServiceFactory

	importService   driving.ImportService
	watchExtensions []string
)

var rootCmd = &cobra.Command{
	Use:   "prompter",
	Short: "Import text files into the Camera Hub prompter library",
	Long: `Convert a plain text file into an Elgato Camera Hub prompter text.

Every non-blank line becomes a chapter. The document is written to
%APPDATA%/Elgato/CameraHub/Texts/<GUID>.json and its GUID is added to
the prompter library list in AppSettings.json.

Run without a subcommand to be prompted for the file, name and index.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	RunE:              runInteractiveImport,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print what is read and written")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "",
		"App data root containing Elgato/CameraHub (default: config paths.base_dir, then $APPDATA)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Tool config directory (default: ~/.prompter)")
}

// SetServiceFactory registers how services are built after flag parsing.
func SetServiceFactory(factory ServiceFactory) {
	serviceFactory = factory
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if serviceFactory == nil {
		return nil
	}
	services, err := serviceFactory(Options{BaseDir: baseDir, ConfigDir: configDir})
	if err != nil {
		return err
	}
	if services == nil || services.Import == nil {
		return errors.New("import service not configured")
	}

	importService = services.Import
	watchExtensions = services.WatchExtensions
	return nil
}
