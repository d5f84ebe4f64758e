package main

import (
	"fmt"

	"github.com/custodia-labs/prompter/internal/adapters/driven/config/env"
	configfile "github.com/custodia-labs/prompter/internal/adapters/driven/config/file"
	storagefile "github.com/custodia-labs/prompter/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/prompter/internal/adapters/driving/cli"
	"github.com/custodia-labs/prompter/internal/core/domain"
	"github.com/custodia-labs/prompter/internal/core/ports/driven"
	"github.com/custodia-labs/prompter/internal/core/services"
	"github.com/custodia-labs/prompter/internal/logger"
	"github.com/custodia-labs/prompter/internal/normalisers/plaintext"
)

// Config keys read from config.toml.
const (
	keyBaseDir         = "paths.base_dir"
	keyWatchExtensions = "watch.extensions"
)

// buildServices wires the file-backed adapters into the import service.
func buildServices(opts cli.Options) (*cli.Services, error) {
	if err := env.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := configfile.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return assemble(opts, cfg)
}

// assemble builds the services from resolved flags and tool config.
func assemble(opts cli.Options, cfg driven.ConfigStore) (*cli.Services, error) {
	logger.Debug("config: %s", cfg.Path())

	base, source := env.ResolveBaseDir(opts.BaseDir, cfg.GetString(keyBaseDir), nil)
	if source == env.SourceNone {
		logger.Warn("%s is not set, writing relative to the current directory", env.AppDataVar)
	}
	logger.Debug("base directory %q (from %s)", base, source)

	layout := domain.NewLayout(base)
	docs, err := storagefile.NewDocumentStore(layout)
	if err != nil {
		return nil, err
	}

	return &cli.Services{
		Import:          services.NewImportService(plaintext.New(), docs, storagefile.NewLibraryStore(layout)),
		WatchExtensions: cfg.GetStringSlice(keyWatchExtensions),
	}, nil
}
