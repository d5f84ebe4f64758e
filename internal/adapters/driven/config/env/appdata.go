// Package env resolves the Camera Hub base directory from process state.
package env

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// AppDataVar names the per-user application data root on Windows.
const AppDataVar = "APPDATA"

// Source identifies where a base directory came from.
type Source string

// Base directory sources, highest precedence first.
const (
	SourceFlag   Source = "flag"
	SourceConfig Source = "config"
	SourceEnv    Source = "environment"
	SourceNone   Source = "none"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv reads KEY=value pairs from the given files (".env" if none)
// into the process environment. Variables already set are not overridden
// and missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ResolveBaseDir picks the base directory: override, then configured, then
// $APPDATA. When nothing is set the result is empty, which makes Camera Hub
// paths relative rather than failing.
func ResolveBaseDir(override, configured string, lookup LookupFunc) (string, Source) {
	if override != "" {
		return override, SourceFlag
	}
	if configured != "" {
		return configured, SourceConfig
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(AppDataVar); ok && v != "" {
		return v, SourceEnv
	}
	return "", SourceNone
}
