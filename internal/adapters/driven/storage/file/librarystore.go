package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/custodia-labs/prompter/internal/core/domain"
	"github.com/custodia-labs/prompter/internal/core/ports/driven"
	"github.com/custodia-labs/prompter/internal/logger"
)

// Ensure LibraryStore implements the interface.
var _ driven.LibraryStore = (*LibraryStore)(nil)

var emptySettings = []byte("{}")

// prettyOptions re-indent settings without sorting keys. Width 0 keeps every
// array element on its own line.
var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   jsonIndent,
	SortKeys: false,
}

// LibraryStore edits the library list inside AppSettings.json in place.
// Keys other than the library list keep their values and position.
type LibraryStore struct {
	path    string
	keyPath string
}

// NewLibraryStore creates a library store for the given layout.
func NewLibraryStore(layout domain.Layout) *LibraryStore {
	return &LibraryStore{
		path:    layout.SettingsPath(),
		keyPath: escapeKey(domain.LibraryListKey),
	}
}

// Register appends id to the library list unless already present and writes
// the whole settings object back. The settings directory must already exist.
func (s *LibraryStore) Register(id string) (string, error) {
	settings, err := s.load()
	if err != nil {
		return "", err
	}

	list := gjson.GetBytes(settings, s.keyPath)
	if !list.IsArray() {
		if list.Exists() {
			logger.Warn("%s is %s, not a list; resetting", domain.LibraryListKey, list.Type)
		}
		settings, err = sjson.SetRawBytes(settings, s.keyPath, []byte("[]"))
		if err != nil {
			return "", fmt.Errorf("reset library list: %w", err)
		}
		list = gjson.Result{}
	}

	if !listContains(list, id) {
		value, err := encodeJSON(id)
		if err != nil {
			return "", fmt.Errorf("encode id: %w", err)
		}
		settings, err = sjson.SetRawBytes(settings, s.keyPath+".-1", value)
		if err != nil {
			return "", fmt.Errorf("append to library list: %w", err)
		}
	} else {
		logger.Debug("%s already registered", id)
	}

	out := strings.TrimRight(string(pretty.PrettyOptions(settings, prettyOptions)), "\n")
	if err := os.WriteFile(s.path, []byte(out), 0644); err != nil {
		return "", fmt.Errorf("write settings: %w", err)
	}

	return s.path, nil
}

// List returns the string entries of the library list in stored order.
func (s *LibraryStore) List() ([]string, error) {
	settings, err := s.load()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0)
	list := gjson.GetBytes(settings, s.keyPath)
	if !list.IsArray() {
		return ids, nil
	}
	list.ForEach(func(_, value gjson.Result) bool {
		if value.Type == gjson.String {
			ids = append(ids, value.Str)
		}
		return true
	})
	return ids, nil
}

// Path returns the settings file location.
func (s *LibraryStore) Path() string {
	return s.path
}

// load returns the settings object. A missing file or malformed JSON yields
// an empty object, and whatever was there is overwritten on the next
// Register. Well-formed JSON whose top level is not an object is an error so
// that the file is left alone.
func (s *LibraryStore) load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return emptySettings, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	// gjson rejects NaN and Infinity, so files containing them count as
	// malformed and are replaced.
	if !gjson.ValidBytes(data) {
		logger.Warn("settings at %s are not valid JSON; starting from an empty store", s.path)
		return emptySettings, nil
	}
	if top := gjson.ParseBytes(data); !top.IsObject() {
		return nil, fmt.Errorf("%w: %s top level is %s, not an object",
			domain.ErrInvalidSettings, s.path, describeKind(top))
	}
	return data, nil
}

func describeKind(v gjson.Result) string {
	switch {
	case v.IsArray():
		return "an array"
	case v.Type == gjson.String:
		return "a string"
	case v.Type == gjson.Number:
		return "a number"
	case v.Type == gjson.True, v.Type == gjson.False:
		return "a boolean"
	default:
		return "null"
	}
}

func listContains(list gjson.Result, id string) bool {
	found := false
	list.ForEach(func(_, value gjson.Result) bool {
		if value.Type == gjson.String && value.Str == id {
			found = true
			return false
		}
		return true
	})
	return found
}

// escapeKey turns a literal object key into a gjson/sjson path component.
func escapeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
