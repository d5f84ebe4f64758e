package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/prompter/internal/logger"
)

// DefaultExtensions are imported when no extensions are configured.
var DefaultExtensions = []string{".txt"}

// DefaultSettleDelay is how long a file must be quiet before it is imported.
const DefaultSettleDelay = 500 * time.Millisecond

// Handler imports one file. Errors are logged and the watch continues.
type Handler func(ctx context.Context, path string) error

// Watcher imports each matching file that appears or changes in a directory.
// A path is handed to the handler at most once per Watcher. Handler calls
// are made from a single goroutine, one at a time.
type Watcher struct {
	dir     string
	exts    map[string]struct{}
	handler Handler
	delay   time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
	seen   map[string]struct{}
}

// NewWatcher creates a watcher for dir. Extensions are matched
// case-insensitively; an empty list means DefaultExtensions.
func NewWatcher(dir string, extensions []string, handler Handler) *Watcher {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[ext] = struct{}{}
	}

	return &Watcher{
		dir:     dir,
		exts:    exts,
		handler: handler,
		delay:   DefaultSettleDelay,
		timers:  make(map[string]*time.Timer),
		seen:    make(map[string]struct{}),
	}
}

// SetSettleDelay overrides DefaultSettleDelay.
func (w *Watcher) SetSettleDelay(d time.Duration) {
	w.delay = d
}

// Run watches until ctx is cancelled. Files already present are ignored.
func (w *Watcher) Run(ctx context.Context) error {
	info, err := os.Stat(w.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", w.dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	logger.Info("watching %s", w.dir)

	ready := make(chan string)
	defer w.stopTimers()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if path, ok := w.handleFsEvent(event); ok {
				w.schedule(ctx, path, ready)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case path := <-ready:
			w.dispatch(ctx, path)
		}
	}
}

// handleFsEvent returns the path to import for an event, if any.
// Only creates and writes of visible regular files with a watched
// extension qualify.
func (w *Watcher) handleFsEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}

	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return "", false
	}
	if _, ok := w.exts[strings.ToLower(filepath.Ext(name))]; !ok {
		return "", false
	}

	info, err := os.Stat(event.Name)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}

	return event.Name, true
}

// schedule (re)starts the settle timer for path.
func (w *Watcher) schedule(ctx context.Context, path string, ready chan<- string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, done := w.seen[path]; done {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.delay, func() {
		select {
		case ready <- path:
		case <-ctx.Done():
		}
	})
}

func (w *Watcher) dispatch(ctx context.Context, path string) {
	w.mu.Lock()
	delete(w.timers, path)
	if _, done := w.seen[path]; done {
		w.mu.Unlock()
		return
	}
	w.seen[path] = struct{}{}
	w.mu.Unlock()

	if err := w.handler(ctx, path); err != nil {
		logger.Warn("import %s: %v", path, err)
	}
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}
