// Package watch re-checks a directory tree as its files change,
// emitting a fresh report for every settled batch of edits.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pabigot/camelint/report"
	"github.com/pabigot/camelint/runner"
)

// watchedExtensions are the source extensions that trigger a re-check.
var watchedExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".mjs": true,
	".cjs": true,
}

// Config configures the file watcher.
type Config struct {
	// Root is the directory tree to watch
	Root string

	// Debounce is how long to wait for more changes before re-checking
	Debounce time.Duration

	// Logger for watch progress
	Logger *slog.Logger
}

// Watcher re-runs the checker over changed files and emits one report
// per settled batch of edits.
type Watcher struct {
	config  Config
	runner  *runner.Runner
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// Debouncing: collect changed paths before re-checking
	pendingMu sync.Mutex
	pending   map[string]struct{}

	// Content digests to skip event storms that change nothing
	digestMu sync.Mutex
	digests  map[string]uint64

	reports chan *report.Report
}

// NewWatcher creates a watcher that re-checks changed files with the
// given runner.
func NewWatcher(config Config, checkRunner *runner.Runner) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.Debounce == 0 {
		config.Debounce = 200 * time.Millisecond
	}

	return &Watcher{
		config:  config,
		runner:  checkRunner,
		watcher: fsw,
		logger:  logger,
		pending: make(map[string]struct{}),
		digests: make(map[string]uint64),
		reports: make(chan *report.Report, 16),
	}, nil
}

// Reports returns the channel of per-batch check reports.
func (w *Watcher) Reports() <-chan *report.Report {
	return w.reports
}

// Start begins watching the root for changes.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addWatchesRecursive(w.config.Root); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("watch started",
		"root", w.config.Root,
		"debounce", w.config.Debounce)
	return nil
}

// Stop stops the watcher. Closing the fsnotify watcher ends the event
// loop, which closes the report channel on its way out.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// addWatchesRecursive adds watches to all directories under root,
// skipping dependency and hidden trees.
func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && skipDirectory(filepath.Base(path)) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
		} else {
			w.logger.Debug("watching directory", "path", path)
		}
		return nil
	})
}

func skipDirectory(base string) bool {
	return base == "node_modules" || strings.HasPrefix(base, ".")
}

// processEvents handles fsnotify events with debouncing. The loop is
// the only sender on the report channel and closes it on exit.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.reports)

	ticker := time.NewTicker(w.config.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "error", err)

		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

// handleEvent records a single fsnotify event for the next flush.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if !watchedExtensions[filepath.Ext(path)] {
		// Watch newly created directories so nested edits are seen
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() && !skipDirectory(filepath.Base(path)) {
				if err := w.watcher.Add(path); err != nil {
					w.logger.Warn("failed to watch new directory", "path", path, "error", err)
				}
			}
		}
		return
	}
	if strings.Contains(path, "node_modules"+string(filepath.Separator)) {
		return
	}

	w.pendingMu.Lock()
	w.pending[path] = struct{}{}
	w.pendingMu.Unlock()

	w.logger.Debug("file change detected", "path", path, "op", event.Op.String())
}

// flush re-checks the accumulated changes whose content actually
// differs and emits the batch report.
func (w *Watcher) flush(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := w.pending
	w.pending = make(map[string]struct{})
	w.pendingMu.Unlock()

	var changed []string
	for path := range toProcess {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				w.forget(path)
				continue
			}
			w.logger.Warn("failed to read changed file", "path", path, "error", err)
			continue
		}
		if !w.changed(path, Digest(data)) {
			continue
		}
		changed = append(changed, path)
	}
	if len(changed) == 0 {
		return
	}

	result, err := w.runner.CheckPaths(ctx, changed...)
	if err != nil {
		w.logger.Error("failed to re-check changed files", "error", err)
		return
	}
	w.send(result)
}

// changed records the digest and reports whether it differs from the
// previous one.
func (w *Watcher) changed(path string, digest uint64) bool {
	w.digestMu.Lock()
	defer w.digestMu.Unlock()
	previous, ok := w.digests[path]
	if ok && previous == digest {
		return false
	}
	w.digests[path] = digest
	return true
}

func (w *Watcher) forget(path string) {
	w.digestMu.Lock()
	defer w.digestMu.Unlock()
	delete(w.digests, path)
}

// send emits a report without blocking the event loop.
func (w *Watcher) send(result *report.Report) {
	select {
	case w.reports <- result:
	default:
		w.logger.Warn("report channel full, dropping batch")
	}
}
