package catalog

//go:generate mockgen -source=watcher.go -destination=watcher_mock.go -package=catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"opsdash/internal/app/bus"
	"opsdash/internal/config"
	"opsdash/internal/config/logger"
)

// Watcher reloads the catalog when its files change and publishes the result on the bus
type Watcher interface {
	Start(ctx context.Context) error
	Close()
}

// watcher implements the Watcher interface
type watcher struct {
	cfg       *config.Config
	loader    Loader
	bus       bus.Bus
	log       logger.Logger
	fsWatcher *fsnotify.Watcher
	matcher   Matcher
	debouncer Debouncer
	root      string
	mu        sync.RWMutex
	started   bool
	closed    bool
}

// NewWatcher creates a Watcher; it does nothing until Start is called
func NewWatcher(cfg *config.Config, loader Loader, b bus.Bus, log logger.Logger) Watcher {
	return &watcher{
		cfg:    cfg,
		loader: loader,
		bus:    b,
		log:    log.WithComponent("CATALOG"),
	}
}

// Start begins watching the catalog directory tree; it is a no-op when watching is disabled
func (w *watcher) Start(ctx context.Context) error {
	if !w.cfg.Catalog.Watch || len(w.cfg.Catalog.Paths) == 0 {
		w.log.Debug().Msg("Catalog watching disabled")
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.started {
		return nil
	}

	m, err := NewMatcher(w.cfg.Catalog.Paths)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(w.loader.Root())
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	w.fsWatcher = fsw
	w.matcher = m
	w.root = root
	w.debouncer = NewDebouncer(w.cfg.Catalog.Debounce, w.reload)

	if err := w.addDirRecursive(root); err != nil {
		fsw.Close()
		return err
	}

	w.started = true

	go w.processEvents(ctx)

	w.log.Info().Msgf("Watching catalog files in %s", root)

	return nil
}

// Close stops the watcher and releases resources
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true

	if w.debouncer != nil {
		w.debouncer.Stop()
	}

	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}
}

// processEvents routes fsnotify events until ctx is done or the watcher is closed
func (w *watcher) processEvents(ctx context.Context) {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// handleEvent triggers a debounced reload for files accepted by the catalog globs
func (w *watcher) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return
	}

	if w.matcher.Match(rel) {
		w.debouncer.Trigger(filepath.ToSlash(rel))
	}

	if event.Has(fsnotify.Create) {
		w.handleCreate(event.Name)
	}
}

// handleCreate adds newly created directories to the watch list
func (w *watcher) handleCreate(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || shouldSkipDir(info.Name()) {
		return
	}

	if err := w.fsWatcher.Add(path); err != nil {
		w.log.Warn().Err(err).Msgf("Failed to watch new directory: %s", path)
	}
}

// reload loads the catalog again and publishes the outcome; a failed reload keeps the previous catalog
func (w *watcher) reload(changed []string) {
	w.mu.RLock()
	closed := w.closed
	w.mu.RUnlock()

	if closed {
		return
	}

	res, err := w.loader.Load(w.cfg.Catalog.Paths)
	if err != nil {
		w.log.Warn().Err(err).Strs("changed", changed).Msg("Catalog reload failed, keeping previous templates")
		w.bus.Publish(bus.Message{
			Type: bus.EventCatalogFailed,
			Data: bus.CatalogFailed{Files: changed, Error: err},
		})

		return
	}

	w.log.Info().Int("templates", len(res.Catalog)).Strs("files", res.Files).Msg("Catalog reloaded")
	w.bus.Publish(bus.Message{
		Type:     bus.EventCatalogReloaded,
		Data:     bus.CatalogReloaded{Catalog: res.Catalog, Files: res.Files},
		Critical: true,
	})
}

// addDirRecursive adds a directory and all subdirectories to the watch list
func (w *watcher) addDirRecursive(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != dir && shouldSkipDir(info.Name()) {
				return filepath.SkipDir
			}

			if err := w.fsWatcher.Add(path); err != nil {
				w.log.Warn().Err(err).Msgf("Failed to watch directory: %s", path)
			}
		}

		return nil
	})
}

// isRelevantEvent returns true if the event may change catalog contents
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
