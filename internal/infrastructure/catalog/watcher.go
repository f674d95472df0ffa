package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settleDelay lets editors finish writing before the file is re-read.
const settleDelay = 200 * time.Millisecond

// Watcher reloads a file-backed catalog whenever the file changes.
type Watcher struct {
	catalog *Catalog
	path    string
	watcher *fsnotify.Watcher
	logger  *zap.Logger
}

// NewWatcher watches the directory holding path, so replacing the file by
// rename is picked up too.
func NewWatcher(catalog *Catalog, path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &Watcher{
		catalog: catalog,
		path:    abs,
		watcher: w,
		logger:  logger,
	}, nil
}

// Start blocks, reloading the catalog on changes, until ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	w.logger.Info("👀 Watching template catalog", zap.String("path", w.path))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			time.Sleep(settleDelay)
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("❌ Catalog watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	if err := w.catalog.ReloadFile(w.path); err != nil {
		w.logger.Warn("⚠️ Keeping previous template catalog", zap.Error(err))
		return
	}
	w.logger.Info("🔄 Template catalog reloaded",
		zap.String("path", w.path),
		zap.Int("templates", len(w.catalog.List())),
	)
}

// Stop closes the file watcher
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
