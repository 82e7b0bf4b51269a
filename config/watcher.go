package config

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/chronoid/chronoid/errors"
	"github.com/chronoid/chronoid/logger"
)

// ReloadCallback is called after the watched catalog file changes,
// once the change has settled. Returning an error is logged but does
// not stop the watcher.
type ReloadCallback func(path string) error

// CatalogWatcher watches a catalog file and triggers reload callbacks
// when it changes. Rapid successive writes are debounced so a reload
// sees the fully written file.
type CatalogWatcher struct {
	path           string
	watcher        *fsnotify.Watcher
	callbacks      []ReloadCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// NewCatalogWatcher creates a watcher for the given catalog file.
func NewCatalogWatcher(path string) (*CatalogWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch catalog file %s", path)
	}

	return &CatalogWatcher{
		path:           path,
		watcher:        watcher,
		debouncePeriod: 500 * time.Millisecond,
	}, nil
}

// OnReload registers a callback to run after each settled change.
func (cw *CatalogWatcher) OnReload(callback ReloadCallback) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.callbacks = append(cw.callbacks, callback)
}

// Start begins watching in a background goroutine.
func (cw *CatalogWatcher) Start() {
	go cw.watchLoop()
}

func (cw *CatalogWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Infow("catalog watcher detected change",
					logger.FieldCatalog, event.Name,
					"op", event.Op.String())
				cw.scheduleReload()
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("catalog watcher error",
				logger.FieldError, err)
		}
	}
}

func (cw *CatalogWatcher) scheduleReload() {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
	}
	cw.debounceTimer = time.AfterFunc(cw.debouncePeriod, cw.reload)
}

func (cw *CatalogWatcher) reload() {
	cw.mu.RLock()
	callbacks := make([]ReloadCallback, len(cw.callbacks))
	copy(callbacks, cw.callbacks)
	cw.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(cw.path); err != nil {
			logger.Errorw("catalog reload failed",
				logger.FieldCatalog, cw.path,
				logger.FieldError, err)
		}
	}
}

// Stop stops watching for catalog changes.
func (cw *CatalogWatcher) Stop() error {
	return cw.watcher.Close()
}
