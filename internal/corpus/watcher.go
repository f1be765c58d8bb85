package corpus

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the data directory into a Library whenever one of the
// corpus JSON files changes, so fixture edits and dataset refreshes take
// effect without a restart.
type Watcher struct {
	lib         *Library
	dir         string
	threshold   float64
	logger      *zap.Logger
	debounceDur time.Duration
}

// NewWatcher creates a watcher over dir that publishes reloaded snapshots
// into lib.
func NewWatcher(lib *Library, dir string, threshold float64, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		lib:         lib,
		dir:         dir,
		threshold:   threshold,
		logger:      logger,
		debounceDur: 500 * time.Millisecond, // coalesce rapid editor saves
	}
}

// Run watches until ctx is cancelled. It is blocking; callers run it in a
// goroutine. A watcher setup failure is returned immediately, event handling
// errors are only logged.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return err
	}
	w.logger.Info("watching data directory", zap.String("dir", w.dir))

	var reloadAt time.Time
	timer := time.NewTimer(time.Hour)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isCorpusFile(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			reloadAt = time.Now().Add(w.debounceDur)
			timer.Reset(w.debounceDur)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-timer.C:
			if time.Now().Before(reloadAt) {
				timer.Reset(time.Until(reloadAt))
				continue
			}
			w.logger.Info("data directory changed, reloading corpora")
			w.lib.Replace(Load(w.dir, w.threshold, w.logger))
		}
	}
}

func isCorpusFile(path string) bool {
	name := filepath.Base(path)
	switch name {
	case DestinationsFile, FoodsFile, ToursFile, PoliciesFile, TipsFile:
		return true
	}
	return strings.HasSuffix(name, ".json")
}
