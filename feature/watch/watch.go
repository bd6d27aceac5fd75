package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Config holds configuration for the watch command.
type Config struct {
	// DebounceMS is how long events are coalesced before a run.
	DebounceMS int `mapstructure:"debounce_ms" default:"300"`
	// QuietMS is how long events are ignored after a run.
	QuietMS int `mapstructure:"quiet_ms" default:"500"`
}

// Watcher runs Check on changes under Dir.
type Watcher struct {
	// Dir is the watched directory (non-recursive).
	Dir string
	// Ext is the extension of relevant files, without the dot.
	Ext string
	// Debounce coalesces bursts of events into one run.
	Debounce time.Duration
	// Quiet drops events for this long after every run.
	Quiet time.Duration
	// Check is invoked once at start and after every relevant change.
	Check  func() error
	Logger *zap.Logger
}

// New creates a watcher from cfg.
func New(cfg Config, dir, ext string, check func() error, logger *zap.Logger) *Watcher {
	return &Watcher{
		Dir:      dir,
		Ext:      ext,
		Debounce: time.Duration(cfg.DebounceMS) * time.Millisecond,
		Quiet:    time.Duration(cfg.QuietMS) * time.Millisecond,
		Check:    check,
		Logger:   logger,
	}
}

// Run watches until ctx is done. Check errors are logged, not returned.
func (w *Watcher) Run(ctx context.Context) error {
	log := w.Logger
	if log == nil {
		log = zap.NewNop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.Dir); err != nil {
		return fmt.Errorf("watch: %s: %w", w.Dir, err)
	}
	log.Info("Watching locales", zap.String("path", w.Dir), zap.String("ext", w.Ext))

	w.run(log)
	quietUntil := time.Now().Add(w.Quiet)

	// nil until an event arms the debounce
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if time.Now().Before(quietUntil) {
				log.Debug("Ignoring event in quiet period", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
				continue
			}
			log.Debug("Locale file changed", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
			fire = time.After(w.Debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			w.run(log)
			quietUntil = time.Now().Add(w.Quiet)
		}
	}
}

func (w *Watcher) run(log *zap.Logger) {
	start := time.Now()
	if err := w.Check(); err != nil {
		log.Error("Locale check failed", zap.Error(err))
		return
	}
	log.Info("Locale check passed", zap.Duration("took", time.Since(start)))
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return strings.TrimPrefix(filepath.Ext(ev.Name), ".") == w.Ext
}
