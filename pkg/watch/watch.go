// Package watch reports debounced batches of file changes under a set of
// directories. It backs development mode's template reload.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/JaimeStill/phpstan-ui/pkg/lifecycle"
)

// Config describes what to watch and how to report it.
type Config struct {
	// Root is the directory that Dirs and reported paths are relative to.
	Root string
	// Dirs are watched recursively. Missing directories are skipped.
	Dirs []string
	// Match filters changed paths, relative to Root with forward slashes.
	// A nil Match accepts every path.
	Match func(rel string) bool
	// Debounce is the quiet period before a batch is reported.
	Debounce time.Duration
	// OnChange receives each batch of changed paths, sorted.
	OnChange func(changed []string)
}

// Watcher delivers debounced change batches from fsnotify.
type Watcher struct {
	cfg    Config
	fsw    *fsnotify.Watcher
	logger *slog.Logger
	done   chan struct{}

	mu      sync.Mutex
	watched []string
}

// New creates a Watcher. Directories are registered by Watch.
func New(cfg Config, logger *slog.Logger) (*Watcher, error) {
	if cfg.OnChange == nil {
		return nil, fmt.Errorf("watch: OnChange required")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 100 * time.Millisecond
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	return &Watcher{
		cfg:    cfg,
		fsw:    fsw,
		logger: logger,
		done:   make(chan struct{}),
	}, nil
}

// Watch walks every directory under cfg.Dirs and registers it with the
// underlying watcher. Missing directories are skipped.
func (w *Watcher) Watch() error {
	for _, dir := range w.cfg.Dirs {
		abs := filepath.Join(w.cfg.Root, filepath.FromSlash(dir))
		if _, err := os.Stat(abs); err != nil {
			w.logger.Warn("watch directory unavailable", "dir", dir, "error", err)
			continue
		}
		if err := w.addTree(abs); err != nil {
			return err
		}
	}
	return nil
}

// Watched returns the absolute directories currently registered.
func (w *Watcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.watched)
}

// Start runs the watcher until the lifecycle context is cancelled. The
// directory walk runs as a startup hook, so the coordinator is not ready
// until every directory is registered.
func (w *Watcher) Start(lc *lifecycle.Coordinator) error {
	go w.Run(lc.Context())

	lc.OnStartup(func() {
		if err := w.Watch(); err != nil {
			w.logger.Error("watch directories failed", "error", err)
			return
		}
		w.logger.Info("watching directories", "count", len(w.Watched()))
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		<-w.done
		w.logger.Info("watcher stopped")
	})

	return nil
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.done)
	defer w.fsw.Close()

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = make(map[string]bool)
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.handle(ev, pending) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.cfg.Debounce)
			} else {
				timer.Reset(w.cfg.Debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "error", err)

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			clear(pending)
			slices.Sort(changed)
			w.cfg.OnChange(changed)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event, pending map[string]bool) bool {
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(ev.Name); err != nil {
				w.logger.Warn("watch new directory failed", "dir", ev.Name, "error", err)
			}
			return false
		}
	}

	if ev.Op == fsnotify.Chmod {
		return false
	}

	rel, err := filepath.Rel(w.cfg.Root, ev.Name)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	if w.cfg.Match != nil && !w.cfg.Match(rel) {
		return false
	}

	pending[rel] = true
	return true
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		w.mu.Lock()
		w.watched = append(w.watched, p)
		w.mu.Unlock()
		return nil
	})
}
