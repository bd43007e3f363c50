package vault

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces editor save bursts into one change signal.
const DefaultDebounce = 500 * time.Millisecond

// Watcher signals when markdown files in the vault change on disk, so
// long-running commands can re-read state written by editors or the
// tutoring agent.
type Watcher struct {
	fsw      *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	events chan struct{}
	stop   chan struct{}
	wg     sync.WaitGroup

	mu    sync.Mutex
	timer *time.Timer
}

// Watch starts watching the vault's markdown files. A debounce of zero uses
// DefaultDebounce. Close releases the watcher.
func (v *Vault) Watch(logger *slog.Logger, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start vault watcher: %w", err)
	}
	for _, dir := range []string{v.dir, v.TutorialsDir(), v.ProfileDir()} {
		if err := fsw.Add(dir); err != nil {
			logger.Warn("watch directory", "dir", dir, "error", err)
		}
	}

	w := &Watcher{
		fsw:      fsw,
		logger:   logger,
		debounce: debounce,
		events:   make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Events yields one signal per debounced burst of markdown changes.
func (w *Watcher) Events() <-chan struct{} { return w.events }

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() {
	close(w.stop)
	w.fsw.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".md") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.bump()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("vault watcher", "error", err)
		}
	}
}

// bump restarts the debounce timer; when it fires, one signal is delivered.
func (w *Watcher) bump() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.events <- struct{}{}:
		default:
		}
	})
}
