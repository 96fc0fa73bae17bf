package download

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/ytget/bitfiles/internal/logging"
)

// Watcher keeps downloaded byte counts in sync with the files on disk
type Watcher struct {
	dl     *Download
	fsw    *fsnotify.Watcher
	logger *logging.Logger

	mu      sync.Mutex
	watched map[string]bool
	closed  bool
	wg      sync.WaitGroup
}

// Watch starts watching the directories that hold the download's files.
// Directories that do not exist yet are picked up when they are created
// below an already watched directory.
func Watch(d *Download, logger *logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		dl:      d,
		fsw:     fsw,
		logger:  logger.Component("watcher"),
		watched: make(map[string]bool),
	}

	if err := w.add(d.Root()); err != nil {
		fsw.Close()
		return nil, err
	}
	for _, dir := range w.fileDirs() {
		if err := w.add(dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
			w.logger.Warn().Err(err).Str("dir", dir).Msg("cannot watch directory")
		}
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) fileDirs() []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range w.dl.Files() {
		dir := filepath.Dir(f.Path())
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}
	return out
}

func (w *Watcher) add(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.watched[dir] {
		return nil
	}
	if err := w.fsw.Add(dir); err != nil {
		return err
	}
	w.watched[dir] = true
	return nil
}

// Watched returns the number of directories currently watched
func (w *Watcher) Watched() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.watched)
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.add(event.Name); err != nil {
				w.logger.Warn().Err(err).Str("dir", event.Name).Msg("cannot watch new directory")
			}
			// Files may have landed before the watch was added
			w.dl.Refresh()
			return
		}
	}
	if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		if w.dl.RefreshPath(event.Name) {
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("file changed")
		}
	}
}

// Close stops watching and waits for the event loop to exit
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
