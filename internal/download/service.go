package download

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/ytget/bitfiles/internal/logging"
)

var _ Manager = (*Service)(nil)

type entry struct {
	download     *Download
	manifestPath string
	watcher      *Watcher
}

// Service keeps the downloads opened by the app
type Service struct {
	downloads map[string]*entry
	mu        sync.RWMutex
	onUpdate  func(*Download) // callback for UI updates
	watch     bool
	logger    *logging.Logger
}

// NewService creates a download registry. With watch enabled every opened
// download gets a filesystem watcher.
func NewService(watch bool, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		downloads: make(map[string]*entry),
		watch:     watch,
		logger:    logger,
	}
}

// SetUpdateCallback sets the callback function for download updates
func (s *Service) SetUpdateCallback(callback func(*Download)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Open loads a manifest. Opening the same manifest twice returns the existing download.
func (s *Service) Open(manifestPath string) (*Download, error) {
	absPath, err := filepath.Abs(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	s.mu.RLock()
	for _, e := range s.downloads {
		if e.manifestPath == absPath {
			s.mu.RUnlock()
			return e.download, nil
		}
	}
	s.mu.RUnlock()

	d, err := LoadManifest(absPath, s.logger)
	if err != nil {
		return nil, err
	}
	d.SetChangeCallback(s.notifyUpdate)

	e := &entry{download: d, manifestPath: absPath}
	if s.watch {
		w, err := Watch(d, s.logger)
		if err != nil {
			s.logger.Warn().Err(err).Str("download", d.Name()).Msg("watcher not started")
		} else {
			e.watcher = w
		}
	}

	s.mu.Lock()
	s.downloads[d.ID()] = e
	s.mu.Unlock()

	s.logger.Info().Str("download", d.Name()).Int("files", len(d.Files())).Msg("download opened")
	s.notifyUpdate(d)
	return d, nil
}

// Get returns a download by ID
func (s *Service) Get(id string) (*Download, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.downloads[id]
	if !ok {
		return nil, false
	}
	return e.download, true
}

// All returns the opened downloads ordered by ID
func (s *Service) All() []*Download {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Download, 0, len(s.downloads))
	for _, e := range s.downloads {
		out = append(out, e.download)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Pause pauses an active download
func (s *Service) Pause(id string) error {
	d, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("download not found: %s", id)
	}
	if !d.Pause() {
		return fmt.Errorf("download is not active: %s", d.State())
	}
	return nil
}

// Resume resumes a paused download
func (s *Service) Resume(id string) error {
	d, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("download not found: %s", id)
	}
	if !d.State().IsPaused() {
		return fmt.Errorf("download is not paused: %s", d.State())
	}
	d.Resume()
	return nil
}

// Save writes the download back to its manifest
func (s *Service) Save(id string) error {
	s.mu.RLock()
	e, ok := s.downloads[id]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("download not found: %s", id)
	}
	return e.download.SaveManifest(e.manifestPath)
}

// Close stops every watcher
func (s *Service) Close() {
	s.mu.Lock()
	var watchers []*Watcher
	for _, e := range s.downloads {
		if e.watcher != nil {
			watchers = append(watchers, e.watcher)
			e.watcher = nil
		}
	}
	s.mu.Unlock()

	// Watchers call back into the service, so they are closed without holding the lock
	for _, w := range watchers {
		if err := w.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to close watcher")
		}
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(d *Download) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()
	if callback != nil {
		callback(d)
	}
}
