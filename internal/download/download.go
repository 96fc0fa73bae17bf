package download

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/bitfiles/internal/logging"
	"github.com/ytget/bitfiles/internal/model"
)

const DownloadIDPrefix = "download-"

// FileSpec describes one file when building a download
type FileSpec struct {
	Path    string // slash-separated, relative to the download root
	Length  int64
	Skipped bool
	Link    string // optional absolute path overriding Root/Path
}

// Download owns a set of files and the transfer lifecycle around them
type Download struct {
	mu       sync.RWMutex
	id       string
	name     string
	root     string
	state    model.DownloadState
	files    []*File
	byPath   map[string]*File
	tree     *Node
	onChange func(*Download)
	logger   *logging.Logger
}

// New creates a download rooted at root. File paths are cleaned and sorted.
func New(name, root string, specs []FileSpec, logger *logging.Logger) (*Download, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	d := &Download{
		id:     generateDownloadID(),
		name:   name,
		root:   root,
		state:  model.DownloadStateStopped,
		byPath: make(map[string]*File, len(specs)),
		logger: logger.Component("download"),
	}

	for _, spec := range specs {
		rel, err := cleanRelPath(spec.Path)
		if err != nil {
			return nil, err
		}
		if _, dup := d.byPath[rel]; dup {
			return nil, fmt.Errorf("duplicate file path in download: %s", rel)
		}
		if spec.Length < 0 {
			return nil, fmt.Errorf("negative length for %s", rel)
		}
		f := &File{
			dl:      d,
			relPath: rel,
			link:    spec.Link,
			length:  spec.Length,
			skipped: spec.Skipped,
			depth:   strings.Count(rel, "/"),
		}
		d.files = append(d.files, f)
		d.byPath[rel] = f
	}
	sort.Slice(d.files, func(i, j int) bool { return d.files[i].relPath < d.files[j].relPath })
	d.tree = buildTree(d)
	return d, nil
}

func cleanRelPath(p string) (string, error) {
	p = strings.ReplaceAll(p, "\\", "/")
	cleaned := path.Clean(p)
	if p == "" || cleaned == "." || strings.HasPrefix(cleaned, "../") || cleaned == ".." || path.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid file path in download: %q", p)
	}
	return cleaned, nil
}

// ID returns the download identifier
func (d *Download) ID() string { return d.id }

// Name returns the display name of the download
func (d *Download) Name() string { return d.name }

// Root returns the directory the files are stored under
func (d *Download) Root() string { return d.root }

// SetChangeCallback sets the function called after any state or file change
func (d *Download) SetChangeCallback(callback func(*Download)) {
	d.mu.Lock()
	d.onChange = callback
	d.mu.Unlock()
}

// State returns the current lifecycle state
func (d *Download) State() model.DownloadState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// SetState forces a lifecycle state, used when loading and by the CLI
func (d *Download) SetState(state model.DownloadState) {
	d.mu.Lock()
	d.state = state
	d.mu.Unlock()
	d.notifyChange()
}

// Pause pauses an active download and reports whether this call paused it
func (d *Download) Pause() bool {
	d.mu.Lock()
	if !d.state.IsActive() {
		d.mu.Unlock()
		return false
	}
	d.state = model.DownloadStatePaused
	d.mu.Unlock()

	d.logger.Info().Str("download", d.name).Msg("paused")
	d.notifyChange()
	return true
}

// Resume restarts a paused download. Other states are left alone.
func (d *Download) Resume() {
	d.mu.Lock()
	if !d.state.IsPaused() {
		d.mu.Unlock()
		return
	}
	d.state = model.DownloadStateDownloading
	if d.isCompleteLocked() {
		d.state = model.DownloadStateSeeding
	}
	d.mu.Unlock()

	d.logger.Info().Str("download", d.name).Msg("resumed")
	d.notifyChange()
}

// Files returns the files in path order
func (d *Download) Files() []*File {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*File, len(d.files))
	copy(out, d.files)
	return out
}

// File looks up a file by its relative path
func (d *Download) File(relPath string) (*File, bool) {
	rel, err := cleanRelPath(relPath)
	if err != nil {
		return nil, false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	f, ok := d.byPath[rel]
	return f, ok
}

// Tree returns the invisible root node whose children are the top-level entries
func (d *Download) Tree() *Node {
	return d.tree
}

// Length returns the total size of all files
func (d *Download) Length() int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var total int64
	for _, f := range d.files {
		total += f.length
	}
	return total
}

// Downloaded returns the total downloaded bytes of all files
func (d *Download) Downloaded() int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var total int64
	for _, f := range d.files {
		total += f.downloaded
	}
	return total
}

func (d *Download) isCompleteLocked() bool {
	for _, f := range d.files {
		if !f.skipped && f.downloaded < f.length {
			return false
		}
	}
	return true
}

// Refresh re-reads downloaded byte counts of every file from disk
func (d *Download) Refresh() {
	changed := false
	for _, f := range d.Files() {
		if f.refresh() {
			changed = true
		}
	}
	if changed {
		d.notifyChange()
	}
}

// RefreshPath re-reads the file stored at the given absolute path.
// It reports whether a file of this download matched.
func (d *Download) RefreshPath(absPath string) bool {
	absPath = filepath.Clean(absPath)
	for _, f := range d.Files() {
		if filepath.Clean(f.Path()) == absPath {
			if f.refresh() {
				d.notifyChange()
			}
			return true
		}
	}
	return false
}

func (d *Download) notifyChange() {
	d.mu.RLock()
	callback := d.onChange
	d.mu.RUnlock()
	if callback != nil {
		callback(d)
	}
}

// File is a single file of a download
type File struct {
	dl         *Download
	relPath    string
	link       string
	length     int64
	downloaded int64
	skipped    bool
	depth      int
}

// RelPath returns the slash-separated path inside the download
func (f *File) RelPath() string { return f.relPath }

// Name returns the base name of the current on-disk location
func (f *File) Name() string {
	return filepath.Base(f.Path())
}

// Path returns the current on-disk location of the file data
func (f *File) Path() string {
	f.dl.mu.RLock()
	link := f.link
	f.dl.mu.RUnlock()
	if link != "" {
		return link
	}
	return f.defaultPath()
}

func (f *File) defaultPath() string {
	return filepath.Join(f.dl.root, filepath.FromSlash(f.relPath))
}

// Link returns the retarget path, empty when the file lives at its default location
func (f *File) Link() string {
	f.dl.mu.RLock()
	defer f.dl.mu.RUnlock()
	return f.link
}

func (f *File) Length() int64 { return f.length }

func (f *File) Downloaded() int64 {
	f.dl.mu.RLock()
	defer f.dl.mu.RUnlock()
	return f.downloaded
}

func (f *File) IsSkipped() bool {
	f.dl.mu.RLock()
	defer f.dl.mu.RUnlock()
	return f.skipped
}

func (f *File) SetSkipped(skipped bool) {
	f.dl.mu.Lock()
	if f.skipped == skipped {
		f.dl.mu.Unlock()
		return
	}
	f.skipped = skipped
	f.dl.mu.Unlock()
	f.dl.notifyChange()
}

// SetLink moves the file data to target and records it as the new location.
// Missing data (nothing downloaded yet) only updates the link.
func (f *File) SetLink(target string) bool {
	current := f.Path()
	if filepath.Clean(target) == filepath.Clean(current) {
		return true
	}

	if _, err := os.Lstat(current); err == nil {
		if err := moveFile(current, target); err != nil {
			f.dl.logger.Error().Err(err).Str("from", current).Str("to", target).Msg("failed to move file data")
			return false
		}
	}

	f.dl.mu.Lock()
	if filepath.Clean(target) == filepath.Clean(f.defaultPath()) {
		f.link = ""
	} else {
		f.link = target
	}
	f.dl.mu.Unlock()

	f.dl.logger.Info().Str("from", current).Str("to", target).Msg("file retargeted")
	f.dl.notifyChange()
	return true
}

// Download returns the owning download
func (f *File) Download() model.Lifecycle { return f.dl }

// Owner returns the owning download with its concrete type
func (f *File) Owner() *Download { return f.dl }

func (f *File) Depth() int                 { return f.depth }
func (f *File) IsLeaf() bool               { return true }
func (f *File) ChildCount() int            { return 0 }
func (f *File) SkipState() model.SkipState { return skipStateOf(f.IsSkipped()) }

func skipStateOf(skipped bool) model.SkipState {
	if skipped {
		return model.SkipAll
	}
	return model.SkipNone
}

// refresh stats the file and updates downloaded bytes, clamped to length
func (f *File) refresh() bool {
	var size int64
	if info, err := os.Stat(f.Path()); err == nil && info.Mode().IsRegular() {
		size = info.Size()
	}
	if size > f.length {
		size = f.length
	}

	f.dl.mu.Lock()
	defer f.dl.mu.Unlock()
	if f.downloaded == size {
		return false
	}
	f.downloaded = size
	return true
}

// setDownloaded is used by tests and the manifest loader
func (f *File) setDownloaded(n int64) {
	if n < 0 {
		n = 0
	}
	if n > f.length {
		n = f.length
	}
	f.dl.mu.Lock()
	f.downloaded = n
	f.dl.mu.Unlock()
}

// generateDownloadID generates a time-ordered unique ID using UUID v7
func generateDownloadID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(DownloadIDPrefix+"%d", time.Now().UnixNano())
	}
	return DownloadIDPrefix + id.String()
}
