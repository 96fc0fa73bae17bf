package download

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/ytget/bitfiles/internal/logging"
	"github.com/ytget/bitfiles/internal/model"
)

// Manifest is the on-disk description of a download
type Manifest struct {
	Name  string         `yaml:"name"`
	Root  string         `yaml:"root,omitempty"`
	State string         `yaml:"state,omitempty"`
	Files []ManifestFile `yaml:"files"`
}

// ManifestFile is one entry of Manifest.Files
type ManifestFile struct {
	Path    string `yaml:"path"`
	Length  int64  `yaml:"length"`
	Skipped bool   `yaml:"skipped,omitempty"`
	Link    string `yaml:"link,omitempty"`
}

// MaxManifestBytes bounds manifest reads
const MaxManifestBytes = 16 << 20

// LoadManifest reads a manifest and builds the download it describes.
// A relative root is resolved against the manifest's directory; an empty
// root means the manifest's directory itself. Downloaded bytes come from disk.
func LoadManifest(manifestPath string, logger *logging.Logger) (*Download, error) {
	info, err := os.Stat(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat manifest: %w", err)
	}
	if info.Size() > MaxManifestBytes {
		return nil, fmt.Errorf("manifest too large: %d bytes", info.Size())
	}

	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", manifestPath, err)
	}
	if len(m.Files) == 0 {
		return nil, errors.New("manifest lists no files")
	}

	base := filepath.Dir(manifestPath)
	root := m.Root
	switch {
	case root == "":
		root = base
	case !filepath.IsAbs(root):
		root = filepath.Join(base, root)
	}
	if m.Name == "" {
		m.Name = filepath.Base(root)
	}

	specs := make([]FileSpec, 0, len(m.Files))
	for _, mf := range m.Files {
		specs = append(specs, FileSpec{Path: mf.Path, Length: mf.Length, Skipped: mf.Skipped, Link: mf.Link})
	}

	d, err := New(m.Name, root, specs, logger)
	if err != nil {
		return nil, err
	}
	d.state = model.ParseDownloadState(m.State)
	d.Refresh()
	return d, nil
}

// ToManifest captures the current file table. Root is stored as given.
func (d *Download) ToManifest() Manifest {
	d.mu.RLock()
	defer d.mu.RUnlock()

	m := Manifest{
		Name:  d.name,
		Root:  d.root,
		State: d.state.String(),
		Files: make([]ManifestFile, 0, len(d.files)),
	}
	for _, f := range d.files {
		m.Files = append(m.Files, ManifestFile{
			Path:    f.relPath,
			Length:  f.length,
			Skipped: f.skipped,
			Link:    f.link,
		})
	}
	return m
}

// SaveManifest writes the manifest atomically (temp file then rename)
func (d *Download) SaveManifest(manifestPath string) error {
	raw, err := yaml.Marshal(d.ToManifest())
	if err != nil {
		return fmt.Errorf("save manifest: marshal: %w", err)
	}

	dir := filepath.Dir(manifestPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save manifest: mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".manifest.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("save manifest: create temp: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("save manifest: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("save manifest: close: %w", err)
	}
	if err := os.Rename(tmpPath, manifestPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("save manifest: rename: %w", err)
	}

	d.logger.Debug().Str("path", manifestPath).Msg("manifest saved")
	return nil
}
