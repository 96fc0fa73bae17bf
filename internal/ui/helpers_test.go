package ui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/bitfiles/internal/config"
	"github.com/ytget/bitfiles/internal/download"
	"github.com/ytget/bitfiles/internal/namecell"
)

const testManifest = `name: show
files:
  - path: season1/ep1.mkv
    length: 100
  - path: season1/ep2.mkv
    length: 100
    skipped: true
  - path: readme.txt
    length: 4
`

func writeTestManifest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "show.yaml")
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("done"), 0o644); err != nil {
		t.Fatalf("Failed to write data: %v", err)
	}
	return path
}

func loadTestDownload(t *testing.T) *download.Download {
	t.Helper()
	d, err := download.LoadManifest(writeTestManifest(t), nil)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	return d
}

func newTestColumn(t *testing.T, app fyne.App) (*NameColumn, *config.Settings) {
	t.Helper()
	settings := config.NewSettings(app)
	settings.SetUseTree(true)
	observer := config.NewObserver(settings)
	t.Cleanup(observer.Close)
	return &NameColumn{
		Renderer:     namecell.NewRenderer(&namecell.ColumnWidth{}, nil),
		Handler:      namecell.NewHandler(),
		Observer:     observer,
		Localization: NewLocalization(),
	}, settings
}

func newTestApp(t *testing.T) fyne.App {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	return app
}
