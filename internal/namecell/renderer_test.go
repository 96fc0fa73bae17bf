package namecell

import (
	"errors"
	"testing"

	"github.com/ytget/bitfiles/internal/model"
)

func TestPaintTreeLeaf(t *testing.T) {
	s := newSurface()
	r := NewRenderer(nil, nil)
	row := &BasicRow{}
	entry := &fakeFile{name: "track01.flac", depth: 1, length: 100, downloaded: 10}

	r.Paint(s, entry, Rect{X: 100, Y: 20, W: 300, H: 20}, row, Options{TreeMode: true})

	if len(s.triangles) != 0 {
		t.Errorf("Expected no twisty for a leaf, got %d triangles", len(s.triangles))
	}
	if len(s.icons) != 1 {
		t.Fatalf("Expected one checkbox icon, got %d", len(s.icons))
	}
	if s.icons[0].key != IconCheckYes {
		t.Errorf("Expected %s, got %s", IconCheckYes, s.icons[0].key)
	}
	expectedIcon := Rect{X: 129, Y: 23, W: 16, H: 16}
	if s.icons[0].rect != expectedIcon {
		t.Errorf("Expected checkbox at %v, got %v", expectedIcon, s.icons[0].rect)
	}

	view := row.View()
	if view.ExpandHit != nil {
		t.Errorf("Expected no expand hit area, got %v", *view.ExpandHit)
	}
	if view.CheckHit == nil {
		t.Fatal("Expected a check hit area")
	}
	expectedHit := Rect{X: 29, Y: 3, W: 16, H: 16}
	if *view.CheckHit != expectedHit {
		t.Errorf("Expected check hit %v, got %v", expectedHit, *view.CheckHit)
	}

	text := s.lastText()
	expectedText := Rect{X: 149, Y: 20, W: 249, H: 20}
	if text.text != "track01.flac" || text.rect != expectedText {
		t.Errorf("Expected %q at %v, got %q at %v", "track01.flac", expectedText, text.text, text.rect)
	}
	if got := r.Column().Preferred(); got != 49+50+PreferredWidthSlack {
		t.Errorf("Expected preferred width %d, got %d", 49+50+PreferredWidthSlack, got)
	}
}

func TestPaintTreeDirectory(t *testing.T) {
	s := newSurface()
	r := NewRenderer(nil, nil)
	row := &BasicRow{IsExpanded: true, SubItems: 3}
	dir := &fakeDir{fakeFile: fakeFile{name: "disc1"}, state: model.SkipMixed, children: 3}

	r.Paint(s, dir, Rect{X: 100, Y: 20, W: 300, H: 20}, row, Options{TreeMode: true, ShowIcon: true})

	if len(s.triangles) != 1 {
		t.Fatalf("Expected one twisty, got %d", len(s.triangles))
	}
	expectedTriangle := [3]Point{{X: 106, Y: 27}, {X: 113, Y: 27}, {X: 109, Y: 34}}
	if s.triangles[0] != expectedTriangle {
		t.Errorf("Expected twisty %v, got %v", expectedTriangle, s.triangles[0])
	}

	view := row.View()
	if view.ExpandHit == nil {
		t.Fatal("Expected an expand hit area")
	}
	expectedExpand := Rect{X: 6, Y: 7, W: 7, H: 9}
	if *view.ExpandHit != expectedExpand {
		t.Errorf("Expected expand hit %v, got %v", expectedExpand, *view.ExpandHit)
	}
	expectedCheck := Rect{X: 15, Y: 3, W: 16, H: 16}
	if view.CheckHit == nil || *view.CheckHit != expectedCheck {
		t.Errorf("Expected check hit %v, got %v", expectedCheck, view.CheckHit)
	}
	if s.icons[0].key != IconCheckMaybe {
		t.Errorf("Expected %s for a mixed directory, got %s", IconCheckMaybe, s.icons[0].key)
	}

	if len(s.thumbCalls) != 0 {
		t.Errorf("Expected directories to skip thumbnails, got %d lookups", len(s.thumbCalls))
	}
	expectedText := Rect{X: 135, Y: 20, W: 265, H: 20}
	if got := s.lastText().rect; got != expectedText {
		t.Errorf("Expected text at %v, got %v", expectedText, got)
	}
}

func TestPaintCollapsedTwisty(t *testing.T) {
	s := newSurface()
	r := NewRenderer(nil, nil)
	row := &BasicRow{SubItems: 2}
	dir := &fakeDir{fakeFile: fakeFile{name: "extras"}, children: 2}

	r.Paint(s, dir, Rect{X: 0, Y: 0, W: 200, H: 20}, row, Options{TreeMode: true})

	expected := [3]Point{{X: 6, Y: 7}, {X: 13, Y: 11}, {X: 6, Y: 14}}
	if len(s.triangles) != 1 || s.triangles[0] != expected {
		t.Errorf("Expected collapsed twisty %v, got %v", expected, s.triangles)
	}
}

func TestPaintFlatModeHasNoTwisty(t *testing.T) {
	s := newSurface()
	r := NewRenderer(nil, nil)
	row := &BasicRow{SubItems: 4}
	dir := &fakeDir{fakeFile: fakeFile{name: "extras", depth: 2}, children: 4}

	r.Paint(s, dir, Rect{X: 0, Y: 0, W: 200, H: 20}, row, Options{})

	if len(s.triangles) != 0 {
		t.Errorf("Expected no twisty in flat mode, got %d", len(s.triangles))
	}
	if row.View().ExpandHit != nil {
		t.Errorf("Expected no expand hit in flat mode")
	}
	if got := s.icons[0].rect.X; got != CheckPadding {
		t.Errorf("Expected checkbox at x=%d without indentation, got %d", CheckPadding, got)
	}
}

func TestPaintReadOnlyHasNoCheckHit(t *testing.T) {
	s := newSurface()
	r := NewRenderer(nil, nil)
	row := &BasicRow{}
	entry := &fakeFile{name: "done.bin", length: 42, downloaded: 42}

	r.Paint(s, entry, Rect{W: 200, H: 20}, row, Options{})

	if s.icons[0].key != IconCheckROYes {
		t.Errorf("Expected %s, got %s", IconCheckROYes, s.icons[0].key)
	}
	if row.View().CheckHit != nil {
		t.Errorf("Expected no check hit area for a complete file")
	}
}

func TestPaintZeroLengthIsReadOnly(t *testing.T) {
	tests := []struct {
		name  string
		entry model.FileEntry
		tree  bool
	}{
		{"empty file", &fakeFile{name: "empty.txt"}, false},
		{"empty directory", &fakeDir{fakeFile: fakeFile{name: "empty"}, children: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSurface()
			row := &BasicRow{SubItems: 1}
			NewRenderer(nil, nil).Paint(s, tt.entry, Rect{W: 200, H: 20}, row, Options{TreeMode: tt.tree})

			if s.icons[0].key != IconCheckROYes {
				t.Errorf("Expected %s, got %s", IconCheckROYes, s.icons[0].key)
			}
			if row.View().CheckHit != nil {
				t.Errorf("Expected no check hit area for a zero-length entry")
			}
		})
	}
}

func TestPaintSkippedFile(t *testing.T) {
	s := newSurface()
	r := NewRenderer(nil, nil)
	row := &BasicRow{}

	r.Paint(s, &fakeFile{name: "sample.mkv", length: 10, skipped: true}, Rect{W: 200, H: 20}, row, Options{})

	if s.icons[0].key != IconCheckNo {
		t.Errorf("Expected %s, got %s", IconCheckNo, s.icons[0].key)
	}
	if row.View().CheckHit == nil {
		t.Errorf("Expected skipped files to stay clickable")
	}
}

func TestPaintWithThumbnail(t *testing.T) {
	s := newSurface()
	s.thumb = &fakeImage{size: Size{W: 16, H: 16}, valid: true}
	r := NewRenderer(nil, nil)
	row := &BasicRow{}

	r.Paint(s, &fakeFile{name: "cover.jpg", length: 5}, Rect{W: 400, H: 20}, row, Options{ShowIcon: true})

	if len(s.thumbCalls) != 1 || s.thumbCalls[0] {
		t.Errorf("Expected one small thumbnail lookup, got %v", s.thumbCalls)
	}
	expectedImage := Rect{X: 20, Y: 2, W: 16, H: 16}
	if len(s.images) != 1 || s.images[0] != expectedImage {
		t.Errorf("Expected image at %v, got %v", expectedImage, s.images)
	}
	expectedText := Rect{X: 39, Y: 0, W: 361, H: 20}
	if got := s.lastText().rect; got != expectedText {
		t.Errorf("Expected text at %v, got %v", expectedText, got)
	}
	if len(s.clips) != 2 {
		t.Fatalf("Expected clip set and restored, got %v", s.clips)
	}
	if s.clip != (Rect{X: -1, Y: -1, W: 9999, H: 9999}) {
		t.Errorf("Expected original clip restored, got %v", s.clip)
	}
}

func TestPaintBigRowsRequestLargeThumbnails(t *testing.T) {
	s := newSurface()
	s.thumb = &fakeImage{size: Size{W: 32, H: 32}, valid: true}
	r := NewRenderer(nil, nil)

	r.Paint(s, &fakeFile{name: "movie.mp4"}, Rect{W: 400, H: 40}, nil, Options{ShowIcon: true})

	if len(s.thumbCalls) != 1 || !s.thumbCalls[0] {
		t.Errorf("Expected one large thumbnail lookup, got %v", s.thumbCalls)
	}
}

func TestPaintThumbnailFallback(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *recordingSurface)
	}{
		{"lookup error", func(s *recordingSurface) { s.thumbErr = errors.New("no icon") }},
		{"no image", func(s *recordingSurface) { s.thumb = nil }},
		{"released image", func(s *recordingSurface) { s.thumb = &fakeImage{size: Size{W: 16, H: 16}} }},
		{"draw error", func(s *recordingSurface) {
			s.thumb = &fakeImage{size: Size{W: 16, H: 16}, valid: true}
			s.drawErr = errors.New("device lost")
		}},
		{"draw panic", func(s *recordingSurface) {
			s.thumb = &fakeImage{size: Size{W: 16, H: 16}, valid: true}
			s.drawPanic = true
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSurface()
			tt.setup(s)
			r := NewRenderer(nil, nil)
			original := s.clip

			r.Paint(s, &fakeFile{name: "a.txt"}, Rect{W: 200, H: 20}, nil, Options{ShowIcon: true})

			expected := Rect{X: TextPadding, Y: 0, W: 200 - TextPadding*2, H: 20}
			if got := s.lastText().rect; got != expected {
				t.Errorf("Expected text-only layout %v, got %v", expected, got)
			}
			if s.clip != original {
				t.Errorf("Expected clip %v, got %v", original, s.clip)
			}
		})
	}
}

func TestPaintTooltip(t *testing.T) {
	s := newSurface()
	r := NewRenderer(nil, nil)
	row := &BasicRow{}
	entry := &fakeFile{name: "a very long file name that is elided.iso"}

	s.textFits = false
	r.Paint(s, entry, Rect{W: 80, H: 20}, row, Options{})
	if row.View().Tooltip != entry.name {
		t.Errorf("Expected tooltip %q, got %q", entry.name, row.View().Tooltip)
	}

	s.textFits = true
	r.Paint(s, entry, Rect{W: 800, H: 20}, row, Options{})
	if row.View().Tooltip != "" {
		t.Errorf("Expected tooltip cleared, got %q", row.View().Tooltip)
	}
}

func TestPreferredWidthOnlyGrows(t *testing.T) {
	s := newSurface()
	column := &ColumnWidth{}
	r := NewRenderer(column, nil)

	s.textWidth = 200
	r.Paint(s, &fakeFile{name: "long"}, Rect{W: 100, H: 20}, nil, Options{})
	first := column.Preferred()
	if first != TextPadding+200+PreferredWidthSlack {
		t.Errorf("Expected %d, got %d", TextPadding+200+PreferredWidthSlack, first)
	}

	s.textWidth = 20
	r.Paint(s, &fakeFile{name: "s"}, Rect{W: 100, H: 20}, nil, Options{})
	if column.Preferred() != first {
		t.Errorf("Expected width to stay %d, got %d", first, column.Preferred())
	}
}

func TestPaintClearsStaleHitAreas(t *testing.T) {
	s := newSurface()
	r := NewRenderer(nil, nil)
	row := &BasicRow{SubItems: 2}

	r.Paint(s, &fakeDir{fakeFile: fakeFile{name: "dir", length: 10}, children: 2}, Rect{W: 200, H: 20}, row, Options{TreeMode: true})
	if row.View().ExpandHit == nil {
		t.Fatal("Expected an expand hit area for a directory")
	}

	row.SubItems = 0
	r.Paint(s, &fakeFile{name: "done", length: 1, downloaded: 1}, Rect{W: 200, H: 20}, row, Options{TreeMode: true})
	if row.View().ExpandHit != nil || row.View().CheckHit != nil {
		t.Errorf("Expected stale hit areas cleared, got %v %v", row.View().ExpandHit, row.View().CheckHit)
	}
}

func TestPaintNilEntry(t *testing.T) {
	s := newSurface()
	r := NewRenderer(nil, nil)
	row := &BasicRow{}

	r.Paint(s, nil, Rect{W: 200, H: 20}, row, Options{TreeMode: true, ShowIcon: true})

	if len(s.icons) != 1 || s.icons[0].key != IconCheckNo {
		t.Errorf("Expected an unchecked box, got %v", s.icons)
	}
	if s.lastText().text != "" {
		t.Errorf("Expected empty name, got %q", s.lastText().text)
	}
	if len(s.thumbCalls) != 0 {
		t.Errorf("Expected no thumbnail lookup")
	}
}

func TestPaintRecoversFromPanics(t *testing.T) {
	s := newSurface()
	s.textPanic = true
	r := NewRenderer(nil, nil)
	row := &BasicRow{}

	r.Paint(s, &fakeFile{name: "x", length: 10}, Rect{W: 200, H: 20}, row, Options{})

	if row.View().CheckHit == nil {
		t.Errorf("Expected hit areas painted before the failure to remain")
	}
}

func TestPaintWithoutRowDrawsOnlyName(t *testing.T) {
	s := newSurface()
	r := NewRenderer(nil, nil)

	r.Paint(s, &fakeFile{name: "plain"}, Rect{X: 10, W: 200, H: 20}, nil, Options{TreeMode: true})

	if len(s.icons) != 0 || len(s.triangles) != 0 {
		t.Errorf("Expected no decorations without a row")
	}
	expected := Rect{X: 12, Y: 0, W: 196, H: 20}
	if got := s.lastText().rect; got != expected {
		t.Errorf("Expected text at %v, got %v", expected, got)
	}
}
