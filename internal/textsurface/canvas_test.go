package textsurface

import (
	"testing"

	"github.com/ytget/bitfiles/internal/namecell"
)

func TestCanvasDrawText(t *testing.T) {
	tests := []struct {
		name     string
		cols     int
		text     string
		wantLine string
		wantFit  bool
	}{
		{"fits", 10, "hello", "hello", true},
		{"exact", 5, "hello", "hello", true},
		{"elided", 4, "hello", "hel…", false},
		{"wide runes", 5, "日本語", "日本…", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(tt.cols, 1)
			fit, preferred := c.DrawText(tt.text, c.Bounds(), false)
			if fit != tt.wantFit {
				t.Errorf("Expected fit=%v, got %v", tt.wantFit, fit)
			}
			if got := c.Line(0); got != tt.wantLine {
				t.Errorf("Expected %q, got %q", tt.wantLine, got)
			}
			if want := widths.StringWidth(tt.text) * CellWidth; preferred.W != want {
				t.Errorf("Expected preferred width %d, got %d", want, preferred.W)
			}
		})
	}
}

func TestCanvasDrawTextWrap(t *testing.T) {
	c := NewCanvas(6, 2)

	fit, _ := c.DrawText("abcdefghij", c.Bounds(), true)
	if !fit {
		t.Errorf("Expected wrapped text to fit")
	}
	if c.String() != "abcdef\nghij" {
		t.Errorf("Expected two wrapped lines, got %q", c.String())
	}

	c = NewCanvas(4, 2)
	fit, _ = c.DrawText("abcdefghijkl", c.Bounds(), true)
	if fit {
		t.Errorf("Expected overflow to be reported")
	}
	if c.String() != "abcd\nefg…" {
		t.Errorf("Expected elided second line, got %q", c.String())
	}
}

func TestCanvasWideRuneOverwrite(t *testing.T) {
	c := NewCanvas(4, 1)
	c.put(0, 0, "日本")
	c.put(1, 0, "x")

	if got := c.Line(0); got != " x本" {
		t.Errorf("Expected split wide rune blanked, got %q", got)
	}
}

func TestCanvasClip(t *testing.T) {
	c := NewCanvas(10, 1)
	c.SetClip(namecell.Rect{X: 2 * CellWidth, Y: 0, W: 3 * CellWidth, H: RowHeight})

	c.put(0, 0, "abcdefghij")

	if got := c.Line(0); got != "  cde" {
		t.Errorf("Expected only clipped cells drawn, got %q", got)
	}
}

func TestCanvasIcons(t *testing.T) {
	c := NewCanvas(8, 1)

	size, ok := c.IconSize(namecell.IconCheckMaybe)
	if !ok || size.W != 3*CellWidth || size.H != RowHeight {
		t.Errorf("Expected 3-column checkbox, got %v %v", size, ok)
	}
	if _, ok := c.IconSize("unknown"); ok {
		t.Errorf("Expected unknown icon to be missing")
	}

	c.DrawIcon(namecell.IconCheckROYes, namecell.Rect{X: 0, W: 24, H: 16})
	c.FillTriangle(namecell.TwistyTriangle(4*CellWidth, 7, true))
	c.FillTriangle(namecell.TwistyTriangle(6*CellWidth, 7, false))

	if got := c.Line(0); got != "[#] ▾ ▸" {
		t.Errorf("Expected %q, got %q", "[#] ▾ ▸", got)
	}
}

func TestCanvasThumbnail(t *testing.T) {
	c := NewCanvas(4, 1)

	img, err := c.Thumbnail("/data/song.FLAC", false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !img.Valid() || img.Size().W != CellWidth {
		t.Errorf("Expected a one-column image, got %v", img.Size())
	}
	if err := c.DrawImage(img, namecell.Rect{X: 8, W: 8, H: 16}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := c.Line(0); got != " ♪" {
		t.Errorf("Expected %q, got %q", " ♪", got)
	}

	if _, err := c.Thumbnail("", false); err == nil {
		t.Errorf("Expected error for empty path")
	}
	if err := c.DrawImage(nil, namecell.Rect{}); err == nil {
		t.Errorf("Expected error for foreign image")
	}
}
