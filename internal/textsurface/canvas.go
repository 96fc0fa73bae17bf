package textsurface

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ytget/bitfiles/internal/namecell"
)

const (
	CellWidth = 8
	RowHeight = 16
)

const (
	blank       rune = ' '
	placeholder rune = -1
	ellipsis         = "…"
)

var checkGlyphs = map[string]string{
	namecell.IconCheckNo:    "[ ]",
	namecell.IconCheckYes:   "[x]",
	namecell.IconCheckROYes: "[#]",
	namecell.IconCheckMaybe: "[~]",
}

// widths ignores the terminal locale so ambiguous glyphs are always one column
var widths = &runewidth.Condition{EastAsianWidth: false}

var errForeignImage = errors.New("image was not created by this canvas")

// Canvas is a namecell.Surface backed by a rune grid
type Canvas struct {
	cols  int
	lines [][]rune
	clip  namecell.Rect
}

var _ namecell.Surface = (*Canvas)(nil)

// NewCanvas creates a blank canvas of cols columns and rows lines
func NewCanvas(cols, rows int) *Canvas {
	cols = max(cols, 0)
	rows = max(rows, 0)
	lines := make([][]rune, rows)
	for i := range lines {
		lines[i] = []rune(strings.Repeat(string(blank), cols))
	}
	return &Canvas{
		cols:  cols,
		lines: lines,
		clip:  namecell.Rect{W: cols * CellWidth, H: rows * RowHeight},
	}
}

// Bounds returns the canvas area in surface units
func (c *Canvas) Bounds() namecell.Rect {
	return namecell.Rect{W: c.cols * CellWidth, H: len(c.lines) * RowHeight}
}

func (c *Canvas) IconSize(key string) (namecell.Size, bool) {
	glyph, ok := checkGlyphs[key]
	if !ok {
		return namecell.Size{}, false
	}
	return namecell.Size{W: widths.StringWidth(glyph) * CellWidth, H: RowHeight}, true
}

func (c *Canvas) DrawIcon(key string, r namecell.Rect) {
	glyph, ok := checkGlyphs[key]
	if !ok {
		return
	}
	c.put(r.X/CellWidth, r.Y/RowHeight, glyph)
}

// Thumbnail returns a one-glyph image for the file type of path
func (c *Canvas) Thumbnail(path string, big bool) (namecell.Image, error) {
	if path == "" {
		return nil, errors.New("no path")
	}
	glyph := glyphFor(path)
	w := widths.StringWidth(glyph)
	return &glyphImage{glyph: glyph, size: namecell.Size{W: w * CellWidth, H: RowHeight}}, nil
}

func (c *Canvas) DrawImage(img namecell.Image, dst namecell.Rect) error {
	g, ok := img.(*glyphImage)
	if !ok {
		return errForeignImage
	}
	c.put(ceilDiv(dst.X, CellWidth), dst.Y/RowHeight, g.glyph)
	return nil
}

// DrawText writes text at the start of r, elided with "…" when it is
// wider than r. Wrapped text continues on the following lines of r.
func (c *Canvas) DrawText(text string, r namecell.Rect, wrap bool) (bool, namecell.Size) {
	width := widths.StringWidth(text)
	preferred := namecell.Size{W: width * CellWidth, H: RowHeight}
	cols := r.W / CellWidth
	col, line := ceilDiv(r.X, CellWidth), r.Y/RowHeight

	if width <= cols {
		c.put(col, line, text)
		return true, preferred
	}

	lines := max(1, r.H/RowHeight)
	if !wrap || lines == 1 || cols <= 0 {
		c.put(col, line, widths.Truncate(text, cols, ellipsis))
		return false, preferred
	}

	rest := text
	for i := 0; i < lines; i++ {
		if widths.StringWidth(rest) <= cols {
			c.put(col, line+i, rest)
			return true, preferred
		}
		if i == lines-1 {
			c.put(col, line+i, widths.Truncate(rest, cols, ellipsis))
			break
		}
		head := widths.Truncate(rest, cols, "")
		if head == "" {
			break
		}
		c.put(col, line+i, head)
		rest = rest[len(head):]
	}
	return false, preferred
}

// FillTriangle draws a twisty glyph at the triangle's first corner
func (c *Canvas) FillTriangle(points [3]namecell.Point) {
	glyph := "▸"
	if points[0].Y == points[1].Y {
		glyph = "▾"
	}
	c.put(points[0].X/CellWidth, points[0].Y/RowHeight, glyph)
}

func (c *Canvas) Clip() namecell.Rect { return c.clip }

func (c *Canvas) SetClip(r namecell.Rect) { c.clip = r }

// Line returns one line of the canvas with trailing blanks removed
func (c *Canvas) Line(i int) string {
	if i < 0 || i >= len(c.lines) {
		return ""
	}
	var b strings.Builder
	for _, r := range c.lines[i] {
		if r != placeholder {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), string(blank))
}

// String returns all lines joined by newlines
func (c *Canvas) String() string {
	out := make([]string, len(c.lines))
	for i := range c.lines {
		out[i] = c.Line(i)
	}
	return strings.Join(out, "\n")
}

// put writes s starting at (col, line). Cells outside the canvas or the
// clip are dropped. A wide rune occupies its cell and a placeholder.
func (c *Canvas) put(col, line int, s string) {
	if line < 0 || line >= len(c.lines) {
		return
	}
	row := c.lines[line]
	for _, r := range s {
		w := widths.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > c.cols {
			return
		}
		if col >= 0 && c.visible(col, line, w) {
			c.clear(row, col, w)
			row[col] = r
			if w == 2 {
				row[col+1] = placeholder
			}
		}
		col += w
	}
}

func (c *Canvas) visible(col, line, w int) bool {
	x, y := col*CellWidth, line*RowHeight
	cell := namecell.Rect{X: x, Y: y, W: w * CellWidth, H: RowHeight}
	return c.clip.Intersect(cell) == cell
}

// clear blanks the cells about to be overwritten, including the other half
// of any wide rune they cut through
func (c *Canvas) clear(row []rune, col, w int) {
	if row[col] == placeholder && col > 0 {
		row[col-1] = blank
	}
	end := col + w - 1
	if end+1 < len(row) && row[end+1] == placeholder {
		row[end+1] = blank
	}
	for i := col; i <= end; i++ {
		row[i] = blank
	}
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}

type glyphImage struct {
	glyph string
	size  namecell.Size
}

func (g *glyphImage) Size() namecell.Size { return g.size }
func (g *glyphImage) Valid() bool         { return g.glyph != "" }

var extensionGlyphs = map[string]string{
	".mp3": "♪", ".flac": "♪", ".ogg": "♪", ".wav": "♪", ".m4a": "♪",
	".mp4": "▶", ".mkv": "▶", ".avi": "▶", ".webm": "▶", ".mov": "▶",
	".jpg": "▣", ".jpeg": "▣", ".png": "▣", ".gif": "▣", ".webp": "▣",
	".zip": "▤", ".rar": "▤", ".7z": "▤", ".tar": "▤", ".gz": "▤",
	".txt": "≡", ".nfo": "≡", ".md": "≡", ".pdf": "≡",
	".iso": "◎", ".img": "◎",
}

func glyphFor(path string) string {
	if g, ok := extensionGlyphs[strings.ToLower(filepath.Ext(path))]; ok {
		return g
	}
	return "•"
}
