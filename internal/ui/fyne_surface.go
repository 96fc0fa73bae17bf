package ui

import (
	"errors"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/bitfiles/internal/namecell"
)

const ellipsis = "…"

var errNoResource = errors.New("image has no resource")

// FyneSurface collects canvas objects for one name cell paint
type FyneSurface struct {
	objects  []fyne.CanvasObject
	clip     namecell.Rect
	iconSize int
	textSize float32
	style    fyne.TextStyle
}

var _ namecell.Surface = (*FyneSurface)(nil)

// NewFyneSurface creates an empty surface
func NewFyneSurface() *FyneSurface {
	return &FyneSurface{}
}

// Reset drops the objects of the previous paint and sets the area of the next one
func (s *FyneSurface) Reset(size fyne.Size) {
	s.objects = s.objects[:0]
	s.clip = namecell.Rect{W: ceil(size.Width), H: ceil(size.Height)}
	s.iconSize = int(theme.IconInlineSize())
	s.textSize = theme.TextSize()
}

// Objects returns what the last paint produced
func (s *FyneSurface) Objects() []fyne.CanvasObject {
	out := make([]fyne.CanvasObject, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *FyneSurface) IconSize(key string) (namecell.Size, bool) {
	if checkResource(key) == nil || s.iconSize <= 0 {
		return namecell.Size{}, false
	}
	return namecell.Size{W: s.iconSize, H: s.iconSize}, true
}

func (s *FyneSurface) DrawIcon(key string, r namecell.Rect) {
	res := checkResource(key)
	if res == nil {
		return
	}
	img := canvas.NewImageFromResource(res)
	img.FillMode = canvas.ImageFillContain
	s.place(img, r)
}

// Thumbnail returns the program icon for the file type of path
func (s *FyneSurface) Thumbnail(path string, big bool) (namecell.Image, error) {
	size := SmallThumbnailSize
	if big {
		size = BigThumbnailSize
	}
	return &fyneImage{res: fileTypeResource(path), size: namecell.Size{W: size, H: size}}, nil
}

// DrawImage places img at dst. Canvas images cannot be cropped, so an image
// the clip cuts into is left out instead of being squeezed into the visible part.
func (s *FyneSurface) DrawImage(img namecell.Image, dst namecell.Rect) error {
	fi, ok := img.(*fyneImage)
	if !ok || fi.res == nil {
		return errNoResource
	}
	if dst.Empty() || dst.Intersect(s.clip) != dst {
		return nil
	}
	obj := canvas.NewImageFromResource(fi.res)
	obj.FillMode = canvas.ImageFillContain
	s.place(obj, dst)
	return nil
}

// DrawText draws text elided to r, or wrapped over as many lines as fit when wrap is set
func (s *FyneSurface) DrawText(text string, r namecell.Rect, wrap bool) (bool, namecell.Size) {
	full := fyne.MeasureText(text, s.textSize, s.style)
	preferred := namecell.Size{W: ceil(full.Width), H: ceil(full.Height)}
	width := float32(r.W)

	lines := []string{text}
	fit := full.Width <= width
	if !fit {
		maxLines := 1
		if wrap && full.Height > 0 {
			maxLines = max(1, int(float32(r.H)/full.Height))
		}
		lines, fit = s.layoutLines(text, width, maxLines)
	}

	lineHeight := full.Height
	top := float32(r.Y) + (float32(r.H)-lineHeight*float32(len(lines)))/2
	for i, line := range lines {
		t := canvas.NewText(line, theme.ForegroundColor())
		t.TextSize = s.textSize
		t.TextStyle = s.style
		t.Move(fyne.NewPos(float32(r.X), top+lineHeight*float32(i)))
		t.Resize(fyne.NewSize(width, lineHeight))
		s.objects = append(s.objects, t)
	}
	return fit, preferred
}

// layoutLines breaks text into at most maxLines lines of the given width.
// The last line is elided when text remains.
func (s *FyneSurface) layoutLines(text string, width float32, maxLines int) ([]string, bool) {
	var lines []string
	rest := []rune(text)
	for len(lines) < maxLines-1 && len(rest) > 0 {
		n := s.fitRunes(rest, width, "")
		if n == 0 {
			break
		}
		lines = append(lines, string(rest[:n]))
		rest = rest[n:]
	}
	if len(rest) == 0 {
		return lines, true
	}
	if s.measure(string(rest)) <= width {
		return append(lines, string(rest)), true
	}
	n := s.fitRunes(rest, width, ellipsis)
	return append(lines, string(rest[:n])+ellipsis), false
}

// fitRunes returns how many leading runes fit into width with suffix appended
func (s *FyneSurface) fitRunes(runes []rune, width float32, suffix string) int {
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.measure(string(runes[:mid])+suffix) <= width {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func (s *FyneSurface) measure(text string) float32 {
	return fyne.MeasureText(text, s.textSize, s.style).Width
}

// FillTriangle rasterizes the twisty triangle
func (s *FyneSurface) FillTriangle(points [3]namecell.Point) {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	bounds := namecell.Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
	fill := theme.ForegroundColor()

	raster := canvas.NewRasterWithPixels(func(x, y, w, h int) color.Color {
		if w == 0 || h == 0 {
			return color.Transparent
		}
		px := float64(minX) + float64(x)*float64(bounds.W)/float64(w)
		py := float64(minY) + float64(y)*float64(bounds.H)/float64(h)
		if insideTriangle(px, py, points) {
			return fill
		}
		return color.Transparent
	})
	s.place(raster, bounds)
}

func insideTriangle(x, y float64, p [3]namecell.Point) bool {
	sign := func(a, b namecell.Point) float64 {
		return (x-float64(b.X))*float64(a.Y-b.Y) - float64(a.X-b.X)*(y-float64(b.Y))
	}
	d1, d2, d3 := sign(p[0], p[1]), sign(p[1], p[2]), sign(p[2], p[0])
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func (s *FyneSurface) Clip() namecell.Rect { return s.clip }

func (s *FyneSurface) SetClip(r namecell.Rect) { s.clip = r }

func (s *FyneSurface) place(obj fyne.CanvasObject, r namecell.Rect) {
	obj.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	obj.Resize(fyne.NewSize(float32(r.W), float32(r.H)))
	s.objects = append(s.objects, obj)
}

func ceil(v float32) int {
	return int(math.Ceil(float64(v)))
}

type fyneImage struct {
	res  fyne.Resource
	size namecell.Size
}

func (i *fyneImage) Size() namecell.Size { return i.size }
func (i *fyneImage) Valid() bool         { return i.res != nil }
