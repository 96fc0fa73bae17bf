package namecell

import (
	"context"
	"errors"

	"github.com/ytget/bitfiles/internal/model"
)

type drawnIcon struct {
	key  string
	rect Rect
}

type drawnText struct {
	text string
	rect Rect
	wrap bool
}

type fakeImage struct {
	size  Size
	valid bool
}

func (f *fakeImage) Size() Size  { return f.size }
func (f *fakeImage) Valid() bool { return f.valid }

// recordingSurface captures every draw call
type recordingSurface struct {
	iconSize   Size
	thumb      Image
	thumbErr   error
	drawErr    error
	drawPanic  bool
	textPanic  bool
	textFits   bool
	textWidth  int
	thumbCalls []bool

	icons     []drawnIcon
	triangles [][3]Point
	images    []Rect
	texts     []drawnText
	clip      Rect
	clips     []Rect
}

func newSurface() *recordingSurface {
	return &recordingSurface{
		iconSize:  Size{W: 16, H: 16},
		textFits:  true,
		textWidth: 50,
		clip:      Rect{X: -1, Y: -1, W: 9999, H: 9999},
	}
}

func (s *recordingSurface) IconSize(key string) (Size, bool) { return s.iconSize, true }

func (s *recordingSurface) DrawIcon(key string, r Rect) {
	s.icons = append(s.icons, drawnIcon{key: key, rect: r})
}

func (s *recordingSurface) Thumbnail(path string, big bool) (Image, error) {
	s.thumbCalls = append(s.thumbCalls, big)
	return s.thumb, s.thumbErr
}

func (s *recordingSurface) DrawImage(img Image, dst Rect) error {
	if s.drawPanic {
		panic("device lost")
	}
	if s.drawErr != nil {
		return s.drawErr
	}
	s.images = append(s.images, dst)
	return nil
}

func (s *recordingSurface) DrawText(text string, r Rect, wrap bool) (bool, Size) {
	if s.textPanic {
		panic("font missing")
	}
	s.texts = append(s.texts, drawnText{text: text, rect: r, wrap: wrap})
	return s.textFits, Size{W: s.textWidth, H: 14}
}

func (s *recordingSurface) FillTriangle(points [3]Point) {
	s.triangles = append(s.triangles, points)
}

func (s *recordingSurface) Clip() Rect { return s.clip }

func (s *recordingSurface) SetClip(r Rect) {
	s.clip = r
	s.clips = append(s.clips, r)
}

func (s *recordingSurface) lastText() drawnText {
	if len(s.texts) == 0 {
		return drawnText{}
	}
	return s.texts[len(s.texts)-1]
}

// fakeLifecycle records pause/resume calls
type fakeLifecycle struct {
	pauseResult bool
	events      *[]string
}

func (l *fakeLifecycle) Pause() bool {
	*l.events = append(*l.events, "pause")
	return l.pauseResult
}

func (l *fakeLifecycle) Resume() {
	*l.events = append(*l.events, "resume")
}

// fakeFile is a leaf entry
type fakeFile struct {
	name       string
	path       string
	depth      int
	length     int64
	downloaded int64
	skipped    bool
	linkOK     bool
	linkedTo   string
	lifecycle  *fakeLifecycle
	events     *[]string
}

func (f *fakeFile) Name() string      { return f.name }
func (f *fakeFile) Path() string      { return f.path }
func (f *fakeFile) Length() int64     { return f.length }
func (f *fakeFile) Downloaded() int64 { return f.downloaded }
func (f *fakeFile) IsSkipped() bool   { return f.skipped }
func (f *fakeFile) SetSkipped(s bool) { f.skipped = s }

func (f *fakeFile) SetLink(target string) bool {
	if f.events != nil {
		*f.events = append(*f.events, "link")
	}
	f.linkedTo = target
	return f.linkOK
}

func (f *fakeFile) Download() model.Lifecycle {
	if f.lifecycle == nil {
		return nil
	}
	return f.lifecycle
}

func (f *fakeFile) Depth() int                 { return f.depth }
func (f *fakeFile) IsLeaf() bool               { return true }
func (f *fakeFile) ChildCount() int            { return 0 }
func (f *fakeFile) SkipState() model.SkipState { return model.SkipNone }

// fakeDir is a directory node with a fixed aggregate state
type fakeDir struct {
	fakeFile
	state      model.SkipState
	children   int
	setSkipped []bool
}

func (d *fakeDir) IsLeaf() bool               { return false }
func (d *fakeDir) ChildCount() int            { return d.children }
func (d *fakeDir) SkipState() model.SkipState { return d.state }

func (d *fakeDir) SetSkipped(s bool) {
	d.setSkipped = append(d.setSkipped, s)
	if s {
		d.state = model.SkipAll
	} else {
		d.state = model.SkipNone
	}
}

// fakeRunner runs the body inline and records the call
type fakeRunner struct {
	calls  int
	names  []string
	err    error
	events *[]string
}

func (r *fakeRunner) Run(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	r.calls++
	r.names = append(r.names, name)
	if r.events != nil {
		*r.events = append(*r.events, "run")
	}
	if r.err != nil {
		return r.err
	}
	return fn(ctx)
}

type fakeNotifier struct {
	titles []string
	texts  []string
}

func (n *fakeNotifier) ShowError(titleKey, textKey string) {
	n.titles = append(n.titles, titleKey)
	n.texts = append(n.texts, textKey)
}

var errFakeRunner = errors.New("runner stopped")
