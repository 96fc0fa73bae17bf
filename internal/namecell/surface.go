package namecell

// Checkbox icon keys, see model.CheckState.IconKey
const (
	IconCheckNo    = "check_no"
	IconCheckYes   = "check_yes"
	IconCheckROYes = "check_ro_yes"
	IconCheckMaybe = "check_maybe"
)

// Image is a thumbnail handed out by a Surface
type Image interface {
	Size() Size
	// Valid is false once the image was released or failed to decode
	Valid() bool
}

// Surface is the drawing target of one row. Coordinates are absolute
// surface units; the cell rectangle passed to Paint is in the same space.
type Surface interface {
	// IconSize returns the natural size of a named icon
	IconSize(key string) (Size, bool)
	DrawIcon(key string, r Rect)
	// Thumbnail returns the file-type image for path. A nil image with a
	// nil error means there is nothing to show.
	Thumbnail(path string, big bool) (Image, error)
	DrawImage(img Image, dst Rect) error
	// DrawText draws text inside r, eliding or wrapping it, and reports
	// whether it fit and the size it would need to fit on one line.
	DrawText(text string, r Rect, wrap bool) (fit bool, preferred Size)
	FillTriangle(points [3]Point)
	Clip() Rect
	SetClip(r Rect)
}

// Cursor is the pointer shape requested by the handler
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorHand
)

func (c Cursor) String() string {
	if c == CursorHand {
		return "hand"
	}
	return "default"
}
