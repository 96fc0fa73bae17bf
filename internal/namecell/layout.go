package namecell

// Tree and checkbox geometry
const (
	TreeBasePadding  = 3
	TwistyWidth      = 7
	twistyHalfHeight = 2
	CheckPadding     = 2
	CheckGap         = 4
	TextPadding      = 2
	// BigThumbnailRowHeight is the cell height above which large thumbnails are requested
	BigThumbnailRowHeight = 32
	// PreferredWidthSlack is added to the measured name when raising the column hint
	PreferredWidthSlack = 10
)

// Thumbnail sizing
const (
	tallCellHeight    = 30
	smallCellHeight   = 18
	smallIconWidth    = 16
	minWidthMinHeight = 25
	compactTextWidth  = 100
	compactIconWidth  = 32
	thumbnailTextGap  = 3
)

// ThumbnailLayout is where a thumbnail and the text after it go
type ThumbnailLayout struct {
	// Bounds is the cell area after vertical trimming; the image is clipped to it
	Bounds Rect
	Image  Rect
	TextX  int
}

// LayoutThumbnail scales an image of size img into the remaining cell
// bounds b. Aspect ratio is kept. Tall rows reserve a minimum width of
// 7/4 of the image height so names line up, and when less than 100 units
// would be left for text the image shrinks to a compact 32-wide slot.
func LayoutThumbnail(b Rect, img Size) (ThumbnailLayout, bool) {
	if img.Empty() {
		return ThumbnailLayout{}, false
	}

	if b.H > tallCellHeight {
		b.Y++
		b.H -= 3
	}

	var dstW, dstH int
	switch {
	case img.H > b.H:
		dstH = b.H
		dstW = img.W * b.H / img.H
	case img.W > b.W:
		dstW = b.W - 4
		dstH = img.H * b.W / img.W
	default:
		dstW = img.W
		dstH = img.H
	}

	if b.H <= smallCellHeight {
		dstW = min(dstW, b.H)
		dstH = min(dstH, b.H)
		if img.W > smallIconWidth {
			b.Y++
			dstH -= 2
		}
	}

	x := b.X
	textX := x + dstW + thumbnailTextGap
	minWidth := dstH * 7 / 4
	imgPad := 0
	if dstH > minWidthMinHeight && dstW < minWidth {
		imgPad = (minWidth - dstW + 1) / 2
		x = b.X + imgPad
		textX = b.X + minWidth + thumbnailTextGap
	}
	if b.W-dstW-imgPad*2 < compactTextWidth && dstH > smallCellHeight {
		dstW = min(compactIconWidth, dstH)
		x = b.X + (compactIconWidth-dstW+1)/2
		dstH = img.H * dstW / img.W
		textX = b.X + dstW + thumbnailTextGap
	}
	y := b.Y + (b.H-dstH+1)/2

	if dstW <= 0 || dstH <= 0 {
		return ThumbnailLayout{}, false
	}
	return ThumbnailLayout{
		Bounds: b,
		Image:  Rect{X: x, Y: y, W: dstW, H: dstH},
		TextX:  textX,
	}, true
}

// TwistyTriangle returns the triangle drawn for a row whose twisty starts
// at startX. Expanded rows point down, collapsed rows point right.
func TwistyTriangle(startX, middleY int, expanded bool) [3]Point {
	top := middleY - twistyHalfHeight
	bottom := middleY + twistyHalfHeight*2 + 1
	if expanded {
		return [3]Point{
			{X: startX, Y: top},
			{X: startX + TwistyWidth, Y: top},
			{X: startX + TwistyWidth/2, Y: bottom},
		}
	}
	return [3]Point{
		{X: startX, Y: top},
		{X: startX + TwistyWidth, Y: middleY + twistyHalfHeight},
		{X: startX, Y: bottom},
	}
}
