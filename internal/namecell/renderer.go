package namecell

import (
	"fmt"

	"github.com/ytget/bitfiles/internal/logging"
	"github.com/ytget/bitfiles/internal/model"
)

// Options are the display flags that apply to a paint
type Options struct {
	// TreeMode indents rows by depth and shows twisties
	TreeMode bool
	// ShowIcon draws file-type thumbnails in front of leaf names
	ShowIcon bool
	// Wrap wraps long names instead of eliding them (big rows)
	Wrap bool
}

// DefaultCheckSize is used when a surface has no checkbox icon
var DefaultCheckSize = Size{W: 16, H: 16}

// Renderer paints name cells and keeps the column's preferred width
type Renderer struct {
	column *ColumnWidth
	logger *logging.Logger
}

// NewRenderer creates a renderer feeding the given column hint
func NewRenderer(column *ColumnWidth, logger *logging.Logger) *Renderer {
	if column == nil {
		column = &ColumnWidth{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Renderer{column: column, logger: logger.Component("namecell")}
}

// Column returns the preferred width hint fed by this renderer
func (r *Renderer) Column() *ColumnWidth {
	return r.column
}

// Paint draws entry into cell on s. The row's view record gets the new hit
// areas and tooltip; a nil row paints only the name. A nil entry paints an
// empty name. Failures are logged and never propagate.
func (r *Renderer) Paint(s Surface, entry model.FileEntry, cell Rect, row Row, opts Options) {
	var view *RowView
	if row != nil {
		view = row.View()
	}
	if view != nil {
		view.Invalidate()
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn().Str("panic", fmt.Sprint(rec)).Msg("name cell paint failed")
		}
	}()

	b := cell
	origX := cell.X
	showIcon := opts.ShowIcon

	if row != nil {
		depth, leaf := 0, true
		if node, ok := entry.(model.TreeNode); ok {
			depth = node.Depth()
			leaf = node.IsLeaf()
			if !leaf {
				showIcon = false
			}
		}

		paddingX := TreeBasePadding + depth*TwistyWidth
		showTwisty := opts.TreeMode && (row.SubItemCount() > 1 || !leaf)

		if opts.TreeMode {
			b.X += paddingX
			b.W -= paddingX
		}

		if showTwisty {
			middleY := b.Y + b.H/2 - 1
			startX := b.X + paddingX
			s.FillTriangle(TwistyTriangle(startX, middleY, row.Expanded()))
			if view != nil {
				view.ExpandHit = &Rect{
					X: paddingX * 2,
					Y: middleY - twistyHalfHeight - b.Y,
					W: TwistyWidth,
					H: twistyHalfHeight*4 + 1,
				}
			}
		}

		if opts.TreeMode {
			b.X += paddingX + TwistyWidth
			b.W -= paddingX + TwistyWidth
		}

		state := model.ResolveCheckState(entry)
		key := state.IconKey()
		size, ok := s.IconSize(key)
		if !ok || size.Empty() {
			size = DefaultCheckSize
		}
		yOffset := (b.H-size.H)/2 + 1
		s.DrawIcon(key, Rect{X: b.X + CheckPadding, Y: b.Y + yOffset, W: size.W, H: size.H})
		if !state.IsReadOnly() && view != nil {
			view.CheckHit = &Rect{X: b.X + CheckPadding - origX, Y: yOffset, W: size.W, H: size.H}
		}

		b.X += size.W + CheckGap
		b.W -= size.W + CheckGap
	}

	if showIcon && entry != nil {
		if layout, ok := r.paintThumbnail(s, entry, b, cell.H); ok {
			r.paintName(s, entry, layout.Bounds, layout.TextX, origX, view, opts)
			return
		}
	}

	b.X += TextPadding
	b.W -= TextPadding * 2
	r.paintName(s, entry, b, b.X, origX, view, opts)
}

// paintThumbnail draws the file-type image clipped to b. It reports false
// when there is no image or drawing failed, and the caller then lays the
// name out as if icons were off.
func (r *Renderer) paintThumbnail(s Surface, entry model.FileEntry, b Rect, cellHeight int) (layout ThumbnailLayout, ok bool) {
	path := entry.Path()
	img, err := s.Thumbnail(path, cellHeight > BigThumbnailRowHeight)
	if err != nil {
		r.logger.Warn().Err(err).Str("path", path).Msg("thumbnail lookup failed")
		return layout, false
	}
	if img == nil || !img.Valid() {
		return layout, false
	}

	layout, ok = LayoutThumbnail(b, img.Size())
	if !ok {
		return layout, false
	}

	previous := s.Clip()
	s.SetClip(layout.Bounds)
	err = drawImage(s, img, layout.Image)
	s.SetClip(previous)

	if err != nil {
		r.logger.Warn().Err(err).Str("path", path).Msg("thumbnail draw failed")
		return layout, false
	}
	return layout, true
}

func drawImage(s Surface, img Image, dst Rect) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("draw image: %v", rec)
		}
	}()
	if !img.Valid() {
		return fmt.Errorf("image released before draw")
	}
	return s.DrawImage(img, dst)
}

func (r *Renderer) paintName(s Surface, entry model.FileEntry, b Rect, textX, origX int, view *RowView, opts Options) {
	name := SortKey(entry)

	area := Rect{X: textX, Y: b.Y, W: max(0, b.X+b.W-textX), H: b.H}
	fit, preferred := s.DrawText(name, area, opts.Wrap)

	r.column.Offer((textX - origX) + preferred.W + PreferredWidthSlack)

	if view == nil {
		return
	}
	if fit {
		view.Tooltip = ""
	} else {
		view.Tooltip = name
	}
}
