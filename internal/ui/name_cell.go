package ui

import (
	"errors"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bitfiles/internal/config"
	"github.com/ytget/bitfiles/internal/logging"
	"github.com/ytget/bitfiles/internal/model"
	"github.com/ytget/bitfiles/internal/namecell"
)

// NameColumn holds what every name cell of a list shares
type NameColumn struct {
	Renderer     *namecell.Renderer
	Handler      *namecell.Handler
	Editor       *namecell.Editor
	Observer     *config.Observer
	Localization *Localization
	Logger       *logging.Logger

	// OnChanged runs after a cell expanded, collapsed, toggled skipping or renamed a file
	OnChanged func()
}

func (c *NameColumn) options() namecell.Options {
	if c.Observer == nil {
		return namecell.Options{}
	}
	return namecell.Options{
		TreeMode: c.Observer.TreeMode(),
		ShowIcon: c.Observer.ShowIcon(),
		Wrap:     c.Observer.BigRows(),
	}
}

func (c *NameColumn) rowHeight() float32 {
	if c.Observer != nil && c.Observer.BigRows() {
		return BigRowMinHeight
	}
	return RowMinHeight
}

func (c *NameColumn) changed() {
	if c.OnChanged != nil {
		c.OnChanged()
	}
}

// NameCell is the name column cell of a file row
type NameCell struct {
	widget.BaseWidget

	column *NameColumn
	entry  model.FileEntry
	row    namecell.Row

	mu       sync.Mutex // guards hoverSeq
	hoverSeq int
	cursor   desktop.Cursor
	tooltip  *widget.PopUp
	rename   *widget.PopUp
}

var (
	_ desktop.Hoverable   = (*NameCell)(nil)
	_ desktop.Mouseable   = (*NameCell)(nil)
	_ desktop.Cursorable  = (*NameCell)(nil)
	_ fyne.DoubleTappable = (*NameCell)(nil)
)

// NewNameCell creates an unbound name cell
func NewNameCell(column *NameColumn) *NameCell {
	c := &NameCell{column: column, cursor: desktop.DefaultCursor}
	c.ExtendBaseWidget(c)
	return c
}

// Bind shows entry in this cell. Hit areas of the previous entry are dropped.
func (c *NameCell) Bind(entry model.FileEntry, row namecell.Row) {
	c.entry = entry
	c.row = row
	if row != nil {
		row.View().Invalidate()
	}
	c.hideTooltip()
	c.Refresh()
}

// Entry returns the bound entry
func (c *NameCell) Entry() model.FileEntry {
	return c.entry
}

// CreateRenderer creates the widget renderer
func (c *NameCell) CreateRenderer() fyne.WidgetRenderer {
	return &nameCellRenderer{cell: c, surface: NewFyneSurface()}
}

// Cursor returns the hand cursor over the twisty and the checkbox
func (c *NameCell) Cursor() desktop.Cursor {
	return c.cursor
}

// MouseIn handles the pointer entering the cell
func (c *NameCell) MouseIn(e *desktop.MouseEvent) {
	c.MouseMoved(e)
}

// MouseMoved updates the cursor and schedules the tooltip
func (c *NameCell) MouseMoved(e *desktop.MouseEvent) {
	if c.column.Handler.Hover(c.row, toPoint(e.Position)) == namecell.CursorHand {
		c.cursor = desktop.PointerCursor
	} else {
		c.cursor = desktop.DefaultCursor
	}
	c.scheduleTooltip(e.AbsolutePosition)
}

// MouseOut resets the cursor and hides the tooltip
func (c *NameCell) MouseOut() {
	c.cursor = desktop.DefaultCursor
	c.hideTooltip()
}

// MouseDown toggles expansion or skipping when the press hits the twisty or checkbox
func (c *NameCell) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if c.column.Handler.Press(c.entry, c.row, toPoint(e.Position)) {
		c.Refresh()
		c.column.changed()
	}
}

// MouseUp is required by desktop.Mouseable
func (c *NameCell) MouseUp(*desktop.MouseEvent) {}

// DoubleTapped starts an inline rename when fast rename is enabled
func (c *NameCell) DoubleTapped(*fyne.PointEvent) {
	if c.column.Observer != nil && c.column.Observer.InplaceEdit() {
		c.StartRename()
	}
}

// StartRename opens an entry over the cell to rename the bound file.
// The value is checked while typing and applied on Enter.
func (c *NameCell) StartRename() {
	entry := c.entry
	if entry == nil || c.column.Editor == nil {
		return
	}
	if node, ok := entry.(model.TreeNode); ok && !node.IsLeaf() {
		return
	}
	cnv := fyne.CurrentApp().Driver().CanvasForObject(c)
	if cnv == nil {
		return
	}
	c.hideTooltip()

	current := entry.Name()
	input := widget.NewEntry()
	input.SetText(current)
	input.Validator = func(name string) error {
		if c.column.Editor.Accept(entry, current, name, false) {
			return nil
		}
		return errors.New(c.column.Localization.GetText(KeyNameTaken))
	}
	input.OnSubmitted = func(name string) {
		if !c.column.Editor.Accept(entry, current, name, true) {
			return
		}
		c.closeRename()
		c.Refresh()
		c.column.changed()
	}

	c.closeRename()
	c.rename = widget.NewPopUp(input, cnv)
	c.rename.ShowAtPosition(fyne.CurrentApp().Driver().AbsolutePositionForObject(c))
	c.rename.Resize(fyne.NewSize(max(RenameEntryMinWidth, c.Size().Width), input.MinSize().Height))
	cnv.Focus(input)
}

func (c *NameCell) closeRename() {
	if c.rename != nil {
		c.rename.Hide()
		c.rename = nil
	}
}

func (c *NameCell) scheduleTooltip(at fyne.Position) {
	c.mu.Lock()
	c.hoverSeq++
	seq := c.hoverSeq
	c.mu.Unlock()

	if c.tooltip != nil || c.row == nil || c.row.View().Tooltip == "" {
		return
	}
	time.AfterFunc(TooltipDelay, func() {
		fyne.Do(func() { c.showTooltip(seq, at) })
	})
}

func (c *NameCell) showTooltip(seq int, at fyne.Position) {
	c.mu.Lock()
	stale := seq != c.hoverSeq
	c.mu.Unlock()
	if stale || c.row == nil || c.tooltip != nil {
		return
	}
	text := c.row.View().Tooltip
	cnv := fyne.CurrentApp().Driver().CanvasForObject(c)
	if text == "" || cnv == nil {
		return
	}

	popup := widget.NewPopUp(widget.NewLabel(text), cnv)
	popup.ShowAtPosition(at.Add(fyne.NewPos(0, c.column.rowHeight())))
	c.tooltip = popup

	time.AfterFunc(TooltipAutoHide, func() {
		fyne.Do(func() {
			if c.tooltip == popup {
				c.hideTooltip()
			}
		})
	})
}

func (c *NameCell) hideTooltip() {
	c.mu.Lock()
	c.hoverSeq++
	c.mu.Unlock()
	if c.tooltip != nil {
		c.tooltip.Hide()
		c.tooltip = nil
	}
}

func toPoint(p fyne.Position) namecell.Point {
	return namecell.Point{X: int(p.X), Y: int(p.Y)}
}

// nameCellRenderer repaints the cell through the shared renderer on every layout
type nameCellRenderer struct {
	cell    *NameCell
	surface *FyneSurface
	objects []fyne.CanvasObject
}

func (r *nameCellRenderer) Layout(size fyne.Size) {
	r.paint(size)
}

func (r *nameCellRenderer) MinSize() fyne.Size {
	return fyne.NewSize(NameMinWidth, r.cell.column.rowHeight())
}

func (r *nameCellRenderer) Refresh() {
	r.paint(r.cell.Size())
	for _, obj := range r.objects {
		obj.Refresh()
	}
}

func (r *nameCellRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *nameCellRenderer) Destroy() {}

func (r *nameCellRenderer) paint(size fyne.Size) {
	r.surface.Reset(size)
	cell := namecell.Rect{W: ceil(size.Width), H: ceil(size.Height)}
	r.cell.column.Renderer.Paint(r.surface, r.cell.entry, cell, r.cell.row, r.cell.column.options())
	r.objects = r.surface.Objects()
}
