package namecell

// Row is the list row that owns a painted cell
type Row interface {
	Expanded() bool
	SetExpanded(expanded bool)
	SubItemCount() int
	// View returns the per-row record written by Paint and read by the handler
	View() *RowView
}

// RowView holds what the last paint of a row produced. Hit areas are
// relative to the cell's top-left corner and nil when the row has none.
type RowView struct {
	ExpandHit *Rect
	CheckHit  *Rect
	Tooltip   string
}

// Invalidate forgets the hit areas. Call it when the row is resized or
// re-bound to another entry so stale rectangles are never hit-tested.
func (v *RowView) Invalidate() {
	v.ExpandHit = nil
	v.CheckHit = nil
}

// HitTest reports whether p (cell relative) falls in the twisty or the checkbox
func (v *RowView) HitTest(p Point) (inExpand, inCheck bool) {
	if v == nil {
		return false, false
	}
	if v.ExpandHit != nil {
		inExpand = v.ExpandHit.Contains(p)
	}
	if v.CheckHit != nil {
		inCheck = v.CheckHit.Contains(p)
	}
	return inExpand, inCheck
}

// BasicRow is a Row backed by plain fields, used by the terminal printer and tests
type BasicRow struct {
	IsExpanded bool
	SubItems   int
	OnExpand   func(expanded bool)
	view       RowView
}

func (r *BasicRow) Expanded() bool { return r.IsExpanded }

func (r *BasicRow) SetExpanded(expanded bool) {
	r.IsExpanded = expanded
	if r.OnExpand != nil {
		r.OnExpand(expanded)
	}
}

func (r *BasicRow) SubItemCount() int { return r.SubItems }
func (r *BasicRow) View() *RowView    { return &r.view }

// ColumnWidth is the preferred width hint of the name column. It only grows.
type ColumnWidth struct {
	preferred int
}

// Offer raises the hint to w if it is larger and reports whether it changed
func (c *ColumnWidth) Offer(w int) bool {
	if w <= c.preferred {
		return false
	}
	c.preferred = w
	return true
}

// Preferred returns the current hint
func (c *ColumnWidth) Preferred() int {
	return c.preferred
}
