package namecell

import (
	"github.com/ytget/bitfiles/internal/model"
)

// Handler reacts to pointer events on name cells using the hit areas
// recorded by the last paint of the row.
type Handler struct{}

// NewHandler creates a pointer handler
func NewHandler() *Handler {
	return &Handler{}
}

// Hover returns the cursor for a pointer at p (cell relative). It never changes state.
func (h *Handler) Hover(row Row, p Point) Cursor {
	if row == nil {
		return CursorDefault
	}
	inExpand, inCheck := row.View().HitTest(p)
	if inExpand || inCheck {
		return CursorHand
	}
	return CursorDefault
}

// Press handles a pointer press at p (cell relative). A press on the
// twisty toggles expansion; a press on the checkbox toggles skipping.
// It reports whether anything changed so the caller can repaint.
func (h *Handler) Press(entry model.FileEntry, row Row, p Point) bool {
	if row == nil {
		return false
	}
	inExpand, inCheck := row.View().HitTest(p)
	changed := false

	if inExpand {
		row.SetExpanded(!row.Expanded())
		changed = true
	}

	if inCheck && entry != nil {
		ToggleSkip(entry)
		changed = true
	}
	return changed
}

// ToggleSkip flips the skip flag of a file. Directories go to "all
// skipped" unless they already are, so a mixed directory is skipped
// entirely rather than downloaded entirely.
func ToggleSkip(entry model.FileEntry) {
	if node, ok := entry.(model.TreeNode); ok && !node.IsLeaf() {
		node.SetSkipped(node.SkipState() != model.SkipAll)
		return
	}
	entry.SetSkipped(!entry.IsSkipped())
}
