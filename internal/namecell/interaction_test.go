package namecell

import (
	"testing"

	"github.com/ytget/bitfiles/internal/model"
)

func paintedDirRow(t *testing.T, dir *fakeDir) *BasicRow {
	t.Helper()
	row := &BasicRow{SubItems: 2}
	NewRenderer(nil, nil).Paint(newSurface(), dir, Rect{W: 200, H: 20}, row, Options{TreeMode: true})
	if row.View().ExpandHit == nil || row.View().CheckHit == nil {
		t.Fatal("Expected both hit areas after painting a directory")
	}
	return row
}

func TestHoverCursor(t *testing.T) {
	dir := &fakeDir{fakeFile: fakeFile{name: "dir", length: 10}, children: 2}
	row := paintedDirRow(t, dir)
	h := NewHandler()

	tests := []struct {
		name string
		p    Point
		want Cursor
	}{
		{"twisty", Point{X: 7, Y: 10}, CursorHand},
		{"checkbox", Point{X: 20, Y: 10}, CursorHand},
		{"name", Point{X: 150, Y: 10}, CursorDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Hover(row, tt.p); got != tt.want {
				t.Errorf("Expected cursor %v, got %v", tt.want, got)
			}
		})
	}

	if row.Expanded() || len(dir.setSkipped) != 0 {
		t.Errorf("Expected hover to leave state untouched")
	}
	if got := h.Hover(nil, Point{}); got != CursorDefault {
		t.Errorf("Expected default cursor without a row, got %v", got)
	}
}

func TestPressTogglesExpansion(t *testing.T) {
	dir := &fakeDir{fakeFile: fakeFile{name: "dir", length: 10}, children: 2}
	row := paintedDirRow(t, dir)
	var notified []bool
	row.OnExpand = func(expanded bool) { notified = append(notified, expanded) }

	if !NewHandler().Press(dir, row, Point{X: 7, Y: 10}) {
		t.Fatal("Expected press on twisty to report a change")
	}
	if !row.Expanded() {
		t.Errorf("Expected row expanded")
	}
	if len(notified) != 1 || !notified[0] {
		t.Errorf("Expected one expand notification, got %v", notified)
	}
	if len(dir.setSkipped) != 0 {
		t.Errorf("Expected skip state untouched")
	}
}

func TestPressOutsideDoesNothing(t *testing.T) {
	dir := &fakeDir{fakeFile: fakeFile{name: "dir", length: 10}, children: 2}
	row := paintedDirRow(t, dir)

	if NewHandler().Press(dir, row, Point{X: 150, Y: 10}) {
		t.Errorf("Expected no change")
	}
	if row.Expanded() || len(dir.setSkipped) != 0 {
		t.Errorf("Expected state untouched")
	}
}

func TestPressCheckboxOnFile(t *testing.T) {
	file := &fakeFile{name: "a.bin", length: 10}
	row := &BasicRow{}
	NewRenderer(nil, nil).Paint(newSurface(), file, Rect{W: 200, H: 20}, row, Options{})
	h := NewHandler()
	check := *row.View().CheckHit
	p := Point{X: check.X + 1, Y: check.Y + 1}

	if !h.Press(file, row, p) || !file.skipped {
		t.Errorf("Expected file skipped after first press")
	}
	if !h.Press(file, row, p) || file.skipped {
		t.Errorf("Expected file wanted after second press")
	}
}

func TestPressWithoutHitAreas(t *testing.T) {
	file := &fakeFile{name: "a.bin", length: 10}
	row := &BasicRow{}

	if NewHandler().Press(file, row, Point{X: 3, Y: 3}) {
		t.Errorf("Expected no change before the row was painted")
	}
	if file.skipped {
		t.Errorf("Expected skip flag untouched")
	}
}

func TestToggleSkipDirectory(t *testing.T) {
	tests := []struct {
		name  string
		state model.SkipState
		want  bool
	}{
		{"none skipped", model.SkipNone, true},
		{"mixed", model.SkipMixed, true},
		{"all skipped", model.SkipAll, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := &fakeDir{fakeFile: fakeFile{name: "d"}, state: tt.state, children: 2}
			ToggleSkip(dir)
			if len(dir.setSkipped) != 1 || dir.setSkipped[0] != tt.want {
				t.Errorf("Expected SetSkipped(%v), got %v", tt.want, dir.setSkipped)
			}
		})
	}
}
