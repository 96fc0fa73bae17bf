package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bitfiles/internal/model"
	"github.com/ytget/bitfiles/internal/namecell"
)

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// Progress calculation constants
const (
	MaxProgressPercent  = 100
	MinProgressPercent  = 1
	RoundingCoefficient = 0.5
)

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}

// progressPercent converts downloaded bytes into a percentage. Started files
// never show 0% and unfinished files never show 100%.
func progressPercent(downloaded, length int64) int {
	if length <= 0 {
		return MaxProgressPercent
	}
	progress := float64(downloaded) / float64(length)
	percent := int(progress*MaxProgressPercent + RoundingCoefficient)
	if percent == 0 && progress > 0 {
		percent = MinProgressPercent
	}
	if percent >= MaxProgressPercent && downloaded < length {
		percent = MaxProgressPercent - 1
	}
	return min(max(percent, 0), MaxProgressPercent)
}

// rowState is the namecell.Row of one list item
type rowState struct {
	entry    model.TreeNode
	expanded func(relPath string) bool
	expand   func(relPath string, expanded bool)
	view     namecell.RowView
}

func (s *rowState) Expanded() bool {
	if s.entry == nil || s.entry.IsLeaf() || s.expanded == nil {
		return false
	}
	return s.expanded(relPathOf(s.entry))
}

func (s *rowState) SetExpanded(expanded bool) {
	if s.entry == nil || s.expand == nil {
		return
	}
	s.expand(relPathOf(s.entry), expanded)
}

func (s *rowState) SubItemCount() int {
	if s.entry == nil {
		return 0
	}
	return s.entry.ChildCount()
}

func (s *rowState) View() *namecell.RowView {
	return &s.view
}

func relPathOf(entry model.FileEntry) string {
	if r, ok := entry.(interface{ RelPath() string }); ok {
		return r.RelPath()
	}
	return ""
}

// FileRow represents one file or directory of the files view
type FileRow struct {
	widget.BaseWidget

	state *rowState
	name  *NameCell

	sizeLabel    *widget.Label
	percentLabel *widget.Label

	onSecondary func(row *FileRow, at fyne.Position)
}

// NewFileRow creates an unbound file row
func NewFileRow(column *NameColumn, expanded func(string) bool, expand func(string, bool)) *FileRow {
	fr := &FileRow{
		state: &rowState{expanded: expanded, expand: expand},
		name:  NewNameCell(column),
	}
	fr.sizeLabel = widget.NewLabel("")
	fr.sizeLabel.Alignment = fyne.TextAlignTrailing
	fr.percentLabel = widget.NewLabel("")
	fr.percentLabel.Alignment = fyne.TextAlignTrailing
	fr.ExtendBaseWidget(fr)
	return fr
}

// SetOnSecondary sets the context menu callback
func (fr *FileRow) SetOnSecondary(fn func(row *FileRow, at fyne.Position)) {
	fr.onSecondary = fn
}

// Bind shows entry in this row
func (fr *FileRow) Bind(entry model.TreeNode) {
	fr.state.entry = entry
	fr.name.Bind(entry, fr.state)
	fr.updateLabels()
}

// Entry returns the bound entry
func (fr *FileRow) Entry() model.TreeNode {
	return fr.state.entry
}

// NameCell returns the name column cell
func (fr *FileRow) NameCell() *NameCell {
	return fr.name
}

// TappedSecondary opens the context menu
func (fr *FileRow) TappedSecondary(e *fyne.PointEvent) {
	if fr.onSecondary != nil && fr.state.entry != nil {
		fr.onSecondary(fr, e.AbsolutePosition)
	}
}

func (fr *FileRow) updateLabels() {
	entry := fr.state.entry
	if entry == nil {
		fr.sizeLabel.SetText("")
		fr.percentLabel.SetText("")
		return
	}

	fr.sizeLabel.SetText(formatFileSize(entry.Length()))
	switch {
	case entry.SkipState() == model.SkipAll:
		fr.percentLabel.Importance = widget.LowImportance
		fr.percentLabel.SetText(DashPlaceholder)
	case entry.Length() > 0 && entry.Downloaded() >= entry.Length():
		fr.percentLabel.Importance = widget.SuccessImportance
		fr.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, MaxProgressPercent))
	default:
		fr.percentLabel.Importance = widget.MediumImportance
		fr.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, progressPercent(entry.Downloaded(), entry.Length())))
	}
}

// CreateRenderer creates the widget renderer
func (fr *FileRow) CreateRenderer() fyne.WidgetRenderer {
	right := container.NewHBox(
		fixedWidth(SizeLabelWidth, fr.sizeLabel),
		fixedWidth(PercentLabelWidth, fr.percentLabel),
	)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, right, fr.name))
}
