package textsurface

import (
	"fmt"
	"io"

	"github.com/ytget/bitfiles/internal/download"
	"github.com/ytget/bitfiles/internal/logging"
	"github.com/ytget/bitfiles/internal/model"
	"github.com/ytget/bitfiles/internal/namecell"
)

// DefaultWidth is the name column width in terminal columns
const DefaultWidth = 60

// PrinterOptions configure a Printer
type PrinterOptions struct {
	Cell  namecell.Options
	Width int
	// Collapsed lists directory paths that are not expanded in tree mode
	Collapsed map[string]bool
	// Obfuscate hides file names
	Obfuscate bool
}

// Printer writes a download as a table of name cells, one line per row
type Printer struct {
	opts     PrinterOptions
	renderer *namecell.Renderer
}

// NewPrinter creates a printer
func NewPrinter(opts PrinterOptions, logger *logging.Logger) *Printer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	return &Printer{
		opts:     opts,
		renderer: namecell.NewRenderer(&namecell.ColumnWidth{}, logger),
	}
}

// PreferredWidth returns the name column width, in columns, that would
// show every printed name in full
func (p *Printer) PreferredWidth() int {
	return ceilDiv(p.renderer.Column().Preferred(), CellWidth)
}

// Rows returns the entries shown for d in display order
func (p *Printer) Rows(d *download.Download) []model.FileEntry {
	var rows []model.FileEntry
	if p.opts.Cell.TreeMode {
		for _, node := range d.Tree().Visible(p.expanded) {
			rows = append(rows, node)
		}
		return rows
	}
	for _, f := range d.Files() {
		rows = append(rows, f)
	}
	return rows
}

func (p *Printer) expanded(relPath string) bool {
	return !p.opts.Collapsed[relPath]
}

// Print writes the header and one line per visible entry of d
func (p *Printer) Print(w io.Writer, d *download.Download) error {
	if _, err := fmt.Fprintf(w, "%s  %s  %s\n", d.Name(), d.State(), progress(d.Downloaded(), d.Length())); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, entry := range p.Rows(d) {
		line := p.RenderRow(entry)
		if _, err := fmt.Fprintf(w, "%s  %10s  %s\n", widths.FillRight(line, p.opts.Width), FormatSize(entry.Length()), progress(entry.Downloaded(), entry.Length())); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return nil
}

// RenderRow paints a single entry and returns the resulting line
func (p *Printer) RenderRow(entry model.FileEntry) string {
	row := &namecell.BasicRow{IsExpanded: true}
	if node, ok := entry.(model.TreeNode); ok {
		row.SubItems = node.ChildCount()
		row.IsExpanded = node.IsLeaf() || p.expanded(relPathOf(entry))
	}
	if p.opts.Obfuscate && entry != nil {
		entry = obfuscate(entry)
	}

	canvas := NewCanvas(p.opts.Width, 1)
	p.renderer.Paint(canvas, entry, canvas.Bounds(), row, p.opts.Cell)
	return canvas.Line(0)
}

func relPathOf(entry model.FileEntry) string {
	if r, ok := entry.(interface{ RelPath() string }); ok {
		return r.RelPath()
	}
	return ""
}

func obfuscate(entry model.FileEntry) model.FileEntry {
	if node, ok := entry.(model.TreeNode); ok {
		return obfuscatedNode{TreeNode: node}
	}
	return obfuscatedEntry{FileEntry: entry}
}

// obfuscatedEntry replaces the display name and keeps the rest of the entry
type obfuscatedEntry struct {
	model.FileEntry
}

func (o obfuscatedEntry) Name() string { return namecell.ObfuscatedName(o.FileEntry) }

type obfuscatedNode struct {
	model.TreeNode
}

func (o obfuscatedNode) Name() string { return namecell.ObfuscatedName(o.TreeNode) }

func progress(downloaded, length int64) string {
	if length <= 0 {
		return "100%"
	}
	return fmt.Sprintf("%d%%", downloaded*100/length)
}

// FormatSize formats a byte count with binary units
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
