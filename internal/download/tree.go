package download

import (
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ytget/bitfiles/internal/model"
	"github.com/ytget/bitfiles/internal/platform"
)

// moveFile is swapped in tests to simulate filesystem failures
var moveFile = platform.MoveFile

// Node is a directory inside a download. Its skip state and sizes aggregate
// over every file below it.
type Node struct {
	dl       *Download
	name     string
	relPath  string
	depth    int
	children []model.TreeNode
}

func buildTree(d *Download) *Node {
	root := &Node{dl: d, depth: -1}
	dirs := map[string]*Node{"": root}

	var dirFor func(rel string) *Node
	dirFor = func(rel string) *Node {
		if n, ok := dirs[rel]; ok {
			return n
		}
		parentRel := path.Dir(rel)
		if parentRel == "." {
			parentRel = ""
		}
		parent := dirFor(parentRel)
		n := &Node{
			dl:      d,
			name:    path.Base(rel),
			relPath: rel,
			depth:   parent.depth + 1,
		}
		parent.children = append(parent.children, n)
		dirs[rel] = n
		return n
	}

	for _, f := range d.files {
		parentRel := path.Dir(f.relPath)
		if parentRel == "." {
			parentRel = ""
		}
		parent := dirFor(parentRel)
		parent.children = append(parent.children, f)
	}

	root.sortChildren()
	return root
}

// sortChildren orders directories before files, each by name
func (n *Node) sortChildren() {
	sort.SliceStable(n.children, func(i, j int) bool {
		a, b := n.children[i], n.children[j]
		if a.IsLeaf() != b.IsLeaf() {
			return !a.IsLeaf()
		}
		return strings.ToLower(entryKey(a)) < strings.ToLower(entryKey(b))
	})
	for _, child := range n.children {
		if dir, ok := child.(*Node); ok {
			dir.sortChildren()
		}
	}
}

func entryKey(n model.TreeNode) string {
	switch v := n.(type) {
	case *Node:
		return v.relPath
	case *File:
		return v.relPath
	}
	return n.Name()
}

// RelPath returns the slash-separated directory path inside the download
func (n *Node) RelPath() string { return n.relPath }

func (n *Node) Name() string {
	if n.depth < 0 {
		return n.dl.name
	}
	return n.name
}

func (n *Node) Path() string {
	return filepath.Join(n.dl.root, filepath.FromSlash(n.relPath))
}

func (n *Node) Length() int64 {
	var total int64
	n.walkFiles(func(f *File) { total += f.Length() })
	return total
}

func (n *Node) Downloaded() int64 {
	var total int64
	n.walkFiles(func(f *File) { total += f.Downloaded() })
	return total
}

// IsSkipped reports whether every file below the node is skipped
func (n *Node) IsSkipped() bool {
	return n.SkipState() == model.SkipAll
}

// SetSkipped applies the flag to every file below the node
func (n *Node) SetSkipped(skipped bool) {
	n.walkFiles(func(f *File) { f.SetSkipped(skipped) })
}

// SetLink is not supported for directories
func (n *Node) SetLink(string) bool { return false }

func (n *Node) Download() model.Lifecycle { return n.dl }

func (n *Node) Depth() int      { return n.depth }
func (n *Node) IsLeaf() bool    { return false }
func (n *Node) ChildCount() int { return len(n.children) }

// Children returns the direct children, directories first
func (n *Node) Children() []model.TreeNode {
	out := make([]model.TreeNode, len(n.children))
	copy(out, n.children)
	return out
}

// SkipState aggregates the skip flags of all descendant files
func (n *Node) SkipState() model.SkipState {
	total, skipped := 0, 0
	n.walkFiles(func(f *File) {
		total++
		if f.IsSkipped() {
			skipped++
		}
	})
	switch {
	case total == 0 || skipped == 0:
		return model.SkipNone
	case skipped == total:
		return model.SkipAll
	default:
		return model.SkipMixed
	}
}

func (n *Node) walkFiles(fn func(*File)) {
	for _, child := range n.children {
		switch v := child.(type) {
		case *File:
			fn(v)
		case *Node:
			v.walkFiles(fn)
		}
	}
}

// Visible flattens the tree depth-first. Children of a directory are only
// included when isExpanded returns true for its relative path.
func (n *Node) Visible(isExpanded func(relPath string) bool) []model.TreeNode {
	var out []model.TreeNode
	var walk func(node *Node)
	walk = func(node *Node) {
		for _, child := range node.children {
			out = append(out, child)
			if dir, ok := child.(*Node); ok && isExpanded != nil && isExpanded(dir.relPath) {
				walk(dir)
			}
		}
	}
	walk(n)
	return out
}

// Directories returns the relative paths of every directory node
func (n *Node) Directories() []string {
	var out []string
	var walk func(node *Node)
	walk = func(node *Node) {
		for _, child := range node.children {
			if dir, ok := child.(*Node); ok {
				out = append(out, dir.relPath)
				walk(dir)
			}
		}
	}
	walk(n)
	return out
}

// Lookup finds the file or directory at relPath below n
func (n *Node) Lookup(relPath string) (model.TreeNode, bool) {
	rel, err := cleanRelPath(relPath)
	if err != nil {
		return nil, false
	}
	if f, ok := n.dl.File(rel); ok {
		return f, true
	}
	var found model.TreeNode
	var walk func(node *Node) bool
	walk = func(node *Node) bool {
		for _, child := range node.children {
			if dir, ok := child.(*Node); ok {
				if dir.relPath == rel {
					found = dir
					return true
				}
				if walk(dir) {
					return true
				}
			}
		}
		return false
	}
	walk(n)
	return found, found != nil
}
