package model

// Lifecycle is the pause/resume contract of the download that owns a file.
type Lifecycle interface {
	// Pause stops transfer activity and reports whether this call paused it.
	// A download that was not active returns false.
	Pause() bool
	Resume()
}

// FileEntry is one file of a download as seen by the file list.
type FileEntry interface {
	Name() string
	// Path is the current on-disk location of the file data.
	Path() string
	Length() int64
	Downloaded() int64
	IsSkipped() bool
	SetSkipped(skipped bool)
	// SetLink retargets the file to a new on-disk path and reports success.
	SetLink(target string) bool
	Download() Lifecycle
}

// TreeNode is implemented by entries shown in tree mode.
type TreeNode interface {
	FileEntry
	Depth() int
	IsLeaf() bool
	SkipState() SkipState
	ChildCount() int
}

// SkipState aggregates the skip flags below a directory node
type SkipState int

const (
	SkipNone SkipState = iota
	SkipAll
	SkipMixed
)

// String returns the string representation of SkipState
func (s SkipState) String() string {
	switch s {
	case SkipNone:
		return "none"
	case SkipAll:
		return "all"
	case SkipMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// CheckState is the checkbox shown in front of a row
type CheckState int

const (
	CheckNo CheckState = iota
	CheckYes
	CheckReadOnlyYes
	CheckMaybe
)

// IconKey returns the resource key of the checkbox image
func (c CheckState) IconKey() string {
	switch c {
	case CheckNo:
		return "check_no"
	case CheckYes:
		return "check_yes"
	case CheckReadOnlyYes:
		return "check_ro_yes"
	case CheckMaybe:
		return "check_maybe"
	default:
		return "check_no"
	}
}

// IsReadOnly reports whether the checkbox cannot be toggled
func (c CheckState) IsReadOnly() bool {
	return c == CheckReadOnlyYes
}

// ResolveCheckState derives the checkbox of an entry. Completed files
// (downloaded equals length) are read-only; directory nodes use the
// aggregate skip state and show "maybe" when children disagree.
func ResolveCheckState(entry FileEntry) CheckState {
	if entry == nil {
		return CheckNo
	}
	complete := entry.Length() == entry.Downloaded()
	if node, ok := entry.(TreeNode); ok && !node.IsLeaf() {
		switch node.SkipState() {
		case SkipAll:
			return CheckNo
		case SkipMixed:
			return CheckMaybe
		}
		if complete {
			return CheckReadOnlyYes
		}
		return CheckYes
	}
	if entry.IsSkipped() {
		return CheckNo
	}
	if complete {
		return CheckReadOnlyYes
	}
	return CheckYes
}
