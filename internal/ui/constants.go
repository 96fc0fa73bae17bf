package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconFolder   = "📁"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Layout sizing (FileRow / lists)
const (
	SizeLabelWidth    float32 = 84
	PercentLabelWidth float32 = 48

	NameMinWidth    float32 = 160
	RowMinHeight    float32 = 22
	BigRowMinHeight float32 = 36

	RenameEntryMinWidth float32 = 200
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Tooltip behavior
const (
	TooltipDelay    = 600 * time.Millisecond
	TooltipAutoHide = 1500 * time.Millisecond
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)

// Thumbnail sizes requested by the name column
const (
	SmallThumbnailSize = 16
	BigThumbnailSize   = 32
)
