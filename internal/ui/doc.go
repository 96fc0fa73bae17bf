package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It shows the files of a download as a list or tree, wires the name column to
// the namecell renderer and editor, and hosts settings and notifications.
// All UI strings are localized via Localization.
