package namecell

// Package namecell renders and drives the name column of the file list.
//
// The renderer paints one row into a Surface: tree indent and twisty,
// the tri-state checkbox, an optional file-type thumbnail and the name.
// While painting it records where the twisty and checkbox are so the
// Handler can hit-test pointer events against the same row later. The
// Editor validates and applies inline renames. Nothing here depends on a
// toolkit; the Fyne widget and the terminal printer provide surfaces.
