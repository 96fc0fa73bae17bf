package platform

// Package platform contains OS integration used by the file list: rename
// target resolution, moving file data on disk, and OS open/reveal helpers.
