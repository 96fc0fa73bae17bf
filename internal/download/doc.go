package download

// Package download models a download as seen by the file list: its files,
// the directory tree built from their paths, pause/resume of the transfer,
// retargeting file data on disk, a YAML manifest that persists the file
// table, and a filesystem watcher that keeps downloaded byte counts current.
