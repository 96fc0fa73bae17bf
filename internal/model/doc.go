package model

// Package model defines the domain types shared across the app: file entries
// and tree nodes of a download, the lifecycle contract of the owning download,
// skip and check states, and status enums for downloads and background tasks.
