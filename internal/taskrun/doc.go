package taskrun

// Package taskrun executes background work on a dedicated worker goroutine.
// Callers hand over a function and block until it finished, while the
// service tracks each unit as a model.Task and reports status changes.
