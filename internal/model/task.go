package model

import "time"

// Task represents a unit of work executed by the task runner
type Task struct {
	ID         string
	Name       string
	Status     TaskStatus
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// Elapsed returns how long the task ran, or zero if it has not finished
func (t *Task) Elapsed() time.Duration {
	if t.StartedAt.IsZero() || t.FinishedAt.IsZero() {
		return 0
	}
	return t.FinishedAt.Sub(t.StartedAt)
}
