package taskrun

import (
	"context"

	"github.com/ytget/bitfiles/internal/model"
)

// Executor defines the interface for the task execution service.
type Executor interface {
	SetUpdateCallback(func(*model.Task))
	// Run queues fn and blocks until it returned. The error is fn's error.
	Run(ctx context.Context, name string, fn func(ctx context.Context) error) error
	GetTask(taskID string) (*model.Task, bool)
	Tasks() []*model.Task
	Close()
}
