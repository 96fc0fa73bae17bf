package taskrun

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/bitfiles/internal/logging"
	"github.com/ytget/bitfiles/internal/model"
)

// ErrStopped is returned by Run once the service was closed.
var ErrStopped = errors.New("task runner stopped")

const (
	TaskIDPrefix  = "task-"
	QueueCapacity = 16
	// MaxFinishedTasks bounds how many finished tasks are kept for inspection
	MaxFinishedTasks = 64
)

type job struct {
	task   *model.Task
	ctx    context.Context
	fn     func(ctx context.Context) error
	result chan error
}

// Service runs tasks one at a time on its own goroutine
type Service struct {
	tasks      map[string]*model.Task
	tasksMutex sync.RWMutex
	onUpdate   func(*model.Task) // callback for UI updates

	queue    chan *job
	done     chan struct{}
	closeMu  sync.RWMutex
	closed   bool
	workerWG sync.WaitGroup

	logger *logging.Logger
}

// NewService creates a task service and starts its worker
func NewService(logger *logging.Logger) Executor {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Service{
		tasks:  make(map[string]*model.Task),
		queue:  make(chan *job, QueueCapacity),
		done:   make(chan struct{}),
		logger: logger.Component("taskrun"),
	}
	s.workerWG.Add(1)
	go s.worker()
	return s
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.Task)) {
	s.tasksMutex.Lock()
	s.onUpdate = callback
	s.tasksMutex.Unlock()
}

// Run queues fn on the worker and waits for it to finish
func (s *Service) Run(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	if fn == nil {
		return fmt.Errorf("task %q has no body", name)
	}

	task := &model.Task{
		ID:     generateTaskID(),
		Name:   name,
		Status: model.TaskStatusPending,
	}
	j := &job{task: task, ctx: ctx, fn: fn, result: make(chan error, 1)}

	s.closeMu.RLock()
	if s.closed {
		s.closeMu.RUnlock()
		return ErrStopped
	}
	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	select {
	case s.queue <- j:
	case <-ctx.Done():
		s.closeMu.RUnlock()
		s.setTaskError(task, ctx.Err())
		return ctx.Err()
	}
	s.closeMu.RUnlock()

	return <-j.result
}

// GetTask returns a task by ID
func (s *Service) GetTask(taskID string) (*model.Task, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	return task, exists
}

// Tasks returns a snapshot of known tasks ordered by ID (creation time for v7 IDs)
func (s *Service) Tasks() []*model.Task {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	out := make([]*model.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		copied := *task
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Close stops the worker. Queued tasks that did not start fail with ErrStopped.
func (s *Service) Close() {
	s.closeMu.Lock()
	if s.closed {
		s.closeMu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	s.closeMu.Unlock()

	s.workerWG.Wait()
}

func (s *Service) worker() {
	defer s.workerWG.Done()
	for {
		select {
		case j := <-s.queue:
			s.execute(j)
		case <-s.done:
			s.drain()
			return
		}
	}
}

func (s *Service) drain() {
	for {
		select {
		case j := <-s.queue:
			s.setTaskError(j.task, ErrStopped)
			j.result <- ErrStopped
		default:
			return
		}
	}
}

// execute performs a single task on the worker goroutine
func (s *Service) execute(j *job) {
	s.tasksMutex.Lock()
	j.task.Status = model.TaskStatusStarting
	j.task.StartedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(j.task)

	s.tasksMutex.Lock()
	j.task.Status = model.TaskStatusRunning
	s.tasksMutex.Unlock()
	s.notifyUpdate(j.task)

	s.logger.Debug().Str("task", j.task.ID).Str("name", j.task.Name).Msg("task started")

	err := s.call(j)
	if err != nil {
		s.logger.Warn().Str("task", j.task.ID).Str("name", j.task.Name).Err(err).Msg("task failed")
		s.setTaskError(j.task, err)
	} else {
		s.tasksMutex.Lock()
		j.task.Status = model.TaskStatusCompleted
		j.task.FinishedAt = time.Now()
		s.tasksMutex.Unlock()
		s.notifyUpdate(j.task)
	}

	s.pruneFinished()
	j.result <- err
}

// call runs the task body and turns a panic into an error
func (s *Service) call(j *job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %q panicked: %v", j.task.Name, r)
		}
	}()
	return j.fn(j.ctx)
}

// setTaskError sets an error state for a task
func (s *Service) setTaskError(task *model.Task, err error) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

func (s *Service) pruneFinished() {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if len(s.tasks) <= MaxFinishedTasks {
		return
	}
	finished := make([]*model.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if task.Status.IsFinished() {
			finished = append(finished, task)
		}
	}
	sort.Slice(finished, func(i, j int) bool { return finished[i].FinishedAt.Before(finished[j].FinishedAt) })
	for _, task := range finished {
		if len(s.tasks) <= MaxFinishedTasks {
			break
		}
		delete(s.tasks, task.ID)
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.Task) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	copied := *task
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(&copied)
	}
}

// generateTaskID generates a unique task ID using UUID v7 so IDs sort by creation time
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
