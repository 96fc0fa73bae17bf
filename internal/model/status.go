package model

// TaskStatus represents the status of a background task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusStarting means the worker picked the task up
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusRunning means the task body is executing
	TaskStatusRunning TaskStatus = "Running"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusStarting || ts == TaskStatusRunning
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}

// DownloadState represents the lifecycle state of a download
type DownloadState string

const (
	DownloadStateQueued      DownloadState = "Queued"
	DownloadStateDownloading DownloadState = "Downloading"
	DownloadStateSeeding     DownloadState = "Seeding"
	DownloadStatePaused      DownloadState = "Paused"
	DownloadStateStopped     DownloadState = "Stopped"
	DownloadStateError       DownloadState = "Error"
)

// String returns the string representation of DownloadState
func (ds DownloadState) String() string {
	return string(ds)
}

// IsActive reports whether the download is moving data. Only active downloads can be paused.
func (ds DownloadState) IsActive() bool {
	return ds == DownloadStateQueued || ds == DownloadStateDownloading || ds == DownloadStateSeeding
}

// IsPaused reports whether the download was paused and can be resumed
func (ds DownloadState) IsPaused() bool {
	return ds == DownloadStatePaused
}

// ParseDownloadState maps a persisted value back to a state, defaulting to Stopped
func ParseDownloadState(value string) DownloadState {
	switch DownloadState(value) {
	case DownloadStateQueued, DownloadStateDownloading, DownloadStateSeeding,
		DownloadStatePaused, DownloadStateStopped, DownloadStateError:
		return DownloadState(value)
	}
	return DownloadStateStopped
}
