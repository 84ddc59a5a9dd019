package domain

import (
	"context"
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error
}

// TaskStore holds the canonical task collection.
// Implementations must serialize mutations per task so that two concurrent
// CompareAndSwap calls on the same task cannot both observe the expected
// status; this is the only place the single-holder invariant is enforced.
type TaskStore interface {
	// Get retrieves a task by ID. Returns ErrTaskNotFound if absent.
	Get(id string) (*Task, error)

	// Create stores a new task. Returns ErrDuplicateTask if the ID is taken.
	Create(task *Task) error

	// CompareAndSwap applies mutate to the task only if its current status
	// equals expected; otherwise it fails with ErrStatusConflict. The mutate
	// function runs inside the store's critical section and may itself fail,
	// aborting the swap. Returns the updated task on success.
	CompareAndSwap(id string, expected Status, mutate func(*Task) error) (*Task, error)

	// List returns a snapshot of tasks matching the filter.
	List(filter TaskFilter) ([]*Task, error)
}

// TaskFilter specifies criteria for listing tasks.
type TaskFilter struct {
	Status      Status // "" = all statuses
	LeaseHolder string // "" = any holder
	CompletedBy string // "" = any completer
}

// Matches returns true if the task satisfies the filter.
func (f TaskFilter) Matches(t *Task) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.LeaseHolder != "" && t.LeaseHolder != f.LeaseHolder {
		return false
	}
	if f.CompletedBy != "" && t.CompletedBy != f.CompletedBy {
		return false
	}
	return true
}

// CompletionEvent is emitted to the notification collaborator when a task
// completes. Delivery is best-effort; failure never rolls back completion.
type CompletionEvent struct {
	CompletedAt   time.Time `json:"completedAt"`
	TaskID        string    `json:"taskID"`
	ReferenceCode string    `json:"referenceCode"`
	PatientRef    string    `json:"patientRef"`
	CompletedBy   string    `json:"completedBy"`
	Abnormal      bool      `json:"abnormal"`
}

// Notifier delivers completion events to an external collaborator.
type Notifier interface {
	NotifyCompletion(ctx context.Context, event CompletionEvent) error
}

// Logger records engine activity to the audit logs.
// taskID selects the per-task audit file; empty logs only globally.
type Logger interface {
	Debug(taskID, category, msg string)
	Info(taskID, category, msg string)
	Warn(taskID, category, msg string)
	Error(taskID, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
