package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pulsemed/worklist/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	TaskID   string
	Viewer   string
	Result   string // Opaque interpretation payload (required)
	Abnormal bool   // Summary flag carried on the completion event
}

// CompleteTaskOutput contains the completed task.
type CompleteTaskOutput struct {
	Task *domain.Task
}

// CompleteTask is the use case for finalizing a task and emitting a
// completion event. Notification is fire-and-forget: it runs on its own
// goroutine after the state transition commits, and a delivery failure
// never rolls back the completion.
type CompleteTask struct {
	tasks    domain.TaskStore
	clock    domain.Clock
	notifier domain.Notifier
	logger   domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskStore, clock domain.Clock, notifier domain.Notifier, logger domain.Logger) *CompleteTask {
	return &CompleteTask{tasks: tasks, clock: clock, notifier: notifier, logger: logger}
}

// Execute stores the result and transitions the task to completed.
// Only the current holder may complete; lease fields and the draft are
// cleared, and the result is never mutated afterwards.
func (uc *CompleteTask) Execute(ctx context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	if in.Viewer == "" {
		return nil, domain.ErrEmptyViewer
	}
	if in.Result == "" {
		return nil, domain.ErrEmptyResult
	}

	now := uc.clock.Now()
	updated, err := uc.tasks.CompareAndSwap(in.TaskID, domain.StatusLeased, func(task *domain.Task) error {
		if task.LeaseHolder != in.Viewer {
			return domain.ErrNotHolder
		}
		task.Status = domain.StatusCompleted
		task.Result = in.Result
		task.CompletedBy = in.Viewer
		task.CompletedAt = now
		task.LeaseHolder = ""
		task.LeaseDeadline = time.Time{}
		task.ExtensionCount = 0
		task.Draft = ""
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrStatusConflict) {
			return nil, domain.ErrNotLeased
		}
		if errors.Is(err, domain.ErrTaskNotFound) || errors.Is(err, domain.ErrNotHolder) {
			return nil, err
		}
		return nil, fmt.Errorf("complete task: %w", err)
	}

	uc.logger.Info(updated.ID, "complete",
		fmt.Sprintf("completed by %s abnormal=%t", in.Viewer, in.Abnormal))

	event := domain.CompletionEvent{
		TaskID:        updated.ID,
		ReferenceCode: updated.ReferenceCode,
		PatientRef:    updated.PatientRef,
		CompletedBy:   in.Viewer,
		CompletedAt:   now,
		Abnormal:      in.Abnormal,
	}
	// Detach from the request context so a caller hanging up cannot cancel
	// the delivery attempt; no store lock is held here.
	notifyCtx := context.WithoutCancel(ctx)
	go func() {
		if err := uc.notifier.NotifyCompletion(notifyCtx, event); err != nil {
			uc.logger.Warn(event.TaskID, "notify",
				fmt.Sprintf("completion event delivery failed: %v", err))
		}
	}()

	return &CompleteTaskOutput{Task: updated}, nil
}
