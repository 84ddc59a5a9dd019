package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pulsemed/worklist/internal/domain"
)

// AcquireTaskInput contains the parameters for acquiring a lease.
type AcquireTaskInput struct {
	TaskID string
	Viewer string
}

// AcquireTaskOutput contains the leased task.
type AcquireTaskOutput struct {
	Task *domain.Task
}

// AcquireTask is the use case for taking a time-boxed exclusive claim on a
// pending task. The store's compare-and-swap guarantees a single winner when
// several viewers race for the same task.
type AcquireTask struct {
	tasks    domain.TaskStore
	clock    domain.Clock
	logger   domain.Logger
	duration time.Duration
}

// NewAcquireTask creates a new AcquireTask use case.
func NewAcquireTask(tasks domain.TaskStore, clock domain.Clock, logger domain.Logger, duration time.Duration) *AcquireTask {
	return &AcquireTask{tasks: tasks, clock: clock, logger: logger, duration: duration}
}

// Execute leases the task to the viewer until now + the lease duration.
func (uc *AcquireTask) Execute(_ context.Context, in AcquireTaskInput) (*AcquireTaskOutput, error) {
	if in.Viewer == "" {
		return nil, domain.ErrEmptyViewer
	}

	now := uc.clock.Now()
	updated, err := uc.tasks.CompareAndSwap(in.TaskID, domain.StatusPending, func(task *domain.Task) error {
		// Visibility is immutable, so checking inside the swap also covers
		// the plain read path.
		if !task.VisibleTo(in.Viewer) {
			return domain.ErrNotVisible
		}
		task.Status = domain.StatusLeased
		task.LeaseHolder = in.Viewer
		task.LeasedAt = now
		task.LeaseDeadline = now.Add(uc.duration)
		task.ExtensionCount = 0
		return nil
	})
	if err != nil {
		// A lost race or an already leased/completed task surface the same
		// way to the caller: pick another task from the pool.
		if errors.Is(err, domain.ErrStatusConflict) {
			return nil, uc.classifyConflict(in)
		}
		if errors.Is(err, domain.ErrTaskNotFound) || errors.Is(err, domain.ErrNotVisible) {
			return nil, err
		}
		return nil, fmt.Errorf("acquire task: %w", err)
	}

	uc.logger.Info(updated.ID, "lease",
		fmt.Sprintf("acquired by %s until %s", in.Viewer, updated.LeaseDeadline.Format(time.RFC3339)))
	return &AcquireTaskOutput{Task: updated}, nil
}

// classifyConflict keeps the visibility rule authoritative even when the
// task is no longer pending: an excluded viewer gets ErrNotVisible, everyone
// else gets ErrAlreadyLeased.
func (uc *AcquireTask) classifyConflict(in AcquireTaskInput) error {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return err
	}
	if !task.VisibleTo(in.Viewer) {
		return domain.ErrNotVisible
	}
	return domain.ErrAlreadyLeased
}
