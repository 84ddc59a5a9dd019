package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pulsemed/worklist/internal/domain"
)

// ExtendLeaseInput contains the parameters for extending a lease.
type ExtendLeaseInput struct {
	TaskID string
	Viewer string
}

// ExtendLeaseOutput contains the task with its new deadline.
type ExtendLeaseOutput struct {
	Task *domain.Task
}

// ExtendLease is the use case for pushing a lease deadline out.
// Each call adds the extension duration to the current deadline, so rapid
// repeated calls compound rather than resetting to now + duration. There is
// no cap on the extension count; the holder is trusted.
type ExtendLease struct {
	tasks     domain.TaskStore
	logger    domain.Logger
	extension time.Duration
}

// NewExtendLease creates a new ExtendLease use case.
func NewExtendLease(tasks domain.TaskStore, logger domain.Logger, extension time.Duration) *ExtendLease {
	return &ExtendLease{tasks: tasks, logger: logger, extension: extension}
}

// Execute extends the lease. Only the current holder may extend.
func (uc *ExtendLease) Execute(_ context.Context, in ExtendLeaseInput) (*ExtendLeaseOutput, error) {
	if in.Viewer == "" {
		return nil, domain.ErrEmptyViewer
	}

	updated, err := uc.tasks.CompareAndSwap(in.TaskID, domain.StatusLeased, func(task *domain.Task) error {
		if task.LeaseHolder != in.Viewer {
			return domain.ErrNotHolder
		}
		task.LeaseDeadline = task.LeaseDeadline.Add(uc.extension)
		task.ExtensionCount++
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrStatusConflict) {
			return nil, domain.ErrNotLeased
		}
		if errors.Is(err, domain.ErrTaskNotFound) || errors.Is(err, domain.ErrNotHolder) {
			return nil, err
		}
		return nil, fmt.Errorf("extend lease: %w", err)
	}

	uc.logger.Info(updated.ID, "lease",
		fmt.Sprintf("extended by %s to %s (extension #%d)",
			in.Viewer, updated.LeaseDeadline.Format(time.RFC3339), updated.ExtensionCount))
	return &ExtendLeaseOutput{Task: updated}, nil
}
