package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pulsemed/worklist/internal/domain"
)

// ExpireLeasesInput contains the parameters for one expiry pass.
type ExpireLeasesInput struct{}

// ExpireLeasesOutput contains the tasks returned to the pool.
type ExpireLeasesOutput struct {
	Reclaimed []*domain.Task
}

// ExpireLeases is the use case behind the sweeper: one pass scans leased
// tasks and returns the lapsed ones to the pending pool, clearing lease
// fields and any unsaved draft. This is the engine's sole failure-recovery
// mechanism for abandoned work.
type ExpireLeases struct {
	tasks  domain.TaskStore
	clock  domain.Clock
	logger domain.Logger
}

// NewExpireLeases creates a new ExpireLeases use case.
func NewExpireLeases(tasks domain.TaskStore, clock domain.Clock, logger domain.Logger) *ExpireLeases {
	return &ExpireLeases{tasks: tasks, clock: clock, logger: logger}
}

// Execute runs one expiry pass.
func (uc *ExpireLeases) Execute(_ context.Context, _ ExpireLeasesInput) (*ExpireLeasesOutput, error) {
	leased, err := uc.tasks.List(domain.TaskFilter{Status: domain.StatusLeased})
	if err != nil {
		return nil, fmt.Errorf("list leased tasks: %w", err)
	}

	now := uc.clock.Now()
	out := &ExpireLeasesOutput{}
	for _, candidate := range leased {
		if !candidate.LeaseExpired(now) {
			continue
		}

		holder := candidate.LeaseHolder
		updated, err := uc.tasks.CompareAndSwap(candidate.ID, domain.StatusLeased, func(task *domain.Task) error {
			// Re-check under the lock: an extension may have landed since
			// the snapshot was taken.
			if !task.LeaseExpired(now) {
				return domain.ErrStatusConflict
			}
			task.Status = domain.StatusPending
			task.LeaseHolder = ""
			task.LeaseDeadline = time.Time{}
			task.LeasedAt = time.Time{}
			task.ExtensionCount = 0
			task.Draft = ""
			return nil
		})
		if err != nil {
			// The task completed, was re-leased, or was extended between the
			// snapshot and the swap. Expected race; the next tick catches
			// anything still lapsed.
			if errors.Is(err, domain.ErrStatusConflict) || errors.Is(err, domain.ErrTaskNotFound) {
				continue
			}
			return nil, fmt.Errorf("expire lease %s: %w", candidate.ID, err)
		}

		uc.logger.Info(updated.ID, "sweep",
			fmt.Sprintf("lease held by %s expired, task returned to pool", holder))
		out.Reclaimed = append(out.Reclaimed, updated)
	}

	return out, nil
}
