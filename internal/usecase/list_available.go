package usecase

import (
	"context"
	"fmt"

	"github.com/pulsemed/worklist/internal/domain"
)

// ListAvailableInput contains the parameters for listing the pool.
type ListAvailableInput struct {
	Viewer string // Viewer identity (required)
}

// ListAvailableOutput contains the viewer's pool in presentation order.
type ListAvailableOutput struct {
	Tasks []*domain.Task
}

// ListAvailable is the use case for querying the pool of acquirable tasks.
type ListAvailable struct {
	tasks domain.TaskStore
}

// NewListAvailable creates a new ListAvailable use case.
func NewListAvailable(tasks domain.TaskStore) *ListAvailable {
	return &ListAvailable{tasks: tasks}
}

// Execute returns the pending tasks visible to the viewer, ordered by
// urgency (critical first) and submission time (oldest first).
func (uc *ListAvailable) Execute(_ context.Context, in ListAvailableInput) (*ListAvailableOutput, error) {
	if in.Viewer == "" {
		return nil, domain.ErrEmptyViewer
	}

	tasks, err := uc.tasks.List(domain.TaskFilter{Status: domain.StatusPending})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return &ListAvailableOutput{Tasks: domain.AvailablePool(tasks, in.Viewer)}, nil
}
