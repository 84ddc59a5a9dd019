package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/pulsemed/worklist/internal/domain"
)

// ListMineInput contains the parameters for listing a viewer's own tasks.
type ListMineInput struct {
	Viewer string // Viewer identity (required)
	Status string // "leased" or "completed"; empty = both
}

// ListMineOutput contains the viewer's tasks.
type ListMineOutput struct {
	Tasks []*domain.Task
}

// ListMine is the use case for listing tasks currently leased by, or
// completed by, a viewer.
type ListMine struct {
	tasks domain.TaskStore
}

// NewListMine creates a new ListMine use case.
func NewListMine(tasks domain.TaskStore) *ListMine {
	return &ListMine{tasks: tasks}
}

// Execute lists the viewer's tasks for the requested status.
func (uc *ListMine) Execute(_ context.Context, in ListMineInput) (*ListMineOutput, error) {
	if in.Viewer == "" {
		return nil, domain.ErrEmptyViewer
	}

	var filters []domain.TaskFilter
	switch domain.Status(in.Status) {
	case domain.StatusLeased:
		filters = []domain.TaskFilter{{Status: domain.StatusLeased, LeaseHolder: in.Viewer}}
	case domain.StatusCompleted:
		filters = []domain.TaskFilter{{Status: domain.StatusCompleted, CompletedBy: in.Viewer}}
	case "":
		filters = []domain.TaskFilter{
			{Status: domain.StatusLeased, LeaseHolder: in.Viewer},
			{Status: domain.StatusCompleted, CompletedBy: in.Viewer},
		}
	default:
		return nil, domain.ErrInvalidStatus
	}

	var tasks []*domain.Task
	for _, f := range filters {
		matched, err := uc.tasks.List(f)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		tasks = append(tasks, matched...)
	}

	// Newest activity first for a stable, readable listing.
	slices.SortStableFunc(tasks, func(a, b *domain.Task) int {
		return b.SubmittedAt.Compare(a.SubmittedAt)
	})

	return &ListMineOutput{Tasks: tasks}, nil
}
