package usecase

import (
	"context"
	"fmt"

	"github.com/pulsemed/worklist/internal/domain"
)

// GetTaskInput contains the parameters for fetching a task.
type GetTaskInput struct {
	TaskID string
	Viewer string // Viewer identity; visibility restriction applies
}

// GetTaskOutput contains the fetched task.
type GetTaskOutput struct {
	Task *domain.Task
}

// GetTask is the use case for a direct task fetch (audit/history view).
type GetTask struct {
	tasks domain.TaskStore
}

// NewGetTask creates a new GetTask use case.
func NewGetTask(tasks domain.TaskStore) *GetTask {
	return &GetTask{tasks: tasks}
}

// Execute fetches the task. A restricted task is not found for viewers
// outside its allow-list, regardless of status.
func (uc *GetTask) Execute(_ context.Context, in GetTaskInput) (*GetTaskOutput, error) {
	if in.Viewer == "" {
		return nil, domain.ErrEmptyViewer
	}

	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if !task.VisibleTo(in.Viewer) {
		return nil, domain.ErrNotVisible
	}

	return &GetTaskOutput{Task: task}, nil
}
