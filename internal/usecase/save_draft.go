package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/pulsemed/worklist/internal/domain"
)

// SaveDraftInput contains the parameters for saving a draft.
type SaveDraftInput struct {
	TaskID string
	Viewer string
	Draft  string // Opaque work-in-progress payload; replaces any prior draft
}

// SaveDraftOutput contains the updated task.
type SaveDraftOutput struct {
	Task *domain.Task
}

// SaveDraft is the use case for attaching work-in-progress to a leased task.
// Last write wins; there are no merge semantics. The draft is lost if the
// lease expires before completion.
type SaveDraft struct {
	tasks  domain.TaskStore
	logger domain.Logger
}

// NewSaveDraft creates a new SaveDraft use case.
func NewSaveDraft(tasks domain.TaskStore, logger domain.Logger) *SaveDraft {
	return &SaveDraft{tasks: tasks, logger: logger}
}

// Execute overwrites the draft. Only the current holder may save.
func (uc *SaveDraft) Execute(_ context.Context, in SaveDraftInput) (*SaveDraftOutput, error) {
	if in.Viewer == "" {
		return nil, domain.ErrEmptyViewer
	}

	updated, err := uc.tasks.CompareAndSwap(in.TaskID, domain.StatusLeased, func(task *domain.Task) error {
		if task.LeaseHolder != in.Viewer {
			return domain.ErrNotHolder
		}
		task.Draft = in.Draft
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrStatusConflict) {
			return nil, domain.ErrNotLeased
		}
		if errors.Is(err, domain.ErrTaskNotFound) || errors.Is(err, domain.ErrNotHolder) {
			return nil, err
		}
		return nil, fmt.Errorf("save draft: %w", err)
	}

	uc.logger.Debug(updated.ID, "draft", fmt.Sprintf("draft saved by %s", in.Viewer))
	return &SaveDraftOutput{Task: updated}, nil
}
