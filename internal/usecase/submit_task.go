// Package usecase implements the engine's operations over the domain ports.
package usecase

import (
	"context"
	"fmt"

	"github.com/pulsemed/worklist/internal/domain"
)

// SubmitTaskInput contains the parameters for submitting a task.
type SubmitTaskInput struct {
	PatientRef      string   // Opaque patient reference (required)
	ClinicalContext string   // Opaque clinical payload
	Urgency         string   // normal, urgent or critical; empty = normal
	Visibility      []string // Allow-list of viewers; empty = visible to all
}

// SubmitTaskOutput contains the result of submitting a task.
type SubmitTaskOutput struct {
	Task *domain.Task // The created task
}

// SubmitTask is the use case for the intake collaborator: it creates a task
// in the pending pool with a generated id and reference code.
type SubmitTask struct {
	tasks  domain.TaskStore
	clock  domain.Clock
	logger domain.Logger
}

// NewSubmitTask creates a new SubmitTask use case.
func NewSubmitTask(tasks domain.TaskStore, clock domain.Clock, logger domain.Logger) *SubmitTask {
	return &SubmitTask{tasks: tasks, clock: clock, logger: logger}
}

// Execute creates the task.
func (uc *SubmitTask) Execute(_ context.Context, in SubmitTaskInput) (*SubmitTaskOutput, error) {
	if in.PatientRef == "" {
		return nil, domain.ErrEmptyPatientRef
	}

	urgency, err := domain.ParseUrgency(in.Urgency)
	if err != nil {
		return nil, fmt.Errorf("parse urgency %q: %w", in.Urgency, err)
	}

	now := uc.clock.Now()
	task := &domain.Task{
		ID:              domain.NewTaskID(),
		ReferenceCode:   domain.NewReferenceCode(now),
		PatientRef:      in.PatientRef,
		ClinicalContext: in.ClinicalContext,
		Urgency:         urgency,
		Status:          domain.StatusPending,
		Visibility:      in.Visibility,
		SubmittedAt:     now,
	}

	if err := uc.tasks.Create(task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	uc.logger.Info(task.ID, "intake",
		fmt.Sprintf("submitted %s urgency=%s", task.ReferenceCode, task.Urgency))
	return &SubmitTaskOutput{Task: task}, nil
}
