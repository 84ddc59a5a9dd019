package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/pulsemed/worklist/internal/domain"
	"github.com/pulsemed/worklist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitTask_Execute_Success(t *testing.T) {
	store := testutil.NewMockTaskStore()
	clock := &testutil.MockClock{NowTime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	uc := NewSubmitTask(store, clock, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), SubmitTaskInput{
		PatientRef:      "patient-7",
		ClinicalContext: "routine 12-lead",
		Urgency:         "urgent",
		Visibility:      []string{"alice", "bob"},
	})
	require.NoError(t, err)

	task := out.Task
	assert.NotEmpty(t, task.ID)
	assert.Regexp(t, `^ECG-20250301-[0-9A-F]{8}$`, task.ReferenceCode)
	assert.Equal(t, domain.StatusPending, task.Status)
	assert.Equal(t, domain.UrgencyUrgent, task.Urgency)
	assert.Equal(t, clock.NowTime, task.SubmittedAt)
	assert.Equal(t, []string{"alice", "bob"}, task.Visibility)

	stored, err := store.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ReferenceCode, stored.ReferenceCode)
}

func TestSubmitTask_Execute_DefaultsToNormalUrgency(t *testing.T) {
	store := testutil.NewMockTaskStore()
	clock := &testutil.MockClock{NowTime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	uc := NewSubmitTask(store, clock, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), SubmitTaskInput{PatientRef: "patient-1"})
	require.NoError(t, err)
	assert.Equal(t, domain.UrgencyNormal, out.Task.Urgency)
}

func TestSubmitTask_Execute_Validation(t *testing.T) {
	store := testutil.NewMockTaskStore()
	clock := &testutil.MockClock{NowTime: time.Now()}
	uc := NewSubmitTask(store, clock, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), SubmitTaskInput{Urgency: "normal"})
	assert.ErrorIs(t, err, domain.ErrEmptyPatientRef)

	_, err = uc.Execute(context.Background(), SubmitTaskInput{PatientRef: "p", Urgency: "asap"})
	assert.ErrorIs(t, err, domain.ErrInvalidUrgency)
}
