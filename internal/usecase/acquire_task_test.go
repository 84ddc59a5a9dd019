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

func pendingTask(id string) *domain.Task {
	return &domain.Task{
		ID:            id,
		ReferenceCode: "ECG-" + id,
		PatientRef:    "patient-1",
		Urgency:       domain.UrgencyNormal,
		Status:        domain.StatusPending,
		SubmittedAt:   time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestAcquireTask_Execute_Success(t *testing.T) {
	store := testutil.NewMockTaskStore()
	store.Tasks["t1"] = pendingTask("t1")
	clock := &testutil.MockClock{NowTime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	uc := NewAcquireTask(store, clock, testutil.NopLogger{}, 15*time.Minute)

	out, err := uc.Execute(context.Background(), AcquireTaskInput{TaskID: "t1", Viewer: "alice"})
	require.NoError(t, err)

	task := out.Task
	assert.Equal(t, domain.StatusLeased, task.Status)
	assert.Equal(t, "alice", task.LeaseHolder)
	assert.Equal(t, clock.NowTime, task.LeasedAt)
	assert.Equal(t, clock.NowTime.Add(15*time.Minute), task.LeaseDeadline)
	assert.Zero(t, task.ExtensionCount)
}

func TestAcquireTask_Execute_NotFound(t *testing.T) {
	store := testutil.NewMockTaskStore()
	clock := &testutil.MockClock{NowTime: time.Now()}
	uc := NewAcquireTask(store, clock, testutil.NopLogger{}, 15*time.Minute)

	_, err := uc.Execute(context.Background(), AcquireTaskInput{TaskID: "missing", Viewer: "alice"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestAcquireTask_Execute_AlreadyLeased(t *testing.T) {
	store := testutil.NewMockTaskStore()
	leased := pendingTask("t1")
	leased.Status = domain.StatusLeased
	leased.LeaseHolder = "bob"
	store.Tasks["t1"] = leased
	clock := &testutil.MockClock{NowTime: time.Now()}
	uc := NewAcquireTask(store, clock, testutil.NopLogger{}, 15*time.Minute)

	_, err := uc.Execute(context.Background(), AcquireTaskInput{TaskID: "t1", Viewer: "alice"})
	assert.ErrorIs(t, err, domain.ErrAlreadyLeased)
}

func TestAcquireTask_Execute_CompletedIsAlreadyLeased(t *testing.T) {
	store := testutil.NewMockTaskStore()
	done := pendingTask("t1")
	done.Status = domain.StatusCompleted
	done.Result = "normal sinus rhythm"
	store.Tasks["t1"] = done
	clock := &testutil.MockClock{NowTime: time.Now()}
	uc := NewAcquireTask(store, clock, testutil.NopLogger{}, 15*time.Minute)

	_, err := uc.Execute(context.Background(), AcquireTaskInput{TaskID: "t1", Viewer: "alice"})
	assert.ErrorIs(t, err, domain.ErrAlreadyLeased)
}

func TestAcquireTask_Execute_NotVisible(t *testing.T) {
	store := testutil.NewMockTaskStore()
	restricted := pendingTask("t1")
	restricted.Visibility = []string{"alice"}
	store.Tasks["t1"] = restricted
	clock := &testutil.MockClock{NowTime: time.Now()}
	uc := NewAcquireTask(store, clock, testutil.NopLogger{}, 15*time.Minute)

	_, err := uc.Execute(context.Background(), AcquireTaskInput{TaskID: "t1", Viewer: "bob"})
	assert.ErrorIs(t, err, domain.ErrNotVisible)

	// The allow-listed viewer still succeeds.
	out, err := uc.Execute(context.Background(), AcquireTaskInput{TaskID: "t1", Viewer: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Task.LeaseHolder)
}

func TestAcquireTask_Execute_NotVisibleBeatsAlreadyLeased(t *testing.T) {
	store := testutil.NewMockTaskStore()
	restricted := pendingTask("t1")
	restricted.Visibility = []string{"alice"}
	restricted.Status = domain.StatusLeased
	restricted.LeaseHolder = "alice"
	store.Tasks["t1"] = restricted
	clock := &testutil.MockClock{NowTime: time.Now()}
	uc := NewAcquireTask(store, clock, testutil.NopLogger{}, 15*time.Minute)

	_, err := uc.Execute(context.Background(), AcquireTaskInput{TaskID: "t1", Viewer: "bob"})
	assert.ErrorIs(t, err, domain.ErrNotVisible, "excluded viewers must not learn lease state")
}

func TestAcquireTask_Execute_EmptyViewer(t *testing.T) {
	store := testutil.NewMockTaskStore()
	clock := &testutil.MockClock{NowTime: time.Now()}
	uc := NewAcquireTask(store, clock, testutil.NopLogger{}, 15*time.Minute)

	_, err := uc.Execute(context.Background(), AcquireTaskInput{TaskID: "t1"})
	assert.ErrorIs(t, err, domain.ErrEmptyViewer)
}
