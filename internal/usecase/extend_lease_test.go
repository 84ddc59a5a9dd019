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

func leasedTask(id, holder string, deadline time.Time) *domain.Task {
	task := pendingTask(id)
	task.Status = domain.StatusLeased
	task.LeaseHolder = holder
	task.LeasedAt = deadline.Add(-15 * time.Minute)
	task.LeaseDeadline = deadline
	return task
}

func TestExtendLease_Execute_CompoundsFromCurrentDeadline(t *testing.T) {
	deadline := time.Date(2025, 3, 1, 9, 15, 0, 0, time.UTC)
	store := testutil.NewMockTaskStore()
	store.Tasks["t1"] = leasedTask("t1", "alice", deadline)
	uc := NewExtendLease(store, testutil.NopLogger{}, 10*time.Minute)

	// Two extensions in quick succession add to the deadline, they do not
	// reset it to now + duration.
	out, err := uc.Execute(context.Background(), ExtendLeaseInput{TaskID: "t1", Viewer: "alice"})
	require.NoError(t, err)
	assert.Equal(t, deadline.Add(10*time.Minute), out.Task.LeaseDeadline)
	assert.Equal(t, 1, out.Task.ExtensionCount)

	out, err = uc.Execute(context.Background(), ExtendLeaseInput{TaskID: "t1", Viewer: "alice"})
	require.NoError(t, err)
	assert.Equal(t, deadline.Add(20*time.Minute), out.Task.LeaseDeadline)
	assert.Equal(t, 2, out.Task.ExtensionCount)
}

func TestExtendLease_Execute_Unbounded(t *testing.T) {
	// No cap on extensions: the reference behavior trusts the analyst.
	deadline := time.Date(2025, 3, 1, 9, 15, 0, 0, time.UTC)
	store := testutil.NewMockTaskStore()
	store.Tasks["t1"] = leasedTask("t1", "alice", deadline)
	uc := NewExtendLease(store, testutil.NopLogger{}, 10*time.Minute)

	for range 100 {
		_, err := uc.Execute(context.Background(), ExtendLeaseInput{TaskID: "t1", Viewer: "alice"})
		require.NoError(t, err)
	}

	got, err := store.Get("t1")
	require.NoError(t, err)
	assert.Equal(t, 100, got.ExtensionCount)
	assert.Equal(t, deadline.Add(1000*time.Minute), got.LeaseDeadline)
}

func TestExtendLease_Execute_NotHolder(t *testing.T) {
	deadline := time.Date(2025, 3, 1, 9, 15, 0, 0, time.UTC)
	store := testutil.NewMockTaskStore()
	store.Tasks["t1"] = leasedTask("t1", "alice", deadline)
	uc := NewExtendLease(store, testutil.NopLogger{}, 10*time.Minute)

	_, err := uc.Execute(context.Background(), ExtendLeaseInput{TaskID: "t1", Viewer: "bob"})
	assert.ErrorIs(t, err, domain.ErrNotHolder)

	got, err := store.Get("t1")
	require.NoError(t, err)
	assert.Equal(t, deadline, got.LeaseDeadline, "failed extension must not move the deadline")
}

func TestExtendLease_Execute_NotLeased(t *testing.T) {
	store := testutil.NewMockTaskStore()
	store.Tasks["t1"] = pendingTask("t1")
	uc := NewExtendLease(store, testutil.NopLogger{}, 10*time.Minute)

	_, err := uc.Execute(context.Background(), ExtendLeaseInput{TaskID: "t1", Viewer: "alice"})
	assert.ErrorIs(t, err, domain.ErrNotLeased)
}

func TestExtendLease_Execute_NotFound(t *testing.T) {
	store := testutil.NewMockTaskStore()
	uc := NewExtendLease(store, testutil.NopLogger{}, 10*time.Minute)

	_, err := uc.Execute(context.Background(), ExtendLeaseInput{TaskID: "missing", Viewer: "alice"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
