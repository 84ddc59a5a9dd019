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

func mineFixture() *testutil.MockTaskStore {
	deadline := time.Date(2025, 3, 1, 9, 15, 0, 0, time.UTC)
	store := testutil.NewMockTaskStore()

	store.Tasks["mine-leased"] = leasedTask("mine-leased", "alice", deadline)
	store.Tasks["other-leased"] = leasedTask("other-leased", "bob", deadline)

	done := pendingTask("mine-done")
	done.Status = domain.StatusCompleted
	done.CompletedBy = "alice"
	done.Result = "normal"
	store.Tasks["mine-done"] = done

	store.Tasks["open"] = pendingTask("open")
	return store
}

func TestListMine_Execute_Leased(t *testing.T) {
	uc := NewListMine(mineFixture())

	out, err := uc.Execute(context.Background(), ListMineInput{Viewer: "alice", Status: "leased"})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "mine-leased", out.Tasks[0].ID)
}

func TestListMine_Execute_Completed(t *testing.T) {
	uc := NewListMine(mineFixture())

	out, err := uc.Execute(context.Background(), ListMineInput{Viewer: "alice", Status: "completed"})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "mine-done", out.Tasks[0].ID)
}

func TestListMine_Execute_BothWhenStatusEmpty(t *testing.T) {
	uc := NewListMine(mineFixture())

	out, err := uc.Execute(context.Background(), ListMineInput{Viewer: "alice"})
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 2)
}

func TestListMine_Execute_InvalidStatus(t *testing.T) {
	uc := NewListMine(mineFixture())

	_, err := uc.Execute(context.Background(), ListMineInput{Viewer: "alice", Status: "pending"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
