package usecase

import (
	"context"
	"testing"

	"github.com/pulsemed/worklist/internal/domain"
	"github.com/pulsemed/worklist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTask_Execute(t *testing.T) {
	store := testutil.NewMockTaskStore()
	store.Tasks["t1"] = pendingTask("t1")

	restricted := pendingTask("t2")
	restricted.Visibility = []string{"alice"}
	store.Tasks["t2"] = restricted

	uc := NewGetTask(store)

	out, err := uc.Execute(context.Background(), GetTaskInput{TaskID: "t1", Viewer: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "t1", out.Task.ID)

	_, err = uc.Execute(context.Background(), GetTaskInput{TaskID: "t2", Viewer: "bob"})
	assert.ErrorIs(t, err, domain.ErrNotVisible)

	_, err = uc.Execute(context.Background(), GetTaskInput{TaskID: "missing", Viewer: "bob"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
