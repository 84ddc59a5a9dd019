package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poolTask(id string, urgency Urgency, submitted time.Time) *Task {
	return &Task{
		ID:            id,
		ReferenceCode: "ECG-" + id,
		Urgency:       urgency,
		Status:        StatusPending,
		SubmittedAt:   submitted,
	}
}

func TestAvailablePool_Ordering(t *testing.T) {
	t1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	// Submission order deliberately scrambles urgency order.
	tasks := []*Task{
		poolTask("a", UrgencyNormal, t1),
		poolTask("b", UrgencyCritical, t2),
		poolTask("c", UrgencyUrgent, t3),
	}

	pool := AvailablePool(tasks, "viewer")
	require.Len(t, pool, 3)
	assert.Equal(t, "b", pool[0].ID, "critical first regardless of submission order")
	assert.Equal(t, "c", pool[1].ID)
	assert.Equal(t, "a", pool[2].ID)
}

func TestAvailablePool_OldestFirstWithinBand(t *testing.T) {
	t1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tasks := []*Task{
		poolTask("late", UrgencyUrgent, t1.Add(time.Minute)),
		poolTask("early", UrgencyUrgent, t1),
	}

	pool := AvailablePool(tasks, "viewer")
	require.Len(t, pool, 2)
	assert.Equal(t, "early", pool[0].ID)
	assert.Equal(t, "late", pool[1].ID)
}

func TestAvailablePool_FiltersNonPending(t *testing.T) {
	t1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	leased := poolTask("leased", UrgencyCritical, t1)
	leased.Status = StatusLeased
	completed := poolTask("done", UrgencyCritical, t1)
	completed.Status = StatusCompleted

	pool := AvailablePool([]*Task{leased, completed, poolTask("open", UrgencyNormal, t1)}, "viewer")
	require.Len(t, pool, 1)
	assert.Equal(t, "open", pool[0].ID)
}

func TestAvailablePool_FiltersRestrictedTasks(t *testing.T) {
	t1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	restricted := poolTask("restricted", UrgencyCritical, t1)
	restricted.Visibility = []string{"alice"}

	alicePool := AvailablePool([]*Task{restricted}, "alice")
	assert.Len(t, alicePool, 1)

	bobPool := AvailablePool([]*Task{restricted}, "bob")
	assert.Empty(t, bobPool)
}

func TestAvailablePool_Deterministic(t *testing.T) {
	t1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	// Identical urgency and submission time; reference code breaks the tie.
	tasks := []*Task{
		poolTask("b", UrgencyNormal, t1),
		poolTask("a", UrgencyNormal, t1),
	}

	first := AvailablePool(tasks, "viewer")
	second := AvailablePool(tasks, "viewer")
	require.Len(t, first, 2)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, "a", first[0].ID)
}

func TestAvailablePool_DoesNotMutateInput(t *testing.T) {
	t1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tasks := []*Task{
		poolTask("a", UrgencyNormal, t1),
		poolTask("b", UrgencyCritical, t1),
	}

	_ = AvailablePool(tasks, "viewer")
	assert.Equal(t, "a", tasks[0].ID, "input slice order must be preserved")
}
