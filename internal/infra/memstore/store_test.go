package memstore

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pulsemed/worklist/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(id string) *domain.Task {
	return &domain.Task{
		ID:            id,
		ReferenceCode: "ECG-" + id,
		PatientRef:    "patient-1",
		Urgency:       domain.UrgencyNormal,
		Status:        domain.StatusPending,
		SubmittedAt:   time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	s := New()
	require.NoError(t, s.Create(newTask("t1")))

	got, err := s.Get("t1")
	require.NoError(t, err)
	assert.Equal(t, "ECG-t1", got.ReferenceCode)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	err = s.Create(newTask("t1"))
	assert.ErrorIs(t, err, domain.ErrDuplicateTask)
}

func TestStore_GetReturnsClone(t *testing.T) {
	s := New()
	require.NoError(t, s.Create(newTask("t1")))

	got, err := s.Get("t1")
	require.NoError(t, err)
	got.Status = domain.StatusCompleted

	again, err := s.Get("t1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, again.Status, "callers must not share memory with stored state")
}

func TestStore_CompareAndSwap(t *testing.T) {
	s := New()
	require.NoError(t, s.Create(newTask("t1")))

	updated, err := s.CompareAndSwap("t1", domain.StatusPending, func(task *domain.Task) error {
		task.Status = domain.StatusLeased
		task.LeaseHolder = "alice"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLeased, updated.Status)

	// Second swap expecting pending fails.
	_, err = s.CompareAndSwap("t1", domain.StatusPending, func(task *domain.Task) error {
		task.LeaseHolder = "bob"
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrStatusConflict)

	got, err := s.Get("t1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.LeaseHolder)
}

func TestStore_CompareAndSwap_MutatorErrorAborts(t *testing.T) {
	s := New()
	require.NoError(t, s.Create(newTask("t1")))

	_, err := s.CompareAndSwap("t1", domain.StatusPending, func(task *domain.Task) error {
		task.Status = domain.StatusLeased
		return domain.ErrNotVisible
	})
	assert.ErrorIs(t, err, domain.ErrNotVisible)

	got, err := s.Get("t1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status, "failed mutator must not commit")
}

func TestStore_CompareAndSwap_NotFound(t *testing.T) {
	s := New()
	_, err := s.CompareAndSwap("missing", domain.StatusPending, func(*domain.Task) error { return nil })
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

// TestStore_ConcurrentSwapSingleWinner fuzzes concurrent acquisition of one
// pending task: exactly one goroutine may win the pending->leased swap.
func TestStore_ConcurrentSwapSingleWinner(t *testing.T) {
	s := New()
	require.NoError(t, s.Create(newTask("t1")))

	const viewers = 64
	var wg sync.WaitGroup
	wins := make(chan string, viewers)

	for i := range viewers {
		viewer := fmt.Sprintf("viewer-%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.CompareAndSwap("t1", domain.StatusPending, func(task *domain.Task) error {
				task.Status = domain.StatusLeased
				task.LeaseHolder = viewer
				return nil
			})
			if err == nil {
				wins <- viewer
			}
		}()
	}
	wg.Wait()
	close(wins)

	var winners []string
	for w := range wins {
		winners = append(winners, w)
	}
	require.Len(t, winners, 1, "exactly one concurrent acquire may succeed")

	got, err := s.Get("t1")
	require.NoError(t, err)
	assert.Equal(t, winners[0], got.LeaseHolder)
}

func TestStore_List(t *testing.T) {
	s := New()
	require.NoError(t, s.Create(newTask("t1")))

	leased := newTask("t2")
	leased.Status = domain.StatusLeased
	leased.LeaseHolder = "alice"
	require.NoError(t, s.Create(leased))

	all, err := s.List(domain.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := s.List(domain.TaskFilter{Status: domain.StatusLeased, LeaseHolder: "alice"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "t2", mine[0].ID)

	none, err := s.List(domain.TaskFilter{Status: domain.StatusCompleted})
	require.NoError(t, err)
	assert.Empty(t, none)
}
