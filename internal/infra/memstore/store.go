// Package memstore provides an in-memory implementation of TaskStore.
// It is the default backend for serve mode; state is process-scoped.
package memstore

import (
	"sync"

	"github.com/pulsemed/worklist/internal/domain"
)

// Store implements domain.TaskStore with a mutex-guarded map.
// All read-modify-write cycles run inside one critical section, so a
// CompareAndSwap either observes the expected status and commits, or fails
// with ErrStatusConflict; two concurrent swaps can never both win.
type Store struct {
	tasks map[string]*domain.Task
	mu    sync.Mutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{tasks: make(map[string]*domain.Task)}
}

// Get retrieves a task by ID.
func (s *Store) Get(id string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return task.Clone(), nil
}

// Create stores a new task.
func (s *Store) Create(task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.ID]; ok {
		return domain.ErrDuplicateTask
	}
	s.tasks[task.ID] = task.Clone()
	return nil
}

// CompareAndSwap applies mutate to the task if its status equals expected.
func (s *Store) CompareAndSwap(id string, expected domain.Status, mutate func(*domain.Task) error) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if stored.Status != expected {
		return nil, domain.ErrStatusConflict
	}

	// Mutate a clone so a failing mutator leaves the stored task untouched.
	updated := stored.Clone()
	if err := mutate(updated); err != nil {
		return nil, err
	}
	s.tasks[id] = updated
	return updated.Clone(), nil
}

// List returns a snapshot of tasks matching the filter.
func (s *Store) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []*domain.Task
	for _, t := range s.tasks {
		if filter.Matches(t) {
			tasks = append(tasks, t.Clone())
		}
	}
	return tasks, nil
}

// Initialize is a no-op for the in-memory store.
func (s *Store) Initialize() error {
	return nil
}

// Ensure Store implements the store ports.
var (
	_ domain.TaskStore        = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
