// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/pulsemed/worklist/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockTaskStore is a test double for domain.TaskStore.
// Fields are ordered to minimize memory padding.
type MockTaskStore struct {
	Tasks     map[string]*domain.Task
	CreateErr error
	GetErr    error
	ListErr   error
	SwapErr   error
	mu        sync.Mutex
}

// NewMockTaskStore creates a new MockTaskStore with an initialized map.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{Tasks: make(map[string]*domain.Task)}
}

// Get retrieves a task by ID.
func (m *MockTaskStore) Get(id string) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	task, ok := m.Tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return task.Clone(), nil
}

// Create stores a new task.
func (m *MockTaskStore) Create(task *domain.Task) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Tasks[task.ID]; ok {
		return domain.ErrDuplicateTask
	}
	m.Tasks[task.ID] = task.Clone()
	return nil
}

// CompareAndSwap applies mutate if the stored status equals expected.
func (m *MockTaskStore) CompareAndSwap(id string, expected domain.Status, mutate func(*domain.Task) error) (*domain.Task, error) {
	if m.SwapErr != nil {
		return nil, m.SwapErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.Tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if stored.Status != expected {
		return nil, domain.ErrStatusConflict
	}
	updated := stored.Clone()
	if err := mutate(updated); err != nil {
		return nil, err
	}
	m.Tasks[id] = updated
	return updated.Clone(), nil
}

// List returns tasks matching the filter.
func (m *MockTaskStore) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var tasks []*domain.Task
	for _, t := range m.Tasks {
		if filter.Matches(t) {
			tasks = append(tasks, t.Clone())
		}
	}
	return tasks, nil
}

// MockNotifier is a test double for domain.Notifier.
type MockNotifier struct {
	Events    []domain.CompletionEvent
	NotifyErr error
	mu        sync.Mutex
	done      chan struct{}
}

// NewMockNotifier creates a new MockNotifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{done: make(chan struct{}, 16)}
}

// NotifyCompletion records the event.
func (m *MockNotifier) NotifyCompletion(_ context.Context, event domain.CompletionEvent) error {
	m.mu.Lock()
	m.Events = append(m.Events, event)
	m.mu.Unlock()
	m.done <- struct{}{}
	return m.NotifyErr
}

// WaitForEvent blocks until a notification arrives or the timeout elapses.
// Completion notifications run on their own goroutine, so tests synchronize
// here instead of sleeping.
func (m *MockNotifier) WaitForEvent(timeout time.Duration) bool {
	select {
	case <-m.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Recorded returns a snapshot of the recorded events.
func (m *MockNotifier) Recorded() []domain.CompletionEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.CompletionEvent, len(m.Events))
	copy(out, m.Events)
	return out
}

// NopLogger is a no-op test double for domain.Logger.
type NopLogger struct{}

// Debug does nothing.
func (NopLogger) Debug(_, _, _ string) {}

// Info does nothing.
func (NopLogger) Info(_, _, _ string) {}

// Warn does nothing.
func (NopLogger) Warn(_, _, _ string) {}

// Error does nothing.
func (NopLogger) Error(_, _, _ string) {}

// Ensure mocks implement the domain ports.
var (
	_ domain.TaskStore = (*MockTaskStore)(nil)
	_ domain.Notifier  = (*MockNotifier)(nil)
	_ domain.Clock     = (*MockClock)(nil)
	_ domain.Logger    = NopLogger{}
)
