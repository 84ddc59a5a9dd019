// Package jsonstore provides a JSON file-based implementation of TaskStore.
// It lets the CLI commands share one worklist across invocations; cross-
// process serialization uses an exclusive flock around every mutation.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/pulsemed/worklist/internal/domain"
)

// storeData represents the JSON file structure.
type storeData struct {
	Tasks map[string]*taskData `json:"tasks"`
}

// taskData is the JSON representation of a task (without ID, which is the map key).
type taskData = domain.Task

// Store implements domain.TaskStore using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; Initialize creates it.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Get retrieves a task by ID.
func (s *Store) Get(id string) (*domain.Task, error) {
	var task *domain.Task
	err := s.withLock(func(data *storeData) error {
		t, ok := data.Tasks[id]
		if !ok {
			return domain.ErrTaskNotFound
		}
		task = t
		task.ID = id
		return nil
	})
	return task, err
}

// Create stores a new task.
func (s *Store) Create(task *domain.Task) error {
	return s.withLockWrite(func(data *storeData) error {
		if _, ok := data.Tasks[task.ID]; ok {
			return domain.ErrDuplicateTask
		}
		data.Tasks[task.ID] = task.Clone()
		return nil
	})
}

// CompareAndSwap applies mutate to the task if its status equals expected.
// The exclusive flock held for the whole read-mutate-write cycle gives the
// same single-winner guarantee the in-memory store gets from its mutex.
func (s *Store) CompareAndSwap(id string, expected domain.Status, mutate func(*domain.Task) error) (*domain.Task, error) {
	var updated *domain.Task
	err := s.withLockWrite(func(data *storeData) error {
		stored, ok := data.Tasks[id]
		if !ok {
			return domain.ErrTaskNotFound
		}
		if stored.Status != expected {
			return domain.ErrStatusConflict
		}

		task := stored.Clone()
		task.ID = id
		if err := mutate(task); err != nil {
			return err
		}
		data.Tasks[id] = task
		updated = task.Clone()
		return nil
	})
	return updated, err
}

// List returns a snapshot of tasks matching the filter.
func (s *Store) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func(data *storeData) error {
		for id, t := range data.Tasks {
			t.ID = id
			if filter.Matches(t) {
				tasks = append(tasks, t)
			}
		}
		return nil
	})
	return tasks, err
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	return s.write(&storeData{Tasks: make(map[string]*taskData)})
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	if data.Tasks == nil {
		data.Tasks = make(map[string]*taskData)
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements the store ports.
var (
	_ domain.TaskStore        = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
