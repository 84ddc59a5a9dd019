package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrAlreadyLeased   = errors.New("task already leased")
	ErrNotVisible      = errors.New("task not visible to viewer")
	ErrNotLeased       = errors.New("task not leased")
	ErrNotHolder       = errors.New("viewer does not hold the lease")
	ErrStatusConflict  = errors.New("task status changed concurrently")
	ErrDuplicateTask   = errors.New("task already exists")
	ErrInvalidUrgency  = errors.New("invalid urgency")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrEmptyViewer     = errors.New("viewer cannot be empty")
	ErrEmptyPatientRef = errors.New("patient reference cannot be empty")
	ErrEmptyResult     = errors.New("result cannot be empty")
	ErrNotInitialized  = errors.New("store not initialized (run 'worklist init' first)")
)
