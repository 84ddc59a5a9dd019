package domain

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"   // Submitted, available for acquisition
	StatusLeased    Status = "leased"    // Exclusively claimed by one viewer
	StatusCompleted Status = "completed" // Result stored, terminal
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusLeased, StatusCompleted}
}

// transitions defines the allowed status transitions.
// Flow: pending → leased → completed
//
//	↑        ↓
//	└── (on lease expiry) ──┘
var transitions = map[Status][]Status{
	StatusPending:   {StatusLeased},
	StatusLeased:    {StatusPending, StatusCompleted},
	StatusCompleted: {},
}

// CanTransitionTo returns true if the status can transition to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the status is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusLeased, StatusCompleted:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusLeased:
		return "Leased"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}
