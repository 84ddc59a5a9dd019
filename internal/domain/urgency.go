package domain

// Urgency represents the clinical priority of a task.
// It is fixed at submission; a task does not escalate by aging.
type Urgency string

const (
	UrgencyNormal   Urgency = "normal"
	UrgencyUrgent   Urgency = "urgent"
	UrgencyCritical Urgency = "critical"
)

// AllUrgencies returns all valid urgency values, lowest rank first.
func AllUrgencies() []Urgency {
	return []Urgency{UrgencyNormal, UrgencyUrgent, UrgencyCritical}
}

// Rank returns the ordering weight of the urgency. Higher sorts first.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 3
	case UrgencyUrgent:
		return 2
	case UrgencyNormal:
		return 1
	default:
		return 0
	}
}

// IsValid returns true if the urgency is a known valid value.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyNormal, UrgencyUrgent, UrgencyCritical:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the urgency.
func (u Urgency) Display() string {
	switch u {
	case UrgencyNormal:
		return "Normal"
	case UrgencyUrgent:
		return "Urgent"
	case UrgencyCritical:
		return "Critical"
	default:
		return string(u)
	}
}

// ParseUrgency converts a string into an Urgency.
// An empty string defaults to normal.
func ParseUrgency(s string) (Urgency, error) {
	if s == "" {
		return UrgencyNormal, nil
	}
	u := Urgency(s)
	if !u.IsValid() {
		return "", ErrInvalidUrgency
	}
	return u, nil
}
