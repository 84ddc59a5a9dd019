// Package domain contains core business entities and interfaces.
package domain

import (
	"slices"
	"time"
)

// Task represents one ECG interpretation request tracked by the engine.
// Fields are ordered to minimize memory padding.
type Task struct {
	SubmittedAt     time.Time `json:"submittedAt"`               // When the task entered the pool
	LeasedAt        time.Time `json:"leasedAt,omitzero"`         // When the current/last lease was taken
	LeaseDeadline   time.Time `json:"leaseDeadline,omitzero"`    // Lease expiry; zero unless status is leased
	CompletedAt     time.Time `json:"completedAt,omitzero"`      // When the result was stored
	ReferenceCode   string    `json:"referenceCode"`             // Human-readable unique code
	PatientRef      string    `json:"patientRef"`                // Opaque patient reference
	ClinicalContext string    `json:"clinicalContext,omitempty"` // Opaque clinical payload
	LeaseHolder     string    `json:"leaseHolder,omitempty"`     // Viewer holding the lease; empty unless leased
	Draft           string    `json:"draft,omitempty"`           // Work-in-progress payload; only while leased
	Result          string    `json:"result,omitempty"`          // Final payload; set once on completion
	CompletedBy     string    `json:"completedBy,omitempty"`     // Viewer who completed the task
	Urgency         Urgency   `json:"urgency"`                   // Immutable after submission
	Status          Status    `json:"status"`                    // Current lifecycle state
	Visibility      []string  `json:"visibility,omitempty"`      // Allow-list of viewers; empty = visible to all
	ID              string    `json:"-"`                         // Task ID (stored as map key, not in value)
	ExtensionCount  int       `json:"extensionCount,omitempty"`  // Number of lease extensions taken
}

// VisibleTo returns true if the viewer may see this task.
// An empty allow-list makes the task visible to everyone.
func (t *Task) VisibleTo(viewer string) bool {
	if len(t.Visibility) == 0 {
		return true
	}
	return slices.Contains(t.Visibility, viewer)
}

// HeldBy returns true if the task is leased and viewer holds the lease.
func (t *Task) HeldBy(viewer string) bool {
	return t.Status == StatusLeased && t.LeaseHolder == viewer
}

// LeaseExpired returns true if the task is leased and its deadline has passed.
func (t *Task) LeaseExpired(now time.Time) bool {
	return t.Status == StatusLeased && !t.LeaseDeadline.After(now)
}

// Clone returns a deep copy of the task.
// Stores hand out clones so callers never share memory with stored state.
func (t *Task) Clone() *Task {
	c := *t
	c.Visibility = slices.Clone(t.Visibility)
	return &c
}
