package domain

import (
	"slices"
	"strings"
)

// AvailablePool returns the pending tasks the viewer may see, in presentation
// order. It is pure: the input slice is not modified.
func AvailablePool(tasks []*Task, viewer string) []*Task {
	pool := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != StatusPending {
			continue
		}
		if !t.VisibleTo(viewer) {
			continue
		}
		pool = append(pool, t)
	}
	SortPool(pool)
	return pool
}

// SortPool orders tasks by urgency rank descending (critical first), then
// submission time ascending (first-in-first-served within a band), then
// reference code, making the order a deterministic total order.
func SortPool(pool []*Task) {
	slices.SortStableFunc(pool, func(a, b *Task) int {
		if d := b.Urgency.Rank() - a.Urgency.Rank(); d != 0 {
			return d
		}
		if d := a.SubmittedAt.Compare(b.SubmittedAt); d != 0 {
			return d
		}
		return strings.Compare(a.ReferenceCode, b.ReferenceCode)
	})
}
