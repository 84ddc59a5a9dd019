package domain

import "testing"

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   Status
		to     Status
		expect bool
	}{
		// From pending
		{"pending -> leased", StatusPending, StatusLeased, true},
		{"pending -> completed", StatusPending, StatusCompleted, false},
		{"pending -> pending", StatusPending, StatusPending, false},

		// From leased
		{"leased -> pending", StatusLeased, StatusPending, true},
		{"leased -> completed", StatusLeased, StatusCompleted, true},
		{"leased -> leased", StatusLeased, StatusLeased, false},

		// From completed (terminal)
		{"completed -> pending", StatusCompleted, StatusPending, false},
		{"completed -> leased", StatusCompleted, StatusLeased, false},
		{"completed -> completed", StatusCompleted, StatusCompleted, false},

		// Unknown status
		{"unknown -> leased", Status("bogus"), StatusLeased, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.CanTransitionTo(tt.to)
			if got != tt.expect {
				t.Errorf("CanTransitionTo(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.expect)
			}
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	if StatusPending.IsTerminal() || StatusLeased.IsTerminal() {
		t.Error("pending and leased must not be terminal")
	}
	if !StatusCompleted.IsTerminal() {
		t.Error("completed must be terminal")
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.IsValid() {
			t.Errorf("status %s should be valid", s)
		}
	}
	if Status("archived").IsValid() {
		t.Error("unknown status should be invalid")
	}
}
