package util

import "testing"

func TestStatusLabel(t *testing.T) {
	tests := map[string]string{
		"audit_assigned": "Audit Assigned",
		"in_progress":    "In Progress",
		"verified":       "Verified",
		"kit-dispatched": "Kit Dispatched",
		"":               "",
	}
	for in, want := range tests {
		if got := StatusLabel(in); got != want {
			t.Errorf("StatusLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
