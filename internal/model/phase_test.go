package model

import "testing"

func TestSessionPhase_IsActive(t *testing.T) {
	tests := []struct {
		phase    SessionPhase
		expected bool
	}{
		{SessionPhaseIdle, false},
		{SessionPhaseActive, true},
		{SessionPhase(""), false},
	}

	for _, test := range tests {
		result := test.phase.IsActive()
		if result != test.expected {
			t.Errorf("SessionPhase(%s).IsActive() = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestSessionPhase_String(t *testing.T) {
	phase := SessionPhaseActive
	expected := "Active"
	result := phase.String()

	if result != expected {
		t.Errorf("SessionPhase.String() = %s, expected %s", result, expected)
	}
}
