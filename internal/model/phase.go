package model

// SessionPhase represents the state of a ripple press session
type SessionPhase string

const (
	// SessionPhaseIdle means no overlays are present
	SessionPhaseIdle SessionPhase = "Idle"

	// SessionPhaseActive means overlays are present, animating or held at their end state
	SessionPhaseActive SessionPhase = "Active"
)

// String returns the string representation of SessionPhase
func (sp SessionPhase) String() string {
	return string(sp)
}

// IsActive returns true while the overlays are attached
func (sp SessionPhase) IsActive() bool {
	return sp == SessionPhaseActive
}
