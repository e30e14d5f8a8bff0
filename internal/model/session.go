package model

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

// PressSession represents a single press from press-begin to press-end
type PressSession struct {
	ID         string
	Origin     fyne.Position // press point in widget coordinates
	Phase      SessionPhase
	OverRipple bool      // whether the over-ripple was started
	StartedAt  time.Time // press-begin
	EndedAt    time.Time // press-end or cancel, zero while active
}

// NewPressSession creates an active session at origin
func NewPressSession(origin fyne.Position, now time.Time, overRipple bool) *PressSession {
	return &PressSession{
		ID:         generateSessionID(),
		Origin:     origin,
		Phase:      SessionPhaseActive,
		OverRipple: overRipple,
		StartedAt:  now,
	}
}

// End moves the session to idle. Ending an idle session does nothing.
func (ps *PressSession) End(now time.Time) {
	if !ps.Phase.IsActive() {
		return
	}
	ps.Phase = SessionPhaseIdle
	ps.EndedAt = now
}

// Duration returns how long the press was held, or 0 while still active
func (ps *PressSession) Duration() time.Duration {
	if ps.EndedAt.IsZero() {
		return 0
	}
	return ps.EndedAt.Sub(ps.StartedAt)
}

// String returns a short description used in logs
func (ps *PressSession) String() string {
	return fmt.Sprintf("%s[%s at (%.1f, %.1f)]", ps.ID, ps.Phase, ps.Origin.X, ps.Origin.Y)
}

// generateSessionID creates a time-ordered unique session ID
func generateSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
