package model

// Package model defines the press session state shared by the ripple widget:
// the session phase enum and the PressSession record created on press-begin
// and closed on press-end or cancel.
