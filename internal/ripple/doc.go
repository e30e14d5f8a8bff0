package ripple

// Package ripple holds the pure geometry and timing behind the ripple effect:
// circle paths built around a press point, the bounds-covering final radius,
// and the linear path animations the widget hands to the Fyne animation runner.
