package ripple

import (
	"time"

	"fyne.io/fyne/v2"
)

// PathAnimation describes a one-shot path animation from From to To.
// Before Begin it shows From; after Begin+Duration it holds To.
type PathAnimation struct {
	From     Circle
	To       Circle
	Begin    time.Time
	Duration time.Duration
	Curve    fyne.AnimationCurve
}

// NewRippleAnimation builds the primary ripple animation, starting at the press
func NewRippleAnimation(o Options, size fyne.Size, point fyne.Position, pressedAt time.Time) PathAnimation {
	return PathAnimation{
		From:     InitialRipplePath(o, point),
		To:       FinalRipplePath(size, point),
		Begin:    pressedAt,
		Duration: o.RippleDuration,
		Curve:    fyne.AnimationLinear,
	}
}

// NewOverRippleAnimation builds the over-ripple animation, starting OverRippleDelay after the press
func NewOverRippleAnimation(o Options, size fyne.Size, point fyne.Position, pressedAt time.Time) PathAnimation {
	return PathAnimation{
		From:     InitialOverRipplePath(o, point),
		To:       FinalRipplePath(size, point),
		Begin:    pressedAt.Add(o.OverRippleDelay),
		Duration: o.OverRippleDuration,
		Curve:    fyne.AnimationLinear,
	}
}

// End returns the moment the animation reaches To
func (a PathAnimation) End() time.Time {
	return a.Begin.Add(a.Duration)
}

// Span returns how long the animation runs when started at from, delay included
func (a PathAnimation) Span(from time.Time) time.Duration {
	span := a.End().Sub(from)
	if span < 0 {
		return 0
	}
	return span
}

// Progress returns the eased progress at now, in [0, 1]
func (a PathAnimation) Progress(now time.Time) float32 {
	if now.Before(a.Begin) {
		return 0
	}
	if a.Duration <= 0 || !now.Before(a.End()) {
		return 1
	}

	t := float32(now.Sub(a.Begin)) / float32(a.Duration)
	if a.Curve != nil {
		t = a.Curve(t)
	}
	return t
}

// Sample returns the path shown at now
func (a PathAnimation) Sample(now time.Time) Circle {
	return Lerp(a.From, a.To, a.Progress(now))
}
