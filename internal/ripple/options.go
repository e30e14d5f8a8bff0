package ripple

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

// Default values
const (
	DefaultInitialRippleRadius     float32 = 10
	DefaultInitialOverRippleRadius float32 = 5

	DefaultRippleDuration     = 1500 * time.Millisecond
	DefaultOverRippleDuration = 1800 * time.Millisecond
	DefaultOverRippleDelay    = 100 * time.Millisecond

	DefaultShowOverRipple = true
)

// DefaultRippleColor is gray at 20% alpha
var DefaultRippleColor color.Color = color.NRGBA{R: 128, G: 128, B: 128, A: 51}

var (
	ErrInvalidRadius   = errors.New("ripple radius must be positive")
	ErrInvalidDuration = errors.New("ripple duration must be positive")
	ErrInvalidDelay    = errors.New("over-ripple delay must not be negative")
)

// Options configures the look and timing of a ripple
type Options struct {
	RippleColor     color.Color
	OverRippleColor color.Color

	InitialRippleRadius     float32
	InitialOverRippleRadius float32

	RippleDuration     time.Duration
	OverRippleDuration time.Duration

	// OverRippleDelay is measured from the press, not from the primary ripple
	OverRippleDelay time.Duration

	ShowOverRipple bool
}

// DefaultOptions returns the stock ripple configuration
func DefaultOptions() Options {
	return Options{
		RippleColor:             DefaultRippleColor,
		OverRippleColor:         DefaultRippleColor,
		InitialRippleRadius:     DefaultInitialRippleRadius,
		InitialOverRippleRadius: DefaultInitialOverRippleRadius,
		RippleDuration:          DefaultRippleDuration,
		OverRippleDuration:      DefaultOverRippleDuration,
		OverRippleDelay:         DefaultOverRippleDelay,
		ShowOverRipple:          DefaultShowOverRipple,
	}
}

// Validate reports the first invalid field, if any
func (o Options) Validate() error {
	if o.InitialRippleRadius <= 0 {
		return fmt.Errorf("initial ripple radius %v: %w", o.InitialRippleRadius, ErrInvalidRadius)
	}
	if o.InitialOverRippleRadius <= 0 {
		return fmt.Errorf("initial over-ripple radius %v: %w", o.InitialOverRippleRadius, ErrInvalidRadius)
	}
	if o.RippleDuration <= 0 {
		return fmt.Errorf("ripple duration %v: %w", o.RippleDuration, ErrInvalidDuration)
	}
	if o.OverRippleDuration <= 0 {
		return fmt.Errorf("over-ripple duration %v: %w", o.OverRippleDuration, ErrInvalidDuration)
	}
	if o.OverRippleDelay < 0 {
		return fmt.Errorf("over-ripple delay %v: %w", o.OverRippleDelay, ErrInvalidDelay)
	}
	return nil
}

// Normalized returns a copy with every invalid field replaced by its default.
// Nil colors fall back to DefaultRippleColor.
func (o Options) Normalized() Options {
	if o.RippleColor == nil {
		o.RippleColor = DefaultRippleColor
	}
	if o.OverRippleColor == nil {
		o.OverRippleColor = DefaultRippleColor
	}
	if o.InitialRippleRadius <= 0 {
		o.InitialRippleRadius = DefaultInitialRippleRadius
	}
	if o.InitialOverRippleRadius <= 0 {
		o.InitialOverRippleRadius = DefaultInitialOverRippleRadius
	}
	if o.RippleDuration <= 0 {
		o.RippleDuration = DefaultRippleDuration
	}
	if o.OverRippleDuration <= 0 {
		o.OverRippleDuration = DefaultOverRippleDuration
	}
	if o.OverRippleDelay < 0 {
		o.OverRippleDelay = DefaultOverRippleDelay
	}
	return o
}
