package ripple

import (
	"errors"
	"image/color"
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	if o.InitialRippleRadius != 10 {
		t.Errorf("Expected initial ripple radius 10, got %v", o.InitialRippleRadius)
	}
	if o.InitialOverRippleRadius != 5 {
		t.Errorf("Expected initial over-ripple radius 5, got %v", o.InitialOverRippleRadius)
	}
	if o.RippleDuration != 1500*time.Millisecond {
		t.Errorf("Expected ripple duration 1.5s, got %v", o.RippleDuration)
	}
	if o.OverRippleDuration != 1800*time.Millisecond {
		t.Errorf("Expected over-ripple duration 1.8s, got %v", o.OverRippleDuration)
	}
	if o.OverRippleDelay != 100*time.Millisecond {
		t.Errorf("Expected over-ripple delay 0.1s, got %v", o.OverRippleDelay)
	}
	if !o.ShowOverRipple {
		t.Error("Over-ripple should be shown by default")
	}

	_, _, _, a := o.RippleColor.RGBA()
	if a>>8 != 51 {
		t.Errorf("Expected ripple color alpha 51 (20%%), got %d", a>>8)
	}

	if err := o.Validate(); err != nil {
		t.Errorf("Default options should be valid, got %v", err)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Options)
		expected error
	}{
		{"zero ripple radius", func(o *Options) { o.InitialRippleRadius = 0 }, ErrInvalidRadius},
		{"negative over radius", func(o *Options) { o.InitialOverRippleRadius = -1 }, ErrInvalidRadius},
		{"zero ripple duration", func(o *Options) { o.RippleDuration = 0 }, ErrInvalidDuration},
		{"negative over duration", func(o *Options) { o.OverRippleDuration = -time.Second }, ErrInvalidDuration},
		{"negative delay", func(o *Options) { o.OverRippleDelay = -time.Millisecond }, ErrInvalidDelay},
		{"zero delay", func(o *Options) { o.OverRippleDelay = 0 }, nil},
	}

	for _, test := range tests {
		o := DefaultOptions()
		test.modify(&o)
		err := o.Validate()
		if test.expected == nil {
			if err != nil {
				t.Errorf("%s: expected no error, got %v", test.name, err)
			}
			continue
		}
		if !errors.Is(err, test.expected) {
			t.Errorf("%s: expected %v, got %v", test.name, test.expected, err)
		}
	}
}

func TestOptions_Normalized(t *testing.T) {
	o := Options{
		InitialRippleRadius: -3,
		OverRippleDelay:     -time.Second,
		ShowOverRipple:      false,
	}
	n := o.Normalized()

	if err := n.Validate(); err != nil {
		t.Fatalf("Normalized options should be valid, got %v", err)
	}
	if n.InitialRippleRadius != DefaultInitialRippleRadius {
		t.Errorf("Expected default radius, got %v", n.InitialRippleRadius)
	}
	if n.OverRippleDelay != DefaultOverRippleDelay {
		t.Errorf("Expected default delay, got %v", n.OverRippleDelay)
	}
	if n.RippleColor == nil || n.OverRippleColor == nil {
		t.Error("Normalized options should have colors")
	}
	if n.ShowOverRipple {
		t.Error("Normalized should not change ShowOverRipple")
	}

	custom := DefaultOptions()
	custom.RippleColor = color.NRGBA{R: 255, A: 80}
	custom.InitialRippleRadius = 22
	if got := custom.Normalized(); got.InitialRippleRadius != 22 || got.RippleColor != custom.RippleColor {
		t.Errorf("Normalized should keep valid fields, got %+v", got)
	}
}
