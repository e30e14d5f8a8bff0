package ripple

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
)

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestDiagonal(t *testing.T) {
	tests := []struct {
		size     fyne.Size
		expected float32
	}{
		{fyne.NewSize(3, 4), 5},
		{fyne.NewSize(100, 200), 223.6068},
		{fyne.NewSize(0, 0), 0},
		{fyne.NewSize(50, 0), 50},
	}

	for _, test := range tests {
		result := Diagonal(test.size)
		if !approxEqual(result, test.expected) {
			t.Errorf("Diagonal(%v) = %v, expected %v", test.size, result, test.expected)
		}
	}
}

func TestFinalRipplePath(t *testing.T) {
	tests := []struct {
		size  fyne.Size
		point fyne.Position
	}{
		{fyne.NewSize(100, 200), fyne.NewPos(50, 100)},
		{fyne.NewSize(100, 200), fyne.NewPos(0, 0)},
		{fyne.NewSize(320, 48), fyne.NewPos(319, 47)},
		{fyne.NewSize(1, 1), fyne.NewPos(0.5, 0.5)},
	}

	for _, test := range tests {
		c := FinalRipplePath(test.size, test.point)
		w, h := float64(test.size.Width), float64(test.size.Height)
		expected := float32(math.Sqrt(w*w + h*h))
		if !approxEqual(c.Radius, expected) {
			t.Errorf("FinalRipplePath(%v, %v) radius = %v, expected %v", test.size, test.point, c.Radius, expected)
		}
		if c.Center != test.point {
			t.Errorf("FinalRipplePath(%v, %v) center = %v", test.size, test.point, c.Center)
		}
	}
}

func TestFinalRipplePath_CoversBounds(t *testing.T) {
	size := fyne.NewSize(100, 200)
	corners := []fyne.Position{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 200}, {X: 100, Y: 200}}

	for _, p := range []fyne.Position{{X: 0, Y: 0}, {X: 50, Y: 100}, {X: 100, Y: 200}, {X: 13, Y: 170}} {
		c := FinalRipplePath(size, p)
		for _, corner := range corners {
			if !c.Contains(corner.X, corner.Y) {
				t.Errorf("final circle at %v does not cover corner %v", p, corner)
			}
		}
	}
}

func TestFinalRipplePath_Degenerate(t *testing.T) {
	c := FinalRipplePath(fyne.NewSize(0, 0), fyne.NewPos(0, 0))
	if c.Radius != 0 {
		t.Errorf("Expected radius 0 for empty bounds, got %v", c.Radius)
	}
	if !c.Contains(0, 0) {
		t.Error("Degenerate circle should still contain its center")
	}
}

func TestInitialPaths(t *testing.T) {
	o := DefaultOptions()
	o.InitialRippleRadius = 12
	o.InitialOverRippleRadius = 3
	p := fyne.NewPos(40, 7)

	ripple := InitialRipplePath(o, p)
	if ripple.Radius != 12 || ripple.Center != p {
		t.Errorf("InitialRipplePath = %+v, expected radius 12 at %v", ripple, p)
	}

	over := InitialOverRipplePath(o, p)
	if over.Radius != 3 || over.Center != p {
		t.Errorf("InitialOverRipplePath = %+v, expected radius 3 at %v", over, p)
	}
}

func TestCircle_Bounds(t *testing.T) {
	c := Circle{Center: fyne.NewPos(50, 100), Radius: 10}
	origin, size := c.Bounds()

	if origin != fyne.NewPos(40, 90) {
		t.Errorf("Expected origin (40,90), got %v", origin)
	}
	if size != fyne.NewSize(20, 20) {
		t.Errorf("Expected size 20x20, got %v", size)
	}
}

func TestLerp(t *testing.T) {
	a := Circle{Center: fyne.NewPos(0, 0), Radius: 10}
	b := Circle{Center: fyne.NewPos(10, 20), Radius: 110}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(t=0) = %+v, expected %+v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(t=1) = %+v, expected %+v", got, b)
	}
	if got := Lerp(a, b, -1); got != a {
		t.Errorf("Lerp(t=-1) should clamp to start, got %+v", got)
	}
	if got := Lerp(a, b, 2); got != b {
		t.Errorf("Lerp(t=2) should clamp to end, got %+v", got)
	}

	mid := Lerp(a, b, 0.5)
	if !approxEqual(mid.Radius, 60) || !approxEqual(mid.Center.X, 5) || !approxEqual(mid.Center.Y, 10) {
		t.Errorf("Lerp(t=0.5) = %+v", mid)
	}
}
