package ripple

import (
	"math"

	"fyne.io/fyne/v2"
)

// Circle is a filled circular path in widget-local coordinates
type Circle struct {
	Center fyne.Position
	Radius float32
}

// Bounds returns the origin and size of the square the circle is inscribed in
func (c Circle) Bounds() (fyne.Position, fyne.Size) {
	origin := fyne.NewPos(c.Center.X-c.Radius, c.Center.Y-c.Radius)
	return origin, fyne.NewSize(c.Radius*2, c.Radius*2)
}

// Contains reports whether the point (x, y) lies inside or on the circle
func (c Circle) Contains(x, y float32) bool {
	dx := x - c.Center.X
	dy := y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Lerp interpolates between two circles; t is clamped to [0, 1]
func Lerp(a, b Circle, t float32) Circle {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Circle{
		Center: fyne.NewPos(
			a.Center.X+(b.Center.X-a.Center.X)*t,
			a.Center.Y+(b.Center.Y-a.Center.Y)*t,
		),
		Radius: a.Radius + (b.Radius-a.Radius)*t,
	}
}

// Diagonal returns sqrt(w² + h²) of the given size
func Diagonal(size fyne.Size) float32 {
	w := float64(size.Width)
	h := float64(size.Height)
	return float32(math.Sqrt(w*w + h*h))
}

// InitialRipplePath is the starting circle of the primary ripple
func InitialRipplePath(o Options, point fyne.Position) Circle {
	return Circle{Center: point, Radius: o.InitialRippleRadius}
}

// InitialOverRipplePath is the starting circle of the over-ripple
func InitialOverRipplePath(o Options, point fyne.Position) Circle {
	return Circle{Center: point, Radius: o.InitialOverRippleRadius}
}

// FinalRipplePath is the end circle shared by both ripples. Its radius is the
// diagonal of the widget, so it covers the whole widget from any press point.
func FinalRipplePath(size fyne.Size, point fyne.Position) Circle {
	return Circle{Center: point, Radius: Diagonal(size)}
}
