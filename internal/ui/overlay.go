package ui

import (
	"image/color"
	"slices"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/ytget/ripple-button/internal/ripple"
)

// overlay is one transient ripple layer. It paints its current circle into a
// raster that covers the whole button, so nothing is drawn outside the bounds.
type overlay struct {
	raster *canvas.Raster
	fill   color.Color

	anim      ripple.PathAnimation
	pressedAt time.Time
	path      ripple.Circle
	runner    *fyne.Animation
}

// newOverlay creates an overlay showing the animation's starting path
func newOverlay(fill color.Color, anim ripple.PathAnimation, pressedAt time.Time) *overlay {
	o := &overlay{
		fill:      fill,
		anim:      anim,
		pressedAt: pressedAt,
		path:      anim.From,
	}
	o.raster = canvas.NewRasterWithPixels(o.pixel)
	return o
}

// start hands the path animation to the Fyne animation runner. The runner
// covers the start offset too; the descriptor keeps the path at From until Begin.
func (o *overlay) start() {
	span := o.anim.Span(o.pressedAt)
	o.runner = fyne.NewAnimation(span, o.tick)
	o.runner.Curve = fyne.AnimationLinear
	o.runner.RepeatCount = 0
	o.runner.AutoReverse = false
	o.runner.Start()
}

// stop halts the runner; the last sampled path is kept
func (o *overlay) stop() {
	if o.runner != nil {
		o.runner.Stop()
	}
}

func (o *overlay) tick(progress float32) {
	span := o.anim.Span(o.pressedAt)
	elapsed := time.Duration(float64(span) * float64(progress))
	o.path = o.anim.Sample(o.pressedAt.Add(elapsed))
	o.raster.Refresh()
}

// pixel maps raster pixels back into widget coordinates
func (o *overlay) pixel(x, y, w, h int) color.Color {
	size := o.raster.Size()
	if w <= 0 || h <= 0 || size.Width <= 0 || size.Height <= 0 {
		return color.Transparent
	}

	ux := (float32(x) + 0.5) * size.Width / float32(w)
	uy := (float32(y) + 0.5) * size.Height / float32(h)
	origin, box := o.path.Bounds()
	if ux < origin.X || uy < origin.Y || ux > origin.X+box.Width || uy > origin.Y+box.Height {
		return color.Transparent
	}
	if o.path.Contains(ux, uy) {
		return o.fill
	}
	return color.Transparent
}

// insertBelow places obj directly beneath ref in the container's stacking order.
// It returns false, leaving the container untouched, when ref is not a child.
func insertBelow(c *fyne.Container, obj, ref fyne.CanvasObject) bool {
	return insertAt(c, obj, ref, 0)
}

// insertAbove places obj directly above ref, see insertBelow
func insertAbove(c *fyne.Container, obj, ref fyne.CanvasObject) bool {
	return insertAt(c, obj, ref, 1)
}

func insertAt(c *fyne.Container, obj, ref fyne.CanvasObject, offset int) bool {
	if c == nil || ref == nil {
		return false
	}
	idx := slices.Index(c.Objects, ref)
	if idx < 0 {
		return false
	}

	c.Objects = slices.Insert(c.Objects, idx+offset, obj)
	obj.Move(fyne.NewPos(0, 0))
	obj.Resize(c.Size())
	c.Refresh()
	return true
}
