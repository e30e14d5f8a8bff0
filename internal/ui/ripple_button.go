package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ripple-button/internal/model"
	"github.com/ytget/ripple-button/internal/ripple"
)

// RippleButton is a tappable button that shows an expanding circle from the
// press point, optionally followed by a delayed over-ripple.
type RippleButton struct {
	widget.DisableableWidget

	OnTapped func() `json:"-"`

	content fyne.CanvasObject
	options ripple.Options

	// layers is the visual stack: background, ripple, content, over-ripple
	layers     *fyne.Container
	background *canvas.Rectangle

	session *model.PressSession
	ripple  *overlay
	over    *overlay

	now func() time.Time
}

// NewRippleButton creates a ripple button with a centered text label
func NewRippleButton(label string, tapped func()) *RippleButton {
	text := widget.NewLabel(label)
	text.Alignment = fyne.TextAlignCenter
	return NewRippleButtonWithContent(container.NewCenter(text), tapped)
}

// NewRippleButtonWithContent creates a ripple button around arbitrary content.
// The content stays visible between the ripple and the over-ripple.
func NewRippleButtonWithContent(content fyne.CanvasObject, tapped func()) *RippleButton {
	b := &RippleButton{
		OnTapped: tapped,
		content:  content,
		options:  ripple.DefaultOptions(),
		now:      time.Now,
	}
	b.ExtendBaseWidget(b)
	return b
}

// Options returns the options applied to the next press
func (b *RippleButton) Options() ripple.Options {
	return b.options
}

// SetOptions replaces the ripple options. A session already running keeps the
// options it started with.
func (b *RippleButton) SetOptions(o ripple.Options) {
	if err := o.Validate(); err != nil {
		log.Printf("Warning: invalid ripple options, using defaults for bad fields: %v", err)
	}
	b.options = o.Normalized()
}

// Content returns the foreground content
func (b *RippleButton) Content() fyne.CanvasObject {
	return b.content
}

// Active reports whether a press session is running
func (b *RippleButton) Active() bool {
	return b.session != nil && b.session.Phase.IsActive()
}

// Session returns the current or last press session, nil before the first press
func (b *RippleButton) Session() *model.PressSession {
	return b.session
}

// Overlays returns the number of ripple overlays currently in the visual stack
func (b *RippleButton) Overlays() int {
	if b.layers == nil {
		return 0
	}

	count := 0
	for _, obj := range b.layers.Objects {
		if b.isOverlay(obj) {
			count++
		}
	}
	return count
}

func (b *RippleButton) isOverlay(obj fyne.CanvasObject) bool {
	return (b.ripple != nil && obj == fyne.CanvasObject(b.ripple.raster)) ||
		(b.over != nil && obj == fyne.CanvasObject(b.over.raster))
}

// PressBegin starts a ripple session at p, given in widget coordinates.
// A session still running is ended first.
func (b *RippleButton) PressBegin(p fyne.Position) {
	if b.Disabled() {
		return
	}
	b.ensureLayers()
	b.PressEnd()

	o := b.options
	size := b.Size()
	pressedAt := b.now()

	b.session = model.NewPressSession(p, pressedAt, o.ShowOverRipple)
	log.Printf("Ripple session %s begin at (%.1f, %.1f) size=%.0fx%.0f",
		b.session.ID, p.X, p.Y, size.Width, size.Height)

	b.ripple = newOverlay(o.RippleColor, ripple.NewRippleAnimation(o, size, p, pressedAt), pressedAt)
	if insertBelow(b.layers, b.ripple.raster, b.content) {
		b.ripple.start()
	} else {
		log.Printf("Warning: ripple overlay not inserted for session %s: no content layer", b.session.ID)
	}

	if !o.ShowOverRipple {
		return
	}

	b.over = newOverlay(o.OverRippleColor, ripple.NewOverRippleAnimation(o, size, p, pressedAt), pressedAt)
	if insertAbove(b.layers, b.over.raster, b.content) {
		b.over.start()
	} else {
		log.Printf("Warning: over-ripple overlay not inserted for session %s: no content layer", b.session.ID)
	}
}

// PressEnd removes both overlays whatever state their animations are in
func (b *RippleButton) PressEnd() {
	for _, o := range []*overlay{b.ripple, b.over} {
		if o == nil {
			continue
		}
		o.stop()
		if b.layers != nil {
			b.layers.Remove(o.raster)
		}
	}
	b.ripple = nil
	b.over = nil

	if b.session != nil && b.session.Phase.IsActive() {
		b.session.End(b.now())
		log.Printf("Ripple session %s end after %v", b.session.ID, b.session.Duration())
	}
}

// Tapped is called when the button is tapped
func (b *RippleButton) Tapped(*fyne.PointEvent) {
	if b.Disabled() {
		return
	}
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

// Disable disables the button and drops any running ripple
func (b *RippleButton) Disable() {
	b.PressEnd()
	b.DisableableWidget.Disable()
}

// CreateRenderer creates the widget renderer
func (b *RippleButton) CreateRenderer() fyne.WidgetRenderer {
	b.ensureLayers()
	return &rippleButtonRenderer{button: b}
}

// ensureLayers builds the visual stack on first use
func (b *RippleButton) ensureLayers() {
	if b.layers != nil {
		return
	}

	b.background = canvas.NewRectangle(theme.Color(theme.ColorNameButton))
	objects := []fyne.CanvasObject{b.background}
	if b.content != nil {
		objects = append(objects, b.content)
	}
	b.layers = container.NewStack(objects...)
}

// rippleButtonRenderer renders the ripple button
type rippleButtonRenderer struct {
	button *RippleButton
}

// Layout arranges the visual stack over the whole button
func (r *rippleButtonRenderer) Layout(size fyne.Size) {
	r.button.layers.Resize(size)
}

// MinSize returns the content size plus padding, never below a touch target
func (r *rippleButtonRenderer) MinSize() fyne.Size {
	padding := r.button.Theme().Size(theme.SizeNameInnerPadding)

	min := fyne.NewSize(padding*2, padding*2)
	if r.button.content != nil {
		min = min.Add(r.button.content.MinSize())
	}
	return min.Max(fyne.NewSize(MinTouchTargetSize, MinTouchTargetSize))
}

// Refresh updates the background for the current theme and state
func (r *rippleButtonRenderer) Refresh() {
	th := r.button.Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	name := theme.ColorNameButton
	if r.button.Disabled() {
		name = theme.ColorNameDisabledButton
	}
	r.button.background.FillColor = th.Color(name, variant)
	r.button.background.Refresh()
	r.button.layers.Refresh()
}

// Objects returns the visual stack
func (r *rippleButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.button.layers}
}

// Destroy ends any running session so no animation outlives the renderer
func (r *rippleButtonRenderer) Destroy() {
	r.button.PressEnd()
}
