package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
)

var (
	_ fyne.Tappable     = (*RippleButton)(nil)
	_ fyne.Disableable  = (*RippleButton)(nil)
	_ mobile.Touchable  = (*RippleButton)(nil)
	_ desktop.Mouseable = (*RippleButton)(nil)
	_ desktop.Hoverable = (*RippleButton)(nil)
)

// TouchDown handles touch down events
func (b *RippleButton) TouchDown(event *mobile.TouchEvent) {
	if event == nil {
		return
	}
	b.PressBegin(event.Position)
}

// TouchUp handles touch up events
func (b *RippleButton) TouchUp(*mobile.TouchEvent) {
	b.PressEnd()
}

// TouchCancel handles touch cancel events
func (b *RippleButton) TouchCancel(*mobile.TouchEvent) {
	b.PressEnd()
}

// MouseDown starts a ripple for the primary mouse button
func (b *RippleButton) MouseDown(event *desktop.MouseEvent) {
	if event == nil || event.Button != desktop.MouseButtonPrimary {
		return
	}
	b.PressBegin(event.Position)
}

// MouseUp ends the ripple started by the primary mouse button
func (b *RippleButton) MouseUp(event *desktop.MouseEvent) {
	if event != nil && event.Button != desktop.MouseButtonPrimary {
		return
	}
	b.PressEnd()
}

// MouseIn is part of desktop.Hoverable
func (b *RippleButton) MouseIn(*desktop.MouseEvent) {}

// MouseMoved is part of desktop.Hoverable
func (b *RippleButton) MouseMoved(*desktop.MouseEvent) {}

// MouseOut cancels the ripple when the pointer leaves a pressed button
func (b *RippleButton) MouseOut() {
	if b.Active() {
		b.PressEnd()
	}
}
