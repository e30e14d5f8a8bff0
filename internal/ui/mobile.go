package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MobileUI provides mobile-specific layout decisions for the gallery
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.app.Driver().Device().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := m.app.Driver().Device().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// GalleryColumns returns how many buttons fit side by side
func (m *MobileUI) GalleryColumns() int {
	if m.IsMobileDevice() && !m.IsLandscape() {
		return MobileColumns
	}
	return GalleryColumns
}

// CreateAdaptiveContainer creates a grid that adapts to the device and orientation
func (m *MobileUI) CreateAdaptiveContainer(objects ...fyne.CanvasObject) *fyne.Container {
	return container.NewAdaptiveGrid(m.GalleryColumns(), objects...)
}

// GetMobilePadding returns appropriate padding for mobile devices
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 20 // Larger padding for mobile
	}
	return 10 // Standard padding for desktop
}
