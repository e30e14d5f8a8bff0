package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconReset    = "↺"
	IconLanguage = "🌐"
)

// Touch target minimum size (iOS/Android guidelines)
const (
	MinTouchTargetSize float32 = 44
)

// Gallery sizing
const (
	GalleryButtonWidth  float32 = 220
	GalleryButtonHeight float32 = 64
	GalleryTallHeight   float32 = 160
	GalleryColumns              = 2
	MobileColumns               = 1
)

// Settings dialog sizing and slider ranges
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 520

	SliderRadiusMin   = 1.0
	SliderRadiusMax   = 60.0
	SliderDurationMin = 100.0  // ms
	SliderDurationMax = 5000.0 // ms
	SliderDelayMax    = 2000.0 // ms
	SliderStep        = 1.0
)

// Status line behavior
const (
	StatusAutoClear = 2 * time.Second
)
