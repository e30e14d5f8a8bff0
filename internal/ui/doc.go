package ui

// Package ui contains the Fyne widgets of the module: RippleButton with its
// overlays and input adapters, plus the demo gallery, its settings dialog,
// theme and localized strings.
