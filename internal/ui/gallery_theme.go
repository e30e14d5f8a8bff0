package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/ripple-button/internal/ripple"
)

// Theme color names for ripples
const (
	ColorNameRipple     fyne.ThemeColorName = "ripple"
	ColorNameOverRipple fyne.ThemeColorName = "overRipple"
)

// GalleryTheme is the compact theme of the demo gallery. It adds ripple colors
// so themed buttons can follow the light/dark variant.
type GalleryTheme struct{}

// NewGalleryTheme creates a new gallery theme
func NewGalleryTheme() fyne.Theme {
	return &GalleryTheme{}
}

// Color returns theme colors
func (t *GalleryTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameRipple:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 40}
		}
		return color.NRGBA{R: 25, G: 118, B: 210, A: 51}
	case ColorNameOverRipple:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 24}
		}
		return color.NRGBA{R: 25, G: 118, B: 210, A: 30}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for primary actions
	case theme.ColorNameButton:
		if variant == theme.VariantDark {
			return color.RGBA{R: 48, G: 48, B: 52, A: 255}
		}
		return color.RGBA{R: 232, G: 234, B: 237, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *GalleryTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GalleryTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *GalleryTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	}

	return theme.DefaultTheme().Size(name)
}

// ThemedOptions returns opts with the ripple colors taken from th.
// Themes that do not define the ripple colors leave opts unchanged.
func ThemedOptions(opts ripple.Options, th fyne.Theme, variant fyne.ThemeVariant) ripple.Options {
	if c := th.Color(ColorNameRipple, variant); !isTransparent(c) {
		opts.RippleColor = c
	}
	if c := th.Color(ColorNameOverRipple, variant); !isTransparent(c) {
		opts.OverRippleColor = c
	}
	return opts
}

func isTransparent(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}
