package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/ripple-button/internal/ripple"
)

// Settings keys for Fyne preferences
const (
	KeyRippleColor             = "ripple_color"
	KeyOverRippleColor         = "over_ripple_color"
	KeyInitialRippleRadius     = "initial_ripple_radius"
	KeyInitialOverRippleRadius = "initial_over_ripple_radius"
	KeyRippleDuration          = "ripple_duration_ms"
	KeyOverRippleDuration      = "over_ripple_duration_ms"
	KeyOverRippleDelay         = "over_ripple_delay_ms"
	KeyShowOverRipple          = "show_over_ripple"
	KeyLanguage                = "app_language"
)

// Default values
const (
	DefaultLanguage = "system"
)

// ErrInvalidColor is returned for color strings that are not #RRGGBB or #RRGGBBAA
var ErrInvalidColor = errors.New("invalid hex color")

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// RippleOptions returns the stored ripple options, falling back to defaults
func (s *Settings) RippleOptions() ripple.Options {
	prefs := s.app.Preferences()
	def := ripple.DefaultOptions()

	o := ripple.Options{
		RippleColor:             s.colorWithFallback(KeyRippleColor, def.RippleColor),
		OverRippleColor:         s.colorWithFallback(KeyOverRippleColor, def.OverRippleColor),
		InitialRippleRadius:     float32(prefs.FloatWithFallback(KeyInitialRippleRadius, float64(def.InitialRippleRadius))),
		InitialOverRippleRadius: float32(prefs.FloatWithFallback(KeyInitialOverRippleRadius, float64(def.InitialOverRippleRadius))),
		RippleDuration:          msWithFallback(prefs, KeyRippleDuration, def.RippleDuration),
		OverRippleDuration:      msWithFallback(prefs, KeyOverRippleDuration, def.OverRippleDuration),
		OverRippleDelay:         msWithFallback(prefs, KeyOverRippleDelay, def.OverRippleDelay),
		ShowOverRipple:          prefs.BoolWithFallback(KeyShowOverRipple, def.ShowOverRipple),
	}
	return o.Normalized()
}

// SetRippleOptions stores the ripple options; invalid fields are stored as defaults
func (s *Settings) SetRippleOptions(o ripple.Options) {
	o = o.Normalized()
	prefs := s.app.Preferences()

	prefs.SetString(KeyRippleColor, FormatHexColor(o.RippleColor))
	prefs.SetString(KeyOverRippleColor, FormatHexColor(o.OverRippleColor))
	prefs.SetFloat(KeyInitialRippleRadius, float64(o.InitialRippleRadius))
	prefs.SetFloat(KeyInitialOverRippleRadius, float64(o.InitialOverRippleRadius))
	prefs.SetInt(KeyRippleDuration, int(o.RippleDuration.Milliseconds()))
	prefs.SetInt(KeyOverRippleDuration, int(o.OverRippleDuration.Milliseconds()))
	prefs.SetInt(KeyOverRippleDelay, int(o.OverRippleDelay.Milliseconds()))
	prefs.SetBool(KeyShowOverRipple, o.ShowOverRipple)
}

// Reset removes the stored ripple options so defaults apply again
func (s *Settings) Reset() {
	prefs := s.app.Preferences()
	for _, key := range []string{
		KeyRippleColor, KeyOverRippleColor,
		KeyInitialRippleRadius, KeyInitialOverRippleRadius,
		KeyRippleDuration, KeyOverRippleDuration, KeyOverRippleDelay,
		KeyShowOverRipple,
	} {
		prefs.RemoveValue(key)
	}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func (s *Settings) colorWithFallback(key string, fallback color.Color) color.Color {
	value := s.app.Preferences().String(key)
	if value == "" {
		return fallback
	}
	c, err := ParseHexColor(value)
	if err != nil {
		return fallback
	}
	return c
}

func msWithFallback(prefs fyne.Preferences, key string, fallback time.Duration) time.Duration {
	ms := prefs.IntWithFallback(key, int(fallback.Milliseconds()))
	return time.Duration(ms) * time.Millisecond
}

// ParseHexColor parses #RRGGBB or #RRGGBBAA; the leading # is optional
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// FormatHexColor formats any color as #RRGGBBAA, non-premultiplied
func FormatHexColor(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
