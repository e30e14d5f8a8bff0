package ui

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ripple-button/internal/config"
	"github.com/ytget/ripple-button/internal/ripple"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings, *ripple.Options) {
	t.Helper()
	app := test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)

	settings := config.NewSettings(app)
	var saved ripple.Options
	sd := NewSettingsDialog(settings, NewLocalization(), w, func(o ripple.Options) {
		saved = o
	}, nil)
	return sd, settings, &saved
}

func TestSettingsDialog_LoadAndRead(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t)

	custom := ripple.DefaultOptions()
	custom.InitialRippleRadius = 20
	custom.OverRippleDelay = 250 * time.Millisecond
	custom.ShowOverRipple = false
	custom.RippleColor = color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	settings.SetRippleOptions(custom)

	sd.loadCurrentSettings()

	if sd.rippleColorEntry.Text != "#0a141e28" {
		t.Errorf("Expected color entry #0a141e28, got %s", sd.rippleColorEntry.Text)
	}
	if sd.showOverCheck.Checked {
		t.Error("Over-ripple checkbox should be unchecked")
	}
	if !sd.overDelaySlider.Disabled() {
		t.Error("Over-ripple controls should be disabled when the over-ripple is off")
	}

	o, err := sd.readOptions()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if o.InitialRippleRadius != 20 || o.OverRippleDelay != 250*time.Millisecond || o.ShowOverRipple {
		t.Errorf("Form did not round-trip: %+v", o)
	}
	if config.FormatHexColor(o.RippleColor) != "#0a141e28" {
		t.Errorf("Unexpected color %s", config.FormatHexColor(o.RippleColor))
	}
}

func TestSettingsDialog_Save(t *testing.T) {
	sd, settings, saved := newTestSettingsDialog(t)
	sd.loadCurrentSettings()

	sd.rippleRadiusSlider.SetValue(33)
	sd.rippleDurationSlider.SetValue(700)
	sd.onSave(true)

	stored := settings.RippleOptions()
	if stored.InitialRippleRadius != 33 {
		t.Errorf("Expected stored radius 33, got %v", stored.InitialRippleRadius)
	}
	if stored.RippleDuration != 700*time.Millisecond {
		t.Errorf("Expected stored duration 700ms, got %v", stored.RippleDuration)
	}
	if saved.InitialRippleRadius != 33 {
		t.Errorf("onSaved should receive the stored options, got %+v", *saved)
	}
}

func TestSettingsDialog_Cancel(t *testing.T) {
	sd, settings, saved := newTestSettingsDialog(t)
	sd.loadCurrentSettings()

	sd.rippleRadiusSlider.SetValue(40)
	sd.onSave(false)

	if settings.RippleOptions().InitialRippleRadius != ripple.DefaultInitialRippleRadius {
		t.Error("Cancel should not store anything")
	}
	if saved.InitialRippleRadius != 0 {
		t.Error("onSaved should not run on cancel")
	}
}

func TestSettingsDialog_InvalidColor(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t)
	sd.loadCurrentSettings()

	sd.rippleColorEntry.SetText("blue")
	_, err := sd.readOptions()
	if !errors.Is(err, config.ErrInvalidColor) {
		t.Errorf("Expected ErrInvalidColor, got %v", err)
	}

	sd.onSave(true)
	stored := config.FormatHexColor(settings.RippleOptions().RippleColor)
	if stored != config.FormatHexColor(ripple.DefaultRippleColor) {
		t.Errorf("Invalid color should keep the stored value, got %s", stored)
	}
}

func TestSettingsDialog_Reset(t *testing.T) {
	sd, _, _ := newTestSettingsDialog(t)
	sd.loadCurrentSettings()

	sd.overRadiusSlider.SetValue(50)
	sd.showOverCheck.SetChecked(false)
	sd.onReset()

	if sd.overRadiusSlider.Value != float64(ripple.DefaultInitialOverRippleRadius) {
		t.Errorf("Reset should restore the default over-ripple radius, got %v", sd.overRadiusSlider.Value)
	}
	if !sd.showOverCheck.Checked {
		t.Error("Reset should re-enable the over-ripple")
	}
}

func TestSettingsDialog_LanguageCallback(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	defer w.Close()

	settings := config.NewSettings(app)
	var changed []string
	sd := NewSettingsDialog(settings, NewLocalization(), w, nil, func(lang string) {
		changed = append(changed, lang)
		settings.SetLanguage(lang)
	})
	sd.loadCurrentSettings()

	// Unchanged language does not trigger the callback
	sd.onSave(true)
	if len(changed) != 0 {
		t.Errorf("Expected no language change, got %v", changed)
	}

	sd.languageSelect.SetSelected("ru")
	sd.onSave(true)
	if len(changed) != 1 || changed[0] != "ru" {
		t.Errorf("Expected language change to ru, got %v", changed)
	}
}

func TestSettingsDialog_LanguageWithoutCallback(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t)
	sd.loadCurrentSettings()

	sd.languageSelect.SetSelected("pt")
	sd.onSave(true)
	if settings.GetLanguage() != "pt" {
		t.Errorf("Expected stored language pt, got %s", settings.GetLanguage())
	}
}
