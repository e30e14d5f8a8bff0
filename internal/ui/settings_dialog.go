package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ripple-button/internal/config"
	"github.com/ytget/ripple-button/internal/ripple"
)

// SettingsDialog edits the persisted ripple options
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(ripple.Options)
	onLanguage   func(string)

	// UI components
	rippleColorEntry     *widget.Entry
	overRippleColorEntry *widget.Entry
	rippleRadiusSlider   *widget.Slider
	overRadiusSlider     *widget.Slider
	rippleDurationSlider *widget.Slider
	overDurationSlider   *widget.Slider
	overDelaySlider      *widget.Slider
	showOverCheck        *widget.Check
	languageSelect       *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved receives the
// stored options after a successful save; onLanguage receives a newly
// selected language code and is expected to store it.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(ripple.Options), onLanguage func(string)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
		onLanguage:   onLanguage,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.rippleColorEntry = newColorEntry()
	sd.overRippleColorEntry = newColorEntry()

	sd.rippleRadiusSlider = newSlider(SliderRadiusMin, SliderRadiusMax)
	sd.overRadiusSlider = newSlider(SliderRadiusMin, SliderRadiusMax)
	sd.rippleDurationSlider = newSlider(SliderDurationMin, SliderDurationMax)
	sd.overDurationSlider = newSlider(SliderDurationMin, SliderDurationMax)
	sd.overDelaySlider = newSlider(0, SliderDelayMax)

	sd.showOverCheck = widget.NewCheck(l.GetText(KeyShowOverRipple), func(show bool) {
		sd.setOverRippleEnabled(show)
	})

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = l.GetText(KeyLanguage)

	pixels := l.GetText(KeyPixelsFormat)
	millis := l.GetText(KeyMillisecondsFormat)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyRippleSection)),
		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyRippleColor)),
		sd.rippleColorEntry,
		labeledSlider(l.GetText(KeyInitialRadius), pixels, sd.rippleRadiusSlider),
		labeledSlider(l.GetText(KeyDuration), millis, sd.rippleDurationSlider),

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyOverRippleSection)),
		widget.NewSeparator(),
		sd.showOverCheck,
		widget.NewLabel(l.GetText(KeyOverRippleColor)),
		sd.overRippleColorEntry,
		labeledSlider(l.GetText(KeyInitialRadius), pixels, sd.overRadiusSlider),
		labeledSlider(l.GetText(KeyDuration), millis, sd.overDurationSlider),
		labeledSlider(l.GetText(KeyDelay), millis, sd.overDelaySlider),

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)),
		sd.languageSelect,
		widget.NewButton(IconReset+" "+l.GetText(KeyReset), sd.onReset),
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.loadOptions(sd.settings.RippleOptions())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

func (sd *SettingsDialog) loadOptions(o ripple.Options) {
	sd.rippleColorEntry.SetText(config.FormatHexColor(o.RippleColor))
	sd.overRippleColorEntry.SetText(config.FormatHexColor(o.OverRippleColor))
	sd.rippleRadiusSlider.SetValue(float64(o.InitialRippleRadius))
	sd.overRadiusSlider.SetValue(float64(o.InitialOverRippleRadius))
	sd.rippleDurationSlider.SetValue(float64(o.RippleDuration.Milliseconds()))
	sd.overDurationSlider.SetValue(float64(o.OverRippleDuration.Milliseconds()))
	sd.overDelaySlider.SetValue(float64(o.OverRippleDelay.Milliseconds()))
	sd.showOverCheck.SetChecked(o.ShowOverRipple)
	sd.setOverRippleEnabled(o.ShowOverRipple)
}

// readOptions builds options from the form. Colors that fail to parse are
// reported and keep the currently stored value.
func (sd *SettingsDialog) readOptions() (ripple.Options, error) {
	current := sd.settings.RippleOptions()

	o := ripple.Options{
		RippleColor:             current.RippleColor,
		OverRippleColor:         current.OverRippleColor,
		InitialRippleRadius:     float32(sd.rippleRadiusSlider.Value),
		InitialOverRippleRadius: float32(sd.overRadiusSlider.Value),
		RippleDuration:          time.Duration(sd.rippleDurationSlider.Value) * time.Millisecond,
		OverRippleDuration:      time.Duration(sd.overDurationSlider.Value) * time.Millisecond,
		OverRippleDelay:         time.Duration(sd.overDelaySlider.Value) * time.Millisecond,
		ShowOverRipple:          sd.showOverCheck.Checked,
	}

	var firstErr error
	if c, err := config.ParseHexColor(sd.rippleColorEntry.Text); err == nil {
		o.RippleColor = c
	} else {
		firstErr = fmt.Errorf("ripple color: %w", err)
	}
	if c, err := config.ParseHexColor(sd.overRippleColorEntry.Text); err == nil {
		o.OverRippleColor = c
	} else if firstErr == nil {
		firstErr = fmt.Errorf("over-ripple color: %w", err)
	}

	return o, firstErr
}

func (sd *SettingsDialog) setOverRippleEnabled(enabled bool) {
	for _, s := range []*widget.Slider{sd.overRadiusSlider, sd.overDurationSlider, sd.overDelaySlider} {
		if enabled {
			s.Enable()
		} else {
			s.Disable()
		}
	}
	if enabled {
		sd.overRippleColorEntry.Enable()
	} else {
		sd.overRippleColorEntry.Disable()
	}
}

// onReset restores the defaults in the form; nothing is stored until Save
func (sd *SettingsDialog) onReset() {
	sd.loadOptions(ripple.DefaultOptions())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	o, err := sd.readOptions()
	if err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", sd.localization.GetText(KeyInvalidColor), err), sd.window)
	}
	sd.settings.SetRippleOptions(o)

	if lang := sd.languageSelect.Selected; lang != "" && lang != sd.settings.GetLanguage() {
		if sd.onLanguage != nil {
			sd.onLanguage(lang)
		} else {
			sd.settings.SetLanguage(lang)
		}
	}

	if sd.onSaved != nil {
		sd.onSaved(sd.settings.RippleOptions())
	}

	if err == nil {
		dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	}
}

func newColorEntry() *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("#RRGGBBAA")
	entry.Validator = func(s string) error {
		_, err := config.ParseHexColor(s)
		return err
	}
	return entry
}

func newSlider(min, max float64) *widget.Slider {
	s := widget.NewSlider(min, max)
	s.Step = SliderStep
	return s
}

// labeledSlider shows a caption with the current value above the slider
func labeledSlider(caption, format string, s *widget.Slider) fyne.CanvasObject {
	value := widget.NewLabel(fmt.Sprintf(format, s.Value))
	value.Alignment = fyne.TextAlignTrailing

	s.OnChanged = func(v float64) {
		value.SetText(fmt.Sprintf(format, v))
	}
	return container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel(caption), value),
		s,
	)
}
