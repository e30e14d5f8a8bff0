package ui

import (
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ripple-button/internal/config"
	"github.com/ytget/ripple-button/internal/ripple"
)

// galleryEntry is one demo button and how it derives its options from the stored ones
type galleryEntry struct {
	key    string
	button *RippleButton
	label  *widget.Label
	adjust func(ripple.Options) ripple.Options
}

// GalleryUI represents the demo window: a grid of ripple buttons and a settings dialog
type GalleryUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	entries     []*galleryEntry
	hintLabel   *widget.Label
	statusLabel *widget.Label

	// status auto-clear
	statusMutex sync.Mutex
	statusTimer *time.Timer
}

// NewGalleryUI creates and initializes the gallery UI
func NewGalleryUI(window fyne.Window, app fyne.App, settings *config.Settings) *GalleryUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &GalleryUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.applyOptions(settings.RippleOptions())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *GalleryUI) setupUI() {
	ui.createMenu()
	ui.createEntries()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.hintLabel = widget.NewLabel(ui.localization.GetText(KeyPressHint))
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter

	buttons := make([]fyne.CanvasObject, 0, len(ui.entries))
	for _, entry := range ui.entries {
		buttons = append(buttons, entry.button)
	}

	topPanel := container.NewBorder(nil, nil, settingsBtn, nil, ui.hintLabel)
	grid := ui.mobile.CreateAdaptiveContainer(buttons...)

	padding := ui.mobile.GetMobilePadding()
	content := container.NewBorder(
		topPanel,       // top
		ui.statusLabel, // bottom
		nil,            // left
		nil,            // right
		container.NewVScroll(container.New(&insetLayout{inset: padding}, grid)),
	)

	ui.window.SetContent(content)
	log.Printf("Gallery UI setup completed with %d buttons", len(ui.entries))
}

// createEntries builds the demo buttons
func (ui *GalleryUI) createEntries() {
	l := ui.localization

	identity := func(o ripple.Options) ripple.Options { return o }

	ui.entries = []*galleryEntry{
		{key: KeyButtonDefault, adjust: identity},
		{key: KeyButtonSingle, adjust: func(o ripple.Options) ripple.Options {
			o.ShowOverRipple = false
			return o
		}},
		{key: KeyButtonThemed, adjust: func(o ripple.Options) ripple.Options {
			return ThemedOptions(o, ui.app.Settings().Theme(), ui.app.Settings().ThemeVariant())
		}},
		{key: KeyButtonTall, adjust: identity},
		{key: KeyButtonDisabled, adjust: identity},
	}

	for _, entry := range ui.entries {
		key := entry.key
		tapped := func() { ui.onTapped(key) }

		var content fyne.CanvasObject
		switch key {
		case KeyButtonTall:
			content, entry.label = ui.tallContent(l.GetText(key))
		default:
			content, entry.label = ui.sizedContent(l.GetText(key), GalleryButtonHeight)
		}
		entry.button = NewRippleButtonWithContent(content, tapped)
	}
	ui.entries[len(ui.entries)-1].button.Disable()
}

// sizedContent centers a label over a transparent spacer that fixes the minimum size
func (ui *GalleryUI) sizedContent(text string, height float32) (fyne.CanvasObject, *widget.Label) {
	label := widget.NewLabel(text)
	label.Alignment = fyne.TextAlignCenter

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(GalleryButtonWidth, height))
	return container.NewStack(spacer, container.NewCenter(label)), label
}

func (ui *GalleryUI) tallContent(text string) (fyne.CanvasObject, *widget.Label) {
	icon := widget.NewIcon(theme.MediaPlayIcon())
	label := widget.NewLabel(text)
	label.Alignment = fyne.TextAlignCenter

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(GalleryButtonWidth, GalleryTallHeight))
	return container.NewStack(spacer, container.NewCenter(container.NewVBox(icon, label))), label
}

// applyOptions pushes stored options to every button; running ripples are untouched
func (ui *GalleryUI) applyOptions(o ripple.Options) {
	for _, entry := range ui.entries {
		entry.button.SetOptions(entry.adjust(o))
	}
}

// createMenu creates the application menu
func (ui *GalleryUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *GalleryUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *GalleryUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.hintLabel.SetText(l.GetText(KeyPressHint))

	for _, entry := range ui.entries {
		entry.label.SetText(l.GetText(entry.key))
	}
	ui.statusLabel.SetText("")
}

// onShowSettings opens the settings dialog
func (ui *GalleryUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applyOptions, ui.onLanguageChange).Show()
}

// onTapped shows which button was tapped and clears the message after a while
func (ui *GalleryUI) onTapped(key string) {
	message := fmt.Sprintf("%s: %s", ui.localization.GetText(KeyTapped), ui.localization.GetText(key))
	log.Printf("Gallery button tapped: %s", key)
	ui.statusLabel.SetText(message)

	ui.statusMutex.Lock()
	defer ui.statusMutex.Unlock()
	if ui.statusTimer != nil {
		ui.statusTimer.Stop()
	}
	ui.statusTimer = time.AfterFunc(StatusAutoClear, func() {
		fyne.Do(func() {
			if ui.statusLabel.Text == message {
				ui.statusLabel.SetText("")
			}
		})
	})
}

// insetLayout pads its single child on every side
type insetLayout struct {
	inset float32
}

func (l *insetLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, obj := range objects {
		obj.Move(fyne.NewPos(l.inset, l.inset))
		obj.Resize(fyne.NewSize(size.Width-2*l.inset, size.Height-2*l.inset))
	}
}

func (l *insetLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	min := fyne.NewSize(0, 0)
	for _, obj := range objects {
		min = min.Max(obj.MinSize())
	}
	return min.Add(fyne.NewSize(2*l.inset, 2*l.inset))
}
