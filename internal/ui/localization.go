package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyReset              = "reset"
	KeySettingsSaved      = "settings_saved"
	KeyRippleSection      = "ripple_section"
	KeyOverRippleSection  = "over_ripple_section"
	KeyRippleColor        = "ripple_color"
	KeyOverRippleColor    = "over_ripple_color"
	KeyInitialRadius      = "initial_radius"
	KeyDuration           = "duration"
	KeyDelay              = "delay"
	KeyShowOverRipple     = "show_over_ripple"
	KeyInvalidColor       = "invalid_color"
	KeyButtonDefault      = "button_default"
	KeyButtonSingle       = "button_single"
	KeyButtonThemed       = "button_themed"
	KeyButtonTall         = "button_tall"
	KeyButtonDisabled     = "button_disabled"
	KeyTapped             = "tapped"
	KeyPressHint          = "press_hint"
	KeyMillisecondsFormat = "ms_format"
	KeyPixelsFormat       = "px_format"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Ripple Gallery",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyReset:              "Reset to defaults",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyRippleSection:      "Ripple",
		KeyOverRippleSection:  "Over-ripple",
		KeyRippleColor:        "Color (#RRGGBBAA)",
		KeyOverRippleColor:    "Color (#RRGGBBAA)",
		KeyInitialRadius:      "Initial radius",
		KeyDuration:           "Duration",
		KeyDelay:              "Delay",
		KeyShowOverRipple:     "Show over-ripple",
		KeyInvalidColor:       "Invalid color",
		KeyButtonDefault:      "Default ripple",
		KeyButtonSingle:       "Single ripple",
		KeyButtonThemed:       "Themed ripple",
		KeyButtonTall:         "Tall surface",
		KeyButtonDisabled:     "Disabled",
		KeyTapped:             "Tapped",
		KeyPressHint:          "Press and hold a button",
		KeyMillisecondsFormat: "%.0f ms",
		KeyPixelsFormat:       "%.0f px",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Галерея ripple",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyReset:              "Сбросить",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyRippleSection:      "Волна",
		KeyOverRippleSection:  "Вторая волна",
		KeyRippleColor:        "Цвет (#RRGGBBAA)",
		KeyOverRippleColor:    "Цвет (#RRGGBBAA)",
		KeyInitialRadius:      "Начальный радиус",
		KeyDuration:           "Длительность",
		KeyDelay:              "Задержка",
		KeyShowOverRipple:     "Показывать вторую волну",
		KeyInvalidColor:       "Неверный цвет",
		KeyButtonDefault:      "Обычная волна",
		KeyButtonSingle:       "Одна волна",
		KeyButtonThemed:       "Цвет из темы",
		KeyButtonTall:         "Высокая кнопка",
		KeyButtonDisabled:     "Отключена",
		KeyTapped:             "Нажата",
		KeyPressHint:          "Нажмите и удерживайте кнопку",
		KeyMillisecondsFormat: "%.0f мс",
		KeyPixelsFormat:       "%.0f пикс",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Galeria Ripple",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyReset:              "Restaurar padrões",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyRippleSection:      "Ondulação",
		KeyOverRippleSection:  "Segunda ondulação",
		KeyRippleColor:        "Cor (#RRGGBBAA)",
		KeyOverRippleColor:    "Cor (#RRGGBBAA)",
		KeyInitialRadius:      "Raio inicial",
		KeyDuration:           "Duração",
		KeyDelay:              "Atraso",
		KeyShowOverRipple:     "Mostrar segunda ondulação",
		KeyInvalidColor:       "Cor inválida",
		KeyButtonDefault:      "Ondulação padrão",
		KeyButtonSingle:       "Ondulação única",
		KeyButtonThemed:       "Cor do tema",
		KeyButtonTall:         "Superfície alta",
		KeyButtonDisabled:     "Desativado",
		KeyTapped:             "Tocado",
		KeyPressHint:          "Pressione e segure um botão",
		KeyMillisecondsFormat: "%.0f ms",
		KeyPixelsFormat:       "%.0f px",
	}
}
