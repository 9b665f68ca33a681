package cli

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-contacts/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n initializes the translation bundle and detects available languages.
func (a *App) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			continue
		}
		detectedLangs = append(detectedLangs, langCode)

		path := "locales/" + name
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
		} else {
			slog.Debug(config.MsgLocaleLoaded,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyLang, langCode,
				config.LogKeyFile, name,
			)
		}
	}

	a.SupportedLanguages = detectedLangs
	a.I18nBundle = bundle
	a.UpdateLocalizer()
}

// UpdateLocalizer refreshes the translator based on the selected language.
func (a *App) UpdateLocalizer() {
	lang := a.Lang
	if lang == "" {
		lang = config.DefaultLanguage
	}
	a.Localizer = i18n.NewLocalizer(a.I18nBundle, lang)
}

// GetMsg is a helper to translate a key safely.
func (a *App) GetMsg(key string) string {
	return a.GetMsgData(key, nil)
}

// GetMsgData translates a key with template data.
func (a *App) GetMsgData(key string, data map[string]any) string {
	if a.Localizer == nil {
		slog.Warn(config.ErrLocNotInit,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
		)
		return key
	}
	msg, err := a.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
