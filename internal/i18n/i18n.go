package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"path"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

// Translator resolves message IDs against the embedded locale files.
type Translator struct {
	bundle      *goi18n.Bundle
	defaultLang string
}

func New(defaultLang string) (*Translator, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLang, err)
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		p := path.Join("locales", e.Name())
		buf, err := locales.ReadFile(p)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(buf, p); err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
	}

	return &Translator{bundle: bundle, defaultLang: defaultLang}, nil
}

// Localize falls back to the message ID when no translation exists.
func (t *Translator) Localize(lang, messageID string, data map[string]interface{}) string {
	localizer := goi18n.NewLocalizer(t.bundle, lang, t.defaultLang)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}

// FromRequest localizes using the request's Accept-Language header.
func (t *Translator) FromRequest(r *http.Request, messageID string, data map[string]interface{}) string {
	return t.Localize(r.Header.Get("Accept-Language"), messageID, data)
}
