package jsonschema

import (
	"embed"
	"fmt"
	"strings"

	i18n "github.com/kaptinlin/go-i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// supportedLocales lists the BCP-47 tags this module ships translations
// for; authored from scratch (see DESIGN.md: the teacher's locales/
// directory is absent from the retrieved pack) in the teacher's
// embed-and-bundle style.
var supportedLocales = []string{"en", "es"}

var (
	defaultBundle  *i18n.Bundle
	localeMatcher  language.Matcher
	supportedTags  []language.Tag
	// defaultLocalizer renders every ValidationError's Message in English
	// at construction time (result.go's newKeywordError), before a caller
	// ever has a chance to pick a different locale via Result.Localize.
	defaultLocalizer *Localizer
)

func init() {
	bundle := i18n.NewBundle(language.English)
	for _, locale := range supportedLocales {
		data, err := localeFS.ReadFile("locales/" + locale + ".json")
		if err != nil {
			continue
		}
		if err := bundle.LoadMessages(locale, data); err != nil {
			continue
		}
		supportedTags = append(supportedTags, language.MustParse(locale))
	}
	defaultBundle = bundle
	localeMatcher = language.NewMatcher(supportedTags)
	defaultLocalizer = &Localizer{bundle: defaultBundle, locale: "en"}
}

// Localizer renders ValidationError.Message in a caller-preferred
// locale, matched against this module's supported set via
// golang.org/x/text/language the way an HTTP server matches
// Accept-Language — a realistic extension of the teacher's fixed
// en/zh-Hans pair to an arbitrary preference list.
type Localizer struct {
	bundle *i18n.Bundle
	locale string
}

// NewLocalizer picks the best-matching supported locale for the given
// BCP-47 preference list (most preferred first).
func NewLocalizer(preferred ...string) *Localizer {
	tags := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		if tag, err := language.Parse(p); err == nil {
			tags = append(tags, tag)
		}
	}
	_, index, _ := localeMatcher.Match(tags...)
	locale := "en"
	if index >= 0 && index < len(supportedLocales) {
		locale = supportedLocales[index]
	}
	return &Localizer{bundle: defaultBundle, locale: locale}
}

// Localize renders the message template registered under key,
// substituting params, falling back to the raw key when no translation
// exists for the chosen locale.
func (l *Localizer) Localize(key string, params map[string]interface{}) string {
	template, err := l.bundle.Message(l.locale, key)
	if err != nil || template == "" {
		return key
	}
	for k, v := range params {
		template = strings.ReplaceAll(template, "{"+k+"}", toDisplayString(v))
	}
	return template
}

func toDisplayString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
