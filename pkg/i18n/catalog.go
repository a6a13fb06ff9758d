// Package i18n holds the message catalog for the supported site locales and
// negotiates a locale from a request.
package i18n

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh_Hant_HK"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

const (
	LocaleEN   = "en"
	LocaleZhHK = "zh-HK"
)

// SupportedLocales lists the site locales in matcher priority order.
var SupportedLocales = []string{LocaleEN, LocaleZhHK}

// Catalog holds one translator per site locale.
type Catalog struct {
	uni         *ut.UniversalTranslator
	translators map[string]*Translator
	matcher     language.Matcher
}

// NewCatalog builds the catalog with the built-in message tables.
func NewCatalog() (*Catalog, error) {
	enLocale := en.New()
	zhLocale := zh_Hant_HK.New()

	c := &Catalog{
		uni:         ut.New(enLocale, enLocale, zhLocale),
		translators: make(map[string]*Translator, len(SupportedLocales)),
		matcher:     language.NewMatcher([]language.Tag{language.English, language.MustParse(LocaleZhHK)}),
	}

	sources := map[string]struct {
		locale   locales.Translator
		messages map[string]string
	}{
		LocaleEN:   {enLocale, messagesEN},
		LocaleZhHK: {zhLocale, messagesZhHK},
	}

	for code, src := range sources {
		trans, found := c.uni.GetTranslator(src.locale.Locale())
		if !found {
			return nil, fmt.Errorf("i18n: translator for %s not registered", code)
		}
		for key, text := range src.messages {
			if err := trans.Add(key, text, true); err != nil {
				return nil, fmt.Errorf("i18n: add %s/%s: %w", code, key, err)
			}
		}
		c.translators[code] = &Translator{code: code, trans: trans}
	}

	// Keys missing from zh-HK fall back to English.
	c.translators[LocaleZhHK].fallback = c.translators[LocaleEN]

	return c, nil
}

// MustNewCatalog is NewCatalog for program start-up and tests.
func MustNewCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// For returns the translator for a site locale code, falling back to English.
func (c *Catalog) For(locale string) *Translator {
	if t, ok := c.translators[Normalize(locale)]; ok {
		return t
	}
	return c.translators[LocaleEN]
}

// Match negotiates a site locale from an explicit choice (query parameter) and
// an Accept-Language header. The explicit choice wins when it is supported.
func (c *Catalog) Match(explicit, acceptLanguage string) string {
	if explicit != "" {
		if code := Normalize(explicit); c.supported(code) {
			return code
		}
	}
	if acceptLanguage == "" {
		return LocaleEN
	}
	_, index := language.MatchStrings(c.matcher, acceptLanguage)
	if index < 0 || index >= len(SupportedLocales) {
		return LocaleEN
	}
	return SupportedLocales[index]
}

func (c *Catalog) supported(code string) bool {
	_, ok := c.translators[code]
	return ok
}

// Normalize maps the spellings we accept (zh_HK, zh-hk, EN) onto site locale codes.
func Normalize(locale string) string {
	l := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	switch l {
	case "en", "en-us", "en-gb", "en-hk":
		return LocaleEN
	case "zh-hk", "zh-hant-hk", "zh-hant":
		return LocaleZhHK
	default:
		return l
	}
}

// Translator resolves catalog keys for one locale.
type Translator struct {
	code     string
	trans    ut.Translator
	fallback *Translator
}

// Locale returns the site locale code, e.g. "zh-HK".
func (t *Translator) Locale() string {
	return t.code
}

// T looks up key and substitutes {0}, {1}... with params.
func (t *Translator) T(key string, params ...string) (string, bool) {
	s, err := t.trans.T(key, params...)
	if err == nil {
		return s, true
	}
	if t.fallback != nil {
		return t.fallback.T(key, params...)
	}
	return "", false
}

// Text is T that returns the key itself when no translation exists.
func (t *Translator) Text(key string, params ...string) string {
	if s, ok := t.T(key, params...); ok {
		return s
	}
	return key
}

// FormatNumber renders an integer with the locale's grouping separator.
func (t *Translator) FormatNumber(n int) string {
	s := t.trans.FmtNumber(float64(n), 0)
	if s == "" {
		return strconv.Itoa(n)
	}
	return s
}
