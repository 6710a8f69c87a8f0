// Package i18n provides internationalization support for error messages.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// BaseLocale is the locale every lookup falls back to.
const BaseLocale = "en-US"

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	// catalogs holds built-in and registered catalogs by locale.
	catalogs = map[string]*Catalog{
		BaseLocale: NewCatalog(BaseLocale, enUSMessages),
		"pt-BR":    NewCatalog("pt-BR", ptBRMessages),
	}
)

// GetCatalog returns the catalog that best matches locale.
// The locale may be a single tag or an Accept-Language style list.
// Falls back to en-US when nothing matches.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = BaseLocale
	}
	if c, ok := lookupCatalog(requested); ok {
		return c
	}

	resolved := matchLocale(requested)
	if c, ok := lookupCatalog(resolved); ok {
		return c
	}
	c, _ := lookupCatalog(BaseLocale)
	return c
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
// Templates are always executed even with nil/empty metadata to ensure
// consistent output (template variables without metadata render as empty).
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// RegisterCatalog registers a new catalog for the given locale.
// Callers should only use this during init or test setup.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[locale] = cat
}

// NewCatalog creates a new catalog with the given locale and messages.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cloned := make(map[Code]string, len(messages))
	for key, value := range messages {
		cloned[key] = value
	}
	return &Catalog{
		locale:   locale,
		messages: cloned,
	}
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

// matchLocale picks the closest registered locale for requested using the
// x/text matcher; the first supported tag is the fallback.
func matchLocale(requested string) string {
	catalogsMu.RLock()
	supported := []language.Tag{language.MustParse(BaseLocale)}
	names := []string{BaseLocale}
	for name := range catalogs {
		if name == BaseLocale {
			continue
		}
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		names = append(names, name)
	}
	catalogsMu.RUnlock()

	desired, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(desired) == 0 {
		return BaseLocale
	}
	_, index, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return BaseLocale
	}
	return names[index]
}
