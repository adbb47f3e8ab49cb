// File: i18n.go
// Title: Message Catalogue Manager
// Description: Implements the Manager that loads the embedded mscript message
//              catalogues (TOML and YAML), optionally overlays catalogues from
//              a directory, and renders messages with template interpolation
//              and plural forms.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with TOML/YAML catalogues
// - 2026-10-14 v0.2.0: Embedded catalogues, locale matching by base language,
//                       dropped file watching

package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mserror "github.com/msto63/mscript/foundation/core/error"
)

//go:embed locales/*
var embedded embed.FS

// DefaultLocale is used when neither options nor the environment name one
const DefaultLocale = "en"

// Options defines configuration options for the catalogue manager
type Options struct {
	DefaultLocale string // Fallback locale for missing keys (default: "en")
	Locale        string // Initial locale, matched against the loaded ones
	Dir           string // Optional directory whose catalogues override the embedded ones
}

// Manager holds the loaded catalogues and the active locale
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	translations  map[string]map[string]interface{} // locale -> catalogue
	templates     map[string]*template.Template     // locale/key -> compiled template
}

// New creates a manager with the embedded catalogues and any overrides from
// opts.Dir
func New(opts Options) (*Manager, error) {
	if opts.DefaultLocale == "" {
		opts.DefaultLocale = DefaultLocale
	}

	m := &Manager{
		translations: make(map[string]map[string]interface{}),
		templates:    make(map[string]*template.Template),
	}

	if err := m.loadFS(embedded, "locales"); err != nil {
		return nil, mserror.Wrap(err, "failed to load embedded catalogues").
			WithCode(mserror.CodeInternal).
			WithOperation("i18n.New")
	}

	if opts.Dir != "" {
		if err := m.loadFS(os.DirFS(opts.Dir), "."); err != nil {
			return nil, mserror.Wrap(err, "failed to load catalogues").
				WithCode(mserror.CodeConfigError).
				WithOperation("i18n.New").
				WithDetail("directory", opts.Dir).
				WithMessage("errors.config", map[string]interface{}{"Path": opts.Dir, "Reason": err.Error()})
		}
	}

	defaultLocale, ok := m.match(opts.DefaultLocale)
	if !ok {
		return nil, mserror.Newf("default locale %q not available", opts.DefaultLocale).
			WithCode(mserror.CodeNotFound).
			WithOperation("i18n.New").
			WithDetail("locale", opts.DefaultLocale)
	}
	m.defaultLocale = defaultLocale
	m.currentLocale = defaultLocale

	if opts.Locale != "" {
		if current, ok := m.match(opts.Locale); ok {
			m.currentLocale = current
		}
	}

	return m, nil
}

// MustNew is like New but panics on error
func MustNew(opts Options) *Manager {
	m, err := New(opts)
	if err != nil {
		panic(err)
	}
	return m
}

// loadFS reads every .toml, .yaml and .yml catalogue in dir. A catalogue for
// a locale that is already loaded is merged over it key by key.
func (m *Manager) loadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
			continue
		}
		locale := NormalizeLocale(strings.TrimSuffix(name, filepath.Ext(name)))
		if locale == "" {
			continue
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		data, err := parseCatalogue(content, ext)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}

		if existing, ok := m.translations[locale]; ok {
			mergeCatalogue(existing, data)
		} else {
			m.translations[locale] = data
		}
	}
	return nil
}

func parseCatalogue(content []byte, ext string) (map[string]interface{}, error) {
	data := make(map[string]interface{})
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
		if data == nil {
			data = make(map[string]interface{})
		}
	}
	return data, nil
}

func mergeCatalogue(dst, src map[string]interface{}) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]interface{})
		dstMap, dstIsMap := dst[k].(map[string]interface{})
		if srcIsMap && dstIsMap {
			mergeCatalogue(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
}

// match finds the loaded locale for a requested one: an exact match first,
// then the base language ("de-AT" matches "de").
func (m *Manager) match(locale string) (string, bool) {
	locale = NormalizeLocale(locale)
	if _, ok := m.translations[locale]; ok {
		return locale, true
	}
	language, _ := SplitLocale(locale)
	if _, ok := m.translations[language]; ok {
		return language, true
	}
	return "", false
}

// SetLocale switches the active locale
func (m *Manager) SetLocale(locale string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched, ok := m.match(locale)
	if !ok {
		return mserror.Newf("locale %q not available", locale).
			WithCode(mserror.CodeNotFound).
			WithOperation("i18n.SetLocale").
			WithDetail("locale", locale)
	}
	m.currentLocale = matched
	return nil
}

// GetCurrentLocale returns the active locale
func (m *Manager) GetCurrentLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// GetDefaultLocale returns the fallback locale
func (m *Manager) GetDefaultLocale() string {
	return m.defaultLocale
}

// GetAvailableLocales returns the loaded locales, sorted
func (m *Manager) GetAvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locales := make([]string, 0, len(m.translations))
	for locale := range m.translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// T translates a key, returning "[key]" when no translation exists
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	translation, err := m.TryT(key, data...)
	if err != nil && translation == "" {
		return "[" + key + "]"
	}
	return translation
}

// TryT translates a key and reports missing keys and rendering failures.
// On a rendering failure the raw translation is returned with the error.
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	m.mu.RLock()
	locale, raw := m.lookup(key)
	m.mu.RUnlock()

	if raw == nil {
		return "", mserror.New("translation not found").
			WithCode(mserror.CodeNotFound).
			WithOperation("i18n.TryT").
			WithDetail("key", key)
	}

	translation := firstForm(raw)
	var args map[string]interface{}
	if len(data) > 0 {
		args = data[0]
	}
	rendered, err := m.render(locale+"/"+key, translation, args)
	if err != nil {
		return translation, mserror.Wrap(err, "template rendering failed").
			WithCode(mserror.CodeInvalidFormat).
			WithOperation("i18n.TryT").
			WithDetail("key", key)
	}
	return rendered, nil
}

// Plural selects the form for count and renders it. Count is available to
// the template as .Count unless data sets it.
func (m *Manager) Plural(key string, count int, data map[string]interface{}) string {
	m.mu.RLock()
	locale, raw := m.lookup(key)
	m.mu.RUnlock()

	if raw == nil {
		return "[" + key + "]"
	}

	forms := pluralForms(raw)
	index := pluralIndex(locale, count)
	if index >= len(forms) {
		index = len(forms) - 1
	}

	args := make(map[string]interface{}, len(data)+1)
	args["Count"] = count
	for k, v := range data {
		args[k] = v
	}

	rendered, err := m.render(fmt.Sprintf("%s/%s#%d", locale, key, index), forms[index], args)
	if err != nil {
		return forms[index]
	}
	return rendered
}

// HasTranslation reports whether key resolves in the active or default locale
func (m *Manager) HasTranslation(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, raw := m.lookup(key)
	return raw != nil
}

// GetTranslationKeys returns the dotted keys of a locale's catalogue, sorted
func (m *Manager) GetTranslationKeys(locale string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched, ok := m.match(locale)
	if !ok {
		return nil
	}
	var keys []string
	collectKeys(m.translations[matched], "", &keys)
	sort.Strings(keys)
	return keys
}

func collectKeys(data map[string]interface{}, prefix string, keys *[]string) {
	for k, v := range data {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			collectKeys(nested, full, keys)
			continue
		}
		*keys = append(*keys, full)
	}
}

// lookup resolves key in the active locale, then the default one. The
// caller holds m.mu.
func (m *Manager) lookup(key string) (string, interface{}) {
	if raw := nestedValue(m.translations[m.currentLocale], key); raw != nil {
		return m.currentLocale, raw
	}
	if m.currentLocale != m.defaultLocale {
		if raw := nestedValue(m.translations[m.defaultLocale], key); raw != nil {
			return m.defaultLocale, raw
		}
	}
	return "", nil
}

func nestedValue(data map[string]interface{}, key string) interface{} {
	if data == nil {
		return nil
	}
	parts := strings.Split(key, ".")
	current := data
	for i, part := range parts {
		value, ok := current[part]
		if !ok {
			return nil
		}
		if i == len(parts)-1 {
			if _, isMap := value.(map[string]interface{}); isMap {
				return nil
			}
			return value
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func firstForm(raw interface{}) string {
	return pluralForms(raw)[0]
}

func pluralForms(raw interface{}) []string {
	switch v := raw.(type) {
	case []interface{}:
		forms := make([]string, 0, len(v))
		for _, form := range v {
			forms = append(forms, fmt.Sprintf("%v", form))
		}
		if len(forms) > 0 {
			return forms
		}
		return []string{""}
	case []string:
		if len(v) > 0 {
			return v
		}
		return []string{""}
	default:
		return []string{fmt.Sprintf("%v", v)}
	}
}

// pluralIndex returns the form index for count. Both shipped languages use
// the one/other rule.
func pluralIndex(locale string, count int) int {
	language, _ := SplitLocale(locale)
	switch language {
	case "fr":
		if count == 0 || count == 1 {
			return 0
		}
		return 1
	default:
		if count == 1 {
			return 0
		}
		return 1
	}
}

func (m *Manager) render(cacheKey, text string, data map[string]interface{}) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}
	if data == nil {
		data = map[string]interface{}{}
	}

	m.mu.RLock()
	tmpl, ok := m.templates[cacheKey]
	m.mu.RUnlock()

	if !ok {
		parsed, err := template.New(cacheKey).Option("missingkey=zero").Parse(text)
		if err != nil {
			return "", err
		}
		m.mu.Lock()
		m.templates[cacheKey] = parsed
		m.mu.Unlock()
		tmpl = parsed
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
