// File: locale.go
// Title: Locale Detection and Normalisation
// Description: Detects the user's locale from the POSIX environment and
//              normalises locale strings such as "de_DE.UTF-8" to "de-DE".
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Environment detection replaces Accept-Language parsing

package i18n

import (
	"os"
	"strings"

	mserror "github.com/msto63/mscript/foundation/core/error"
)

// localeEnvVars are consulted in POSIX precedence order
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// DetectLocale returns the first usable locale from LC_ALL, LC_MESSAGES and
// LANG, or DefaultLocale. "C" and "POSIX" are not usable.
func DetectLocale() string {
	return detectLocale(os.LookupEnv)
}

func detectLocale(lookup func(string) (string, bool)) string {
	for _, name := range localeEnvVars {
		value, ok := lookup(name)
		if !ok {
			continue
		}
		if normalized := NormalizeLocale(value); normalized != "" {
			return normalized
		}
	}
	return DefaultLocale
}

// NormalizeLocale converts a locale string to "ll" or "ll-CC" form.
// Encoding and modifier suffixes are dropped. Unparseable input yields "".
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" {
		return ""
	}

	locale = strings.ReplaceAll(strings.ToLower(locale), "_", "-")
	parts := strings.Split(locale, "-")

	language := parts[0]
	if len(language) != 2 && len(language) != 3 {
		return ""
	}
	for _, r := range language {
		if r < 'a' || r > 'z' {
			return ""
		}
	}

	if len(parts) > 1 && len(parts[1]) == 2 {
		return language + "-" + strings.ToUpper(parts[1])
	}
	return language
}

// ValidateLocale reports whether locale can be normalised
func ValidateLocale(locale string) error {
	if NormalizeLocale(locale) == "" {
		return mserror.New("invalid locale format").
			WithCode(mserror.CodeValidationFailed).
			WithOperation("i18n.ValidateLocale").
			WithDetail("locale", locale).
			WithDetail("expected_format", "e.g., 'en', 'de-DE'")
	}
	return nil
}

// SplitLocale splits a locale into language and country parts
func SplitLocale(locale string) (language, country string) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ""
	}
	language, country, _ = strings.Cut(normalized, "-")
	return language, country
}

var displayNames = map[string]string{
	"en":    "English",
	"en-US": "English (United States)",
	"en-GB": "English (United Kingdom)",
	"de":    "Deutsch",
	"de-DE": "Deutsch (Deutschland)",
	"de-AT": "Deutsch (Österreich)",
	"de-CH": "Deutsch (Schweiz)",
}

// GetLocaleDisplayName returns a human-readable name for a locale, falling
// back to its base language and then to the normalised code
func GetLocaleDisplayName(locale string) string {
	normalized := NormalizeLocale(locale)
	if name, ok := displayNames[normalized]; ok {
		return name
	}
	language, _ := SplitLocale(normalized)
	if name, ok := displayNames[language]; ok {
		return name
	}
	if normalized == "" {
		return locale
	}
	return normalized
}
