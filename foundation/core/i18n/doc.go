// File: doc.go
// Title: Message Catalogue Package Documentation
// Description: Package i18n renders mscript messages and structured errors
//              in English or German.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Embedded catalogues and error localisation

/*
Package i18n provides the message catalogues of the mscript tools.

Two catalogues are compiled into the binary: locales/en.toml and
locales/de.yaml. Options.Dir names an optional directory whose .toml, .yaml
and .yml files are merged over the embedded ones key by key, so a single
message can be reworded without copying the whole catalogue. Files are named
after their locale ("fr.yaml", "de-CH.toml").

# Keys and templates

Messages are addressed by dotted keys and rendered with text/template:

	[cli]
	check_ok = '{{.File}}: ok'

	m.T("cli.check_ok", map[string]interface{}{"File": "main.m"})

A key whose value is a list holds plural forms, selected by Plural:

	check_summary = [
	  '{{.Count}} file checked, {{.Failed}} failed',
	  '{{.Count}} files checked, {{.Failed}} failed',
	]

Keys missing from the active locale resolve in the default locale. T returns
"[key]" for keys missing in both.

# Locales

DetectLocale reads LC_ALL, LC_MESSAGES and LANG in that order.
NormalizeLocale turns "de_DE.UTF-8" into "de-DE". A requested locale that is
not loaded matches its base language, so "de-AT" selects the German
catalogue.

# Errors

Scanner and parser errors carry a message key and arguments. Localize renders
them with their source position:

	m, _ := i18n.New(i18n.Options{Locale: i18n.DetectLocale()})
	if _, err := engine.Parse(src); err != nil {
		fmt.Fprintln(os.Stderr, m.Localize(err)) // 1:3: unerwartetes "b", erwartet: Anweisungsende
	}

Errors without a key, and keys without a translation, render as err.Error().
*/
package i18n
