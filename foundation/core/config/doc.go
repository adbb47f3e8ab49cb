// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management for mscript
//              tools with support for TOML and YAML formats, environment
//              overrides, file discovery and validation rules.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Discovery with defaults fallback, allowed value rules

/*
Package config provides configuration management for mscript tools.

Key Features:
  • TOML and YAML files with detection by extension
  • Environment overrides for every key
  • Discovery over an ordered candidate list with a defaults fallback
  • Validation rules for types, bounds, allowed values and patterns
  • Thread-safe access

# Basic Configuration Loading

	cfg, err := config.Load("mscript.toml")
	if err != nil {
		return err
	}

	level := cfg.GetString("log.level", "warn")
	limit := cfg.GetInt("parser.max_source_length", 1<<20)
	enabled := cfg.GetBool("cache.enabled")

# Environment Overrides

With an EnvPrefix of "MSCRIPT" the key log.level is overridden by
MSCRIPT_LOG_LEVEL. Overrides are plain strings and are converted by the
typed getters; GetStringSlice splits them on commas.

# Discovery

	cfg, err := config.Discover(config.DiscoveryOptions{
		Path:       flagPath,
		Candidates: config.DefaultCandidates("mscript"),
		EnvPrefix:  "MSCRIPT",
		Defaults:   defaults,
	})

An explicit Path must exist. Without one, the first existing candidate is
loaded; when none exists the defaults are used unless Required is set.

# Validation

	result := cfg.Validate(config.ValidationRules{
		"log.level":                {OneOf: []string{"trace", "debug", "info", "warn", "error", "off"}},
		"parser.max_source_length": {Type: "int", Min: config.IntPtr(1)},
	})
	if err := result.Err(); err != nil {
		return err
	}

Errors returned by this package are *mserror.Error values with the codes
NOT_FOUND, CONFIG_ERROR, INVALID_CONFIG and INVALID_FORMAT.
*/
package config
