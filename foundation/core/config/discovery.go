// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements configuration file discovery: an explicit path
//              wins, otherwise the first existing candidate is loaded, and
//              without any file the defaults stand alone.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation of file discovery
// - 2026-10-14 v0.2.0: Explicit path, ordered candidates, defaults fallback

package config

import (
	"os"
	"path/filepath"
	"strings"

	mserror "github.com/msto63/mscript/foundation/core/error"
)

// DiscoveryOptions defines options for configuration file discovery
type DiscoveryOptions struct {
	Path       string                 // Explicit file; must exist when set
	Candidates []string               // Files tried in order when Path is empty
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Values used where the file is silent
	Required   bool                   // Whether finding a config file is required
}

// DefaultCandidates returns the search list for an application name:
// ./<name>.toml, ./<name>.yaml, ./<name>.yml and
// $HOME/.config/<name>/config.{toml,yaml}
func DefaultCandidates(name string) []string {
	candidates := []string{
		name + ".toml",
		name + ".yaml",
		name + ".yml",
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dir := filepath.Join(home, ".config", name)
		candidates = append(candidates,
			filepath.Join(dir, "config.toml"),
			filepath.Join(dir, "config.yaml"),
		)
	}
	return candidates
}

// Discover finds and loads the configuration file
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	}

	if options.Path != "" {
		return LoadWithOptions(options.Path, loadOptions)
	}

	if path, ok := FindConfigFile(options.Candidates); ok {
		cfg, err := LoadWithOptions(path, loadOptions)
		if err != nil {
			return nil, mserror.Wrap(err, "found config file "+path+" but failed to load").
				WithOperation("config.Discover").
				WithDetail("configPath", path)
		}
		return cfg, nil
	}

	if options.Required {
		return nil, mserror.New("no configuration file found in: "+strings.Join(options.Candidates, ", ")).
			WithCode(mserror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", options.Candidates)
	}

	return NewFromDefaults(options.Defaults, options.EnvPrefix), nil
}

// FindConfigFile returns the first candidate that exists as a regular file
func FindConfigFile(candidates []string) (string, bool) {
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
