// ============================================================================
// mscript - MATLAB-like script front end
// ============================================================================
//
// Package:     version
// Description: Central version management for the mscript tools
// Author:      msto63
// Created:     2026-10-08
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the mscript components
const (
	// Tool version
	Tool = "0.2.0"

	// Language front end versions
	Lexer  = "0.2.0"
	Parser = "0.2.0"

	// CacheSchema is bumped whenever the cached tree encoding changes
	CacheSchema = 1
)

// Set at build time with -ldflags "-X .../version.Commit=..."
var (
	Commit = "unknown"
	Date   = "unknown"
)

// Info describes the running build
type Info struct {
	Tool        string `json:"tool"`
	Lexer       string `json:"lexer"`
	Parser      string `json:"parser"`
	CacheSchema int    `json:"cache_schema"`
	Commit      string `json:"commit"`
	Date        string `json:"date"`
	GoVersion   string `json:"go_version"`
	Platform    string `json:"platform"`
}

// Get returns the build information
func Get() Info {
	return Info{
		Tool:        Tool,
		Lexer:       Lexer,
		Parser:      Parser,
		CacheSchema: CacheSchema,
		Commit:      Commit,
		Date:        Date,
		GoVersion:   runtime.Version(),
		Platform:    runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	default:
		return Tool
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("mscript %s (lexer %s, parser %s, commit %s, built %s, %s %s)",
		i.Tool, i.Lexer, i.Parser, i.Commit, i.Date, i.GoVersion, i.Platform)
}
