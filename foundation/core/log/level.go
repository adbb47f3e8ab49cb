// File: level.go
// Title: Log Level Definitions
// Description: Log levels with their names, aliases, short tags and console
//              colours, kept in one table.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with standard log levels
// - 2026-10-14 v0.2.0: Table-driven levels, off level replaces audit

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level, e.g. every consumed token
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError

	// LevelOff disables all output
	LevelOff
)

type levelInfo struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levels = [...]levelInfo{
	LevelTrace: {"trace", "TRC", "\033[37m", []string{"trc"}},
	LevelDebug: {"debug", "DBG", "\033[36m", []string{"dbg"}},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", "\033[31m", []string{"err"}},
	LevelOff:   {"off", "???", "\033[0m", []string{"none", "silent"}},
}

const colorReset = "\033[0m"

func (l Level) info() (levelInfo, bool) {
	if l < LevelTrace || l > LevelOff {
		return levelInfo{}, false
	}
	return levels[l], true
}

// String returns the lower-case level name
func (l Level) String() string {
	if info, ok := l.info(); ok {
		return info.name
	}
	return "unknown"
}

// ShortString returns the three-letter tag used by the text formatter
func (l Level) ShortString() string {
	if info, ok := l.info(); ok {
		return info.short
	}
	return "???"
}

// Color returns the ANSI colour sequence for console output
func (l Level) Color() string {
	if info, ok := l.info(); ok {
		return info.color
	}
	return colorReset
}

// ShouldLog reports whether a message at this level passes minLevel
func (l Level) ShouldLog(minLevel Level) bool {
	return l < LevelOff && l >= minLevel
}

// ParseLevel accepts a level name or one of its aliases, case-insensitively
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for l, info := range levels {
		if s == info.name {
			return Level(l), nil
		}
		for _, alias := range info.aliases {
			if s == alias {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports an unknown level or format name
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel keeps command output free of routine log lines
func DefaultLevel() Level {
	return LevelWarn
}
