// Package log provides structured logging for mscript.
//
// Package: log
// Title: mscript Structured Logging
// Description: Leveled, structured logging with JSON, text, console and
//              logfmt output. Loggers are immutable values: the With*
//              methods return configured copies, so a component can carry
//              its own "component" field without touching the caller's
//              logger. Structured errors are logged with their code,
//              severity and source position.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with structured logging
// - 2026-10-14 v0.2.0: Dropped async buffering, deterministic field order
//
// Usage:
//   import mslog "github.com/msto63/mscript/foundation/core/log"
//
//   logger := mslog.New().
//     WithLevel(mslog.LevelDebug).
//     WithFormat(mslog.FormatText).
//     WithField("component", "parser")
//
//   logger.Debug("statement parsed", mslog.Fields{"kind": "IfStatement"})
//
//   timer := logger.StartTimer("parse")
//   // ... parse
//   timer.Stop()
package log
