// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context fields, formatters,
//              timers and structured error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Error position and timer tests

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mserror "github.com/msto63/mscript/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func TestNew(t *testing.T) {
	logger := New()
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered message: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("output missing warn message: %q", out)
	}
}

func TestLevelOffSilences(t *testing.T) {
	logger, buf := newBufferLogger(LevelOff, FormatText)
	logger.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("LevelOff wrote %q", buf.String())
	}
	if Discard().IsLevelEnabled(LevelError) {
		t.Error("Discard() logger reports error level enabled")
	}
}

func TestWithFieldIsImmutable(t *testing.T) {
	base, buf := newBufferLogger(LevelDebug, FormatJSON)
	child := base.WithField("component", "parser")

	base.Info("from base")
	child.Info("from child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var first, second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}
	if _, ok := first["component"]; ok {
		t.Error("base logger picked up child field")
	}
	if second["component"] != "parser" {
		t.Errorf("child component = %v", second["component"])
	}
}

func TestJSONFormatter(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.WithName("mscript").WithRequestID("req-9").
		ErrorWithErr("scan failed", errors.New("boom"), Fields{"offset": 3})

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	want := map[string]interface{}{
		"level":      "error",
		"message":    "scan failed",
		"logger":     "mscript",
		"request_id": "req-9",
		"error":      "boom",
		"offset":     float64(3),
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
}

func TestTextFormatterFieldOrder(t *testing.T) {
	f := &TextFormatter{DisableTimestamp: true}
	entry := NewEntry(LevelInfo, "parsed")
	entry.Fields = Fields{"b": 2, "a": 1, "c": "x"}

	out, err := f.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	want := "[INF] parsed [a=1 b=2 c=x]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	f := NewLogfmtFormatter()
	entry := NewEntry(LevelWarn, "slow parse")
	entry.Fields = Fields{"kind": "IfStatement", "depth": 4}

	out, _ := f.Format(entry)
	s := string(out)
	for _, want := range []string{`level=warn`, `message="slow parse"`, `depth=4 kind="IfStatement"`} {
		if !strings.Contains(s, want) {
			t.Errorf("logfmt output %q missing %q", s, want)
		}
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableTimestamp = true
	out, _ := f.Format(NewEntry(LevelError, "x"))
	if !strings.HasPrefix(string(out), LevelError.Color()) {
		t.Errorf("console output not colored: %q", out)
	}

	f.DisableColors = true
	out, _ = f.Format(NewEntry(LevelError, "x"))
	if strings.Contains(string(out), "\033[") {
		t.Errorf("colors not disabled: %q", out)
	}
}

func TestLogErrorStructural(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	err := mserror.New("unexpected token").
		WithCode(mserror.CodeInvalidExpression).
		WithPosition(2, 5).
		WithOperation("parser.primary")

	logger.LogError(err)

	var got map[string]interface{}
	if jerr := json.Unmarshal(buf.Bytes(), &got); jerr != nil {
		t.Fatal(jerr)
	}
	if got["level"] != "debug" {
		t.Errorf("level = %v, want debug for low severity", got["level"])
	}
	if got["error_code"] != "INVALID_EXPRESSION" {
		t.Errorf("error_code = %v", got["error_code"])
	}
	if got["error_line"] != float64(2) || got["error_column"] != float64(5) {
		t.Errorf("position = %v:%v", got["error_line"], got["error_column"])
	}
	if got["error_operation"] != "parser.primary" {
		t.Errorf("error_operation = %v", got["error_operation"])
	}
}

func TestLogErrorPlainAndNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
	logger.LogError(errors.New("disk gone"))
	if !strings.Contains(buf.String(), "[ERR] disk gone") {
		t.Errorf("plain error output = %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"off", LevelOff, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, "Text": FormatText, "console": FormatConsole, "logfmt": FormatLogfmt} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	timer := logger.StartTimer("parse")
	time.Sleep(time.Millisecond)
	if d := timer.Stop(); d <= 0 {
		t.Errorf("Stop() = %v, want > 0", d)
	}
	if timer.IsRunning() {
		t.Error("timer still running after Stop()")
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}
	if !strings.Contains(buf.String(), "parse completed") {
		t.Errorf("timer output = %q", buf.String())
	}

	buf.Reset()
	failing := logger.StartTimer("scan")
	failing.StopWithError(errors.New("bad char"))
	out := buf.String()
	if !strings.Contains(out, "scan failed") || !strings.Contains(out, "success=false") {
		t.Errorf("StopWithError output = %q", out)
	}
}
