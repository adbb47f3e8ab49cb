// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity, positions
//              and JSON output.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Position and code mapping tests

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("bad token").WithCode(CodeInvalidExpression),
			message:  "parse failed",
			wantMsg:  "parse failed: bad token",
			wantCode: CodeInvalidExpression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapCopiesDetails(t *testing.T) {
	inner := New("unterminated").WithCode(CodeUnterminatedLiteral).WithPosition(2, 7)
	outer := Wrap(inner, "scan failed")

	line, col, ok := outer.Position()
	if !ok || line != 2 || col != 7 {
		t.Errorf("Position() = %d, %d, %v; want 2, 7, true", line, col, ok)
	}

	outer.WithDetail("file", "x.m")
	if _, ok := inner.Details()["file"]; ok {
		t.Error("detail on wrapper leaked into the cause")
	}
}

func TestWrapChainTruncation(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = fmt.Errorf("level %d: %w", i, err)
	}

	got := Wrap(err, "top")
	if got.Unwrap() != nil {
		t.Error("truncated error should not keep the chain")
	}
	if !strings.Contains(got.Error(), "root") {
		t.Errorf("Error() = %q, want it to mention the root cause", got.Error())
	}
	if got.Details()["truncated"] != true {
		t.Error("truncated detail missing")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidExpression, SeverityLow},
		{CodeIncompleteStatement, SeverityLow},
		{CodeUnrecognizedCharacter, SeverityLow},
		{CodeCacheError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestPosition(t *testing.T) {
	err := New("x")
	if _, _, ok := err.Position(); ok {
		t.Error("Position() ok on error without position")
	}

	err.WithPosition(4, 1)
	line, col, ok := err.Position()
	if !ok || line != 4 || col != 1 {
		t.Errorf("Position() = %d, %d, %v; want 4, 1, true", line, col, ok)
	}
}

func TestWithMessage(t *testing.T) {
	args := map[string]interface{}{"token": "end"}
	err := New("x").WithMessage("errors.parse.invalid_expression", args)

	if err.MessageKey() != "errors.parse.invalid_expression" {
		t.Errorf("MessageKey() = %q", err.MessageKey())
	}
	got := err.MessageArgs()
	got["token"] = "changed"
	if err.MessageArgs()["token"] != "end" {
		t.Error("MessageArgs() should return a copy")
	}
	if New("y").MessageArgs() != nil {
		t.Error("MessageArgs() should be nil when unset")
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	base := New("bad").WithCode(CodeIncompleteStatement)
	wrapped := fmt.Errorf("context: %w", base)

	if !HasCode(wrapped, CodeIncompleteStatement) {
		t.Error("HasCode() = false through fmt wrapper")
	}
	if HasCode(wrapped, CodeInvalidExpression) {
		t.Error("HasCode() = true for a different code")
	}
	if HasCode(errors.New("plain"), CodeUnknown) {
		t.Error("HasCode() = true for a plain error")
	}
	if GetCode(wrapped) != CodeIncompleteStatement {
		t.Errorf("GetCode() = %v", GetCode(wrapped))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() on plain error should be CodeUnknown")
	}
	if GetSeverity(wrapped) != SeverityLow {
		t.Errorf("GetSeverity() = %v", GetSeverity(wrapped))
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() on plain error should be medium")
	}
}

func TestString(t *testing.T) {
	err := New("unexpected token").
		WithCode(CodeInvalidExpression).
		WithOperation("parser.primary").
		WithRequestID("req-1").
		WithPosition(1, 5)

	s := err.String()
	for _, want := range []string{
		"Error: unexpected token",
		"Code: INVALID_EXPRESSION",
		"Severity: low",
		"Operation: parser.primary",
		"RequestID: req-1",
		"Details: {column=5, line=1}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("disk full"), "cache write failed").
		WithCode(CodeCacheError).
		WithMessage("errors.cache", nil)

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal() error = %v", jerr)
	}

	var got map[string]interface{}
	if jerr := json.Unmarshal(data, &got); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}
	if got["code"] != "CACHE_ERROR" {
		t.Errorf("code = %v", got["code"])
	}
	if got["severity"] != "high" {
		t.Errorf("severity = %v", got["severity"])
	}
	if got["cause"] != "disk full" {
		t.Errorf("cause = %v", got["cause"])
	}
	if got["message_key"] != "errors.cache" {
		t.Errorf("message_key = %v", got["message_key"])
	}
	if _, ok := got["message_args"]; ok {
		t.Error("message_args should be omitted when nil")
	}
}

func TestCodeMessageKey(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnrecognizedCharacter, "errors.scan.unrecognized_character"},
		{CodeUnterminatedLiteral, "errors.scan.unterminated_literal"},
		{CodeIncompleteStatement, "errors.parse.incomplete_statement"},
		{CodeInvalidExpression, "errors.parse.invalid_expression"},
		{CodeInvalidConfig, "errors.config"},
		{Code("SOMETHING_ELSE"), "errors.unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.MessageKey(); got != tt.want {
				t.Errorf("MessageKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeIsStructural(t *testing.T) {
	for _, c := range []Code{CodeUnrecognizedCharacter, CodeUnterminatedLiteral, CodeIncompleteStatement, CodeInvalidExpression} {
		if !c.IsStructural() {
			t.Errorf("%v.IsStructural() = false", c)
		}
	}
	for _, c := range []Code{CodeCacheError, CodeInternal, CodeUnknown} {
		if c.IsStructural() {
			t.Errorf("%v.IsStructural() = true", c)
		}
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("benchmark").WithCode(CodeInvalidExpression).WithPosition(1, 1)
	}
}
