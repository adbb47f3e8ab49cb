package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	mserror "github.com/msto63/mscript/foundation/core/error"
	mslog "github.com/msto63/mscript/foundation/core/log"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LoggerConfig
		wantLevel mslog.Level
	}{
		{"defaults", LoggerConfig{Name: "mscript"}, mslog.LevelWarn},
		{"explicit level", LoggerConfig{Level: "error"}, mslog.LevelError},
		{"verbose lowers level", LoggerConfig{Level: "warn", Verbose: true}, mslog.LevelDebug},
		{"verbose keeps trace", LoggerConfig{Level: "trace", Verbose: true}, mslog.LevelTrace},
		{"off", LoggerConfig{Level: "off"}, mslog.LevelOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.cfg)
			if err != nil {
				t.Fatalf("NewLogger() error = %v", err)
			}
			if got := logger.GetLevel(); got != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", got, tt.wantLevel)
			}
		})
	}
}

func TestNewLoggerInvalid(t *testing.T) {
	tests := []LoggerConfig{
		{Level: "loud"},
		{Format: "xml"},
	}

	for _, cfg := range tests {
		_, err := NewLogger(cfg)
		if !mserror.HasCode(err, mserror.CodeInvalidConfig) {
			t.Errorf("NewLogger(%+v) error = %v, want INVALID_CONFIG", cfg, err)
		}
	}
}

func TestNewLoggerOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger, err := NewLogger(LoggerConfig{
		Name:              "mscript",
		Level:             "info",
		Format:            "json",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("parsed", mslog.Fields{"statements": 3})

	for name, buf := range map[string]*bytes.Buffer{"primary": &primary, "extra": &extra} {
		out := buf.String()
		if !strings.Contains(out, `"message":"parsed"`) || !strings.Contains(out, `"statements":3`) {
			t.Errorf("%s output = %q", name, out)
		}
	}
}

func TestNewSimpleLogger(t *testing.T) {
	logger := NewSimpleLogger("mscript")
	if logger == nil {
		t.Fatal("NewSimpleLogger() returned nil")
	}
	if logger.IsLevelEnabled(mslog.LevelInfo) {
		t.Error("default logger should not log info")
	}
}
