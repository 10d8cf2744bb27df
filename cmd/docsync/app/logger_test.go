package app

import (
	"testing"

	"github.com/rs/zerolog"
)

// TestDetermineLogLevel covers the flag and environment precedence.
func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{name: "nothing set", config: &Config{}, expected: "info"},
		{name: "verbose", config: &Config{Verbose: true}, expected: "debug"},
		{name: "quiet", config: &Config{Quiet: true}, expected: "warn"},
		{name: "verbose and quiet", config: &Config{Verbose: true, Quiet: true}, expected: "warn"},
		{name: "log-level beats verbose", config: &Config{LogLevel: "error", Verbose: true}, expected: "error"},
		{name: "log-level beats quiet", config: &Config{LogLevel: "trace", Quiet: true}, expected: "trace"},
		{name: "invalid log-level", config: &Config{LogLevel: "loud"}, expected: "info"},
		{name: "config level used alone", config: &Config{ConfigLogLevel: "error"}, expected: "error"},
		{name: "verbose beats config level", config: &Config{ConfigLogLevel: "error", Verbose: true}, expected: "debug"},
		{name: "quiet beats config level", config: &Config{ConfigLogLevel: "trace", Quiet: true}, expected: "warn"},
		{name: "log-level beats config level", config: &Config{LogLevel: "debug", ConfigLogLevel: "error"}, expected: "debug"},
		{name: "invalid config level", config: &Config{ConfigLogLevel: "chatty"}, expected: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := determineLogLevel(tt.config); got != tt.expected {
				t.Errorf("determineLogLevel() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		if got := validateLogLevel(level); got != level {
			t.Errorf("validateLogLevel(%q) = %q, expected it unchanged", level, got)
		}
	}
	for _, level := range []string{"", "invalid", "DEBUG", "Warn", "fatal"} {
		if got := validateLogLevel(level); got != "info" {
			t.Errorf("validateLogLevel(%q) = %q, expected info", level, got)
		}
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected zerolog.Level
	}{
		{name: "default", config: &Config{LogFormat: "json", LogOutput: "discard"}, expected: zerolog.InfoLevel},
		{name: "verbose", config: &Config{Verbose: true, LogFormat: "json", LogOutput: "discard"}, expected: zerolog.DebugLevel},
		{name: "quiet console", config: &Config{Quiet: true, LogFormat: "console", LogOutput: "discard", NoColor: true}, expected: zerolog.WarnLevel},
		{name: "explicit trace", config: &Config{LogLevel: "trace", LogFormat: "auto", LogOutput: "discard"}, expected: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.config)
			if got := logger.GetLevel(); got != tt.expected {
				t.Errorf("NewLogger() level = %v, expected %v", got, tt.expected)
			}
		})
	}
}
