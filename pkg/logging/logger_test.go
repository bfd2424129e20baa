package logging

import (
	"testing"

	"github.com/quillpress/quillpress/pkg/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LoggingConfig
	}{
		{"json format", config.LoggingConfig{Level: "INFO", Format: "json"}},
		{"text format", config.LoggingConfig{Level: "DEBUG", Format: "text"}},
		{"unknown level falls back to info", config.LoggingConfig{Level: "NOISY", Format: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := InitLogger(&tt.cfg); err != nil {
				t.Fatalf("InitLogger failed: %v", err)
			}
			if Logger == nil {
				t.Fatal("InitLogger must set the global logger")
			}
		})
	}
}

func TestGetLoggerFallback(t *testing.T) {
	oldLogger := Logger
	defer func() { Logger = oldLogger }()

	Logger = nil
	if GetLogger() == nil {
		t.Error("GetLogger must never return nil")
	}
}

func TestWithComponent(t *testing.T) {
	logger := WithComponent("test-component")
	if logger == nil {
		t.Fatal("WithComponent returned nil")
	}
	// Must be a child, not the global logger itself.
	if logger == GetLogger() {
		t.Error("WithComponent must return a derived logger")
	}
}
