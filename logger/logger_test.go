package logger

import (
	"testing"
)

func TestFields_Pairs(t *testing.T) {
	m := Fields("operation", "exchange", "status", 200)
	if m["operation"] != "exchange" {
		t.Errorf("expected operation=exchange, got %v", m["operation"])
	}
	if m["status"] != 200 {
		t.Errorf("expected status=200, got %v", m["status"])
	}
}

func TestFields_OddArgsIgnoresTail(t *testing.T) {
	m := Fields("provider", "google", "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 field, got %d", len(m))
	}
}

func TestFields_NonStringKeySkipped(t *testing.T) {
	m := Fields(42, "value", "ok", true)
	if _, found := m["42"]; found {
		t.Error("non-string key should not be coerced")
	}
	if m["ok"] != true {
		t.Errorf("expected ok=true, got %v", m["ok"])
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %s", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Level: "verbose", Format: "console", Output: "stdout"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = Config{Level: "debug", Format: "xml", Output: "stdout"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}

	cfg = Config{Level: "debug", Format: "json", Output: "stderr"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	log := New(&Config{Level: "nope", Format: "json", Output: "stdout"}, "test")
	if log == nil {
		t.Fatal("expected logger")
	}
}

func TestWithComponent(t *testing.T) {
	log := NewDefault("test").WithComponent("session")
	if log == nil {
		t.Fatal("expected component logger")
	}
}
