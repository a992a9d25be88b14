package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"api_key": "test-key", "model": "gemini-2.5-flash", "port": 9090, "log_level": "debug"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.APIKey != "test-key" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "env-key"}
	merged := cfg.MergeWithDefaults(Config{
		APIKey:   "file-key",
		Model:    "file-model",
		Port:     8080,
		LogLevel: "warn",
	})

	if merged.APIKey != "env-key" {
		t.Errorf("APIKey = %q, env value should win", merged.APIKey)
	}
	if merged.Model != "file-model" {
		t.Errorf("Model = %q", merged.Model)
	}
	if merged.Port != 8080 {
		t.Errorf("Port = %d", merged.Port)
	}
	if merged.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", merged.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing API key")
	}

	cfg = Config{APIKey: "k", Port: 70000}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range port")
	}

	cfg = Config{APIKey: "k", Port: 8080}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
