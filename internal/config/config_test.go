package config

import (
	"path/filepath"
	"testing"
)

// TestLoadMissingFile checks a missing config file falls back to defaults.
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-config.json"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Output.ReportPath != "gomeet_cost_analysis.json" {
		t.Errorf("report path = %q, want default", cfg.Output.ReportPath)
	}
	if cfg.Output.DefaultFormat != "cli" {
		t.Errorf("default format = %q, want cli", cfg.Output.DefaultFormat)
	}
}

// TestSaveLoadRoundTrip checks Save writes a file Load can read back.
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Output.ReportPath = "custom_report.json"
	cfg.Output.DefaultFormat = "json"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Output.ReportPath != "custom_report.json" {
		t.Errorf("report path = %q, want custom_report.json", loaded.Output.ReportPath)
	}
	if loaded.Output.DefaultFormat != "json" {
		t.Errorf("default format = %q, want json", loaded.Output.DefaultFormat)
	}
}

// TestLoadPartialFile checks unset fields keep their defaults.
func TestLoadPartialFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"output": {"report_path": "other.json"}}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Output.ReportPath != "other.json" {
		t.Errorf("report path = %q, want other.json", cfg.Output.ReportPath)
	}
	if cfg.Version != "1.0" {
		t.Errorf("version = %q, want default 1.0", cfg.Version)
	}
}
