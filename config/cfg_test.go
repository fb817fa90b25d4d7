package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Layout.FontSize != 10 || cfg.Layout.PageWidth != 612 || cfg.Layout.PageHeight != 792 {
		t.Errorf("Default layout = %+v", cfg.Layout)
	}
	if cfg.Layout.LineHeightFactor != 1.5 || cfg.Layout.CharWidthFactor != 0.4 {
		t.Errorf("Default estimator factors = %v, %v", cfg.Layout.LineHeightFactor, cfg.Layout.CharWidthFactor)
	}
	if cfg.Output.Format != OutputFmtHtml || !cfg.Output.FileNameTransliterate {
		t.Errorf("Default output = %+v", cfg.Output)
	}
	if cfg.Fonts.Generic != "sans-serif" || cfg.Fonts.Families["Myriad Pro"] != "Arial" {
		t.Errorf("Default fonts = %+v", cfg.Fonts)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" || cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("Default logging = %+v", cfg.Logging)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `version: 1
layout:
  font_size: 12
  page_width: 595
fonts:
  generic: serif
  families:
    "Frutiger": "Helvetica"
output:
  format: tree
  output_name_template: "{{ .Name }}-{{ .Index }}"
logging:
  console:
    level: debug
  file:
    level: debug
    destination: `+filepath.Join(dir, "logs", "test.log")+`
    mode: append
reporting:
  destination: `+filepath.Join(dir, "report.zip")+`
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Layout.FontSize != 12 || cfg.Layout.PageWidth != 595 {
		t.Errorf("layout = %+v", cfg.Layout)
	}
	// values absent from file keep defaults
	if cfg.Layout.PageHeight != 792 || cfg.Layout.CharWidthFactor != 0.4 {
		t.Errorf("defaults lost: %+v", cfg.Layout)
	}
	if cfg.Output.Format != OutputFmtTree {
		t.Errorf("format = %s, want tree", cfg.Output.Format)
	}
	if cfg.Output.OutputNameTemplate != "{{ .Name }}-{{ .Index }}" {
		t.Errorf("name template = %q, want unexpanded", cfg.Output.OutputNameTemplate)
	}
	if cfg.Fonts.Families["Frutiger"] != "Helvetica" {
		t.Errorf("families = %v", cfg.Fonts.Families)
	}
	if _, err := os.Stat(filepath.Join(dir, "logs")); err != nil {
		t.Errorf("log directory was not created: %v", err)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\nlayout:\n  font_size: 10\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"wrong version", "version: 2\n"},
		{"zero font size", "version: 1\nlayout:\n  font_size: 0\n"},
		{"negative factor", "version: 1\nlayout:\n  char_width_factor: -1\n"},
		{"unknown format", "version: 1\noutput:\n  format: pdf\n"},
		{"bad generic family", "version: 1\nfonts:\n  generic: gothic\n"},
		{"empty family", "version: 1\nfonts:\n  families:\n    \"Myriad Pro\": \"\"\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
		{"page narrower than a character", "version: 1\nlayout:\n  font_size: 100\n  page_width: 10\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Errorf("LoadConfiguration() succeeded, want error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	var called bool
	option := func(opts *gencfg.ProcessingOptions) {
		called = true
	}
	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if !called || cfg == nil {
		t.Errorf("option called = %v, cfg = %v", called, cfg)
	}
	if !strings.HasSuffix(cfg.Reporting.Destination, "formtree-report.zip") {
		t.Errorf("report destination = %q", cfg.Reporting.Destination)
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), `output_name_template: ""`) {
		t.Error("Prepare() lost output name template")
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Output.Format = OutputFmtTree

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "format: tree") {
		t.Errorf("Dump() output misses format:\n%s", data)
	}

	back, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("dumped config does not load: %v", err)
	}
	if back.Output.Format != OutputFmtTree || back.Layout != cfg.Layout {
		t.Errorf("dumped config = %+v", back)
	}
}

func TestOutputFmt(t *testing.T) {
	tests := []struct {
		in   string
		want OutputFmt
		ext  string
	}{
		{"html", OutputFmtHtml, ".html"},
		{"HTML", OutputFmtHtml, ".html"},
		{"tree", OutputFmtTree, ".txt"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFmt(tt.in)
			if err != nil {
				t.Fatalf("ParseOutputFmt(%q) error = %v", tt.in, err)
			}
			if got != tt.want || got.Ext() != tt.ext {
				t.Errorf("ParseOutputFmt(%q) = %s (%s), want %s (%s)", tt.in, got, got.Ext(), tt.want, tt.ext)
			}
		})
	}
	if _, err := ParseOutputFmt("pdf"); err == nil {
		t.Error("ParseOutputFmt(pdf) succeeded")
	}
}
