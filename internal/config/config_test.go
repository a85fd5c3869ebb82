package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDerive(t *testing.T) {
	spec, err := Default().Derive()
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	// 63.5mm = 2.5in, 88.9mm = 3.5in at 1200 DPI.
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"card width", spec.CardW, 3000},
		{"card height", spec.CardH, 4200},
		{"border top", spec.BorderTop, 142},
		{"border left", spec.BorderLeft, 142},
		{"border right", spec.BorderRight, 142},
		{"border bottom", spec.BorderBottom, 194},
		{"scan offset", spec.ScanOffsetY, 142},
		{"paper width", spec.PaperW, 10200},
		{"paper height", spec.PaperH, 13200},
		{"grid width", spec.GridW, 9000},
		{"grid height", spec.GridH, 12600},
		{"margin x", spec.MarginX, 600},
		{"margin y", spec.MarginY, 300},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	if spec.MarginClamped {
		t.Error("default spec should not clamp margins")
	}
	want := color.NRGBA{R: 0xFF, G: 0x33, B: 0x99, A: 0xFF}
	if spec.GuideColor != want {
		t.Errorf("guide color = %v, want %v", spec.GuideColor, want)
	}
}

func TestDeriveMarginClamp(t *testing.T) {
	cfg := Default()
	cfg.PaperWidthIn = 5 // grid wider than paper
	spec, err := cfg.Derive()
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if !spec.MarginClamped {
		t.Error("expected clamped margins")
	}
	if spec.MarginX != 0 {
		t.Errorf("margin x = %d, want 0", spec.MarginX)
	}
	if spec.MarginY < 0 {
		t.Errorf("margin y = %d, want >= 0", spec.MarginY)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dpi", func(c *Config) { c.DPI = 0 }},
		{"negative card width", func(c *Config) { c.CardWidthMM = -1 }},
		{"zero paper height", func(c *Config) { c.PaperHeightIn = 0 }},
		{"negative border", func(c *Config) { c.BorderBottomMM = -0.5 }},
		{"threshold too high", func(c *Config) { c.BorderThreshold = 256 }},
		{"negative threshold", func(c *Config) { c.BorderThreshold = -1 }},
		{"negative trim", func(c *Config) { c.FullArtBottomCropPx = -1 }},
		{"zero guide width", func(c *Config) { c.GuideWidthPx = 0 }},
		{"negative brightness", func(c *Config) { c.BrightnessFactor = -0.1 }},
		{"bad guide color", func(c *Config) { c.GuideColor = "pink" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"dpi": 300, "force_standard_frame": true}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.DPI != 300 {
		t.Errorf("dpi = %d, want 300", cfg.DPI)
	}
	if !cfg.ForceStandardFrame {
		t.Error("force_standard_frame not applied")
	}
	// Unset fields keep their defaults.
	if cfg.CardWidthMM != 63.5 {
		t.Errorf("card width = %v, want default 63.5", cfg.CardWidthMM)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFromFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(bad); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestDeriveAt300DPI(t *testing.T) {
	cfg := Default()
	cfg.DPI = 300
	spec, err := cfg.Derive()
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if spec.CardW != 750 || spec.CardH != 1050 {
		t.Errorf("card = %dx%d, want 750x1050", spec.CardW, spec.CardH)
	}
	if spec.PaperW != 2550 || spec.PaperH != 3300 {
		t.Errorf("paper = %dx%d, want 2550x3300", spec.PaperW, spec.PaperH)
	}
}
