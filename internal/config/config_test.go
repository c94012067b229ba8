package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ziadkadry99/craftfolio/internal/reveal"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.Contact.Timeout != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %v", cfg.Contact.Timeout)
	}
	if cfg.Reveal.Params != reveal.DefaultParams() {
		t.Errorf("unexpected reveal params %+v", cfg.Reveal.Params)
	}
	if len(cfg.Reveal.Groups) != 3 {
		t.Errorf("expected 3 group presets, got %d", len(cfg.Reveal.Groups))
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.craftfolio.yml")

	original := DefaultConfig()
	original.Port = 8080
	original.SiteDir = "public"
	original.StaticDeny = []string{"private/**"}
	original.Contact.Timeout = 3 * time.Second
	original.Contact.Folder = "/srv/site"
	original.Reveal.Params.VisibleThreshold = 0.8
	original.Reveal.Groups["services"] = reveal.Preset{Step: 70 * time.Millisecond, Cap: time.Second}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.SiteDir != original.SiteDir {
		t.Errorf("site_dir: got %q, want %q", loaded.SiteDir, original.SiteDir)
	}
	if loaded.Contact.Timeout != original.Contact.Timeout {
		t.Errorf("contact.timeout: got %v, want %v", loaded.Contact.Timeout, original.Contact.Timeout)
	}
	if loaded.Contact.Folder != original.Contact.Folder {
		t.Errorf("contact.folder: got %q, want %q", loaded.Contact.Folder, original.Contact.Folder)
	}
	if loaded.Reveal.Params.VisibleThreshold != 0.8 {
		t.Errorf("visible_threshold: got %v, want 0.8", loaded.Reveal.Params.VisibleThreshold)
	}
	if got := loaded.Reveal.Groups["services"]; got.Step != 70*time.Millisecond || got.Cap != time.Second {
		t.Errorf("services preset: got %+v", got)
	}
	if len(loaded.StaticDeny) != 1 || loaded.StaticDeny[0] != "private/**" {
		t.Errorf("static_deny: got %v", loaded.StaticDeny)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("CRAFTFOLIO_PORT", "9090")
	t.Setenv("CRAFTFOLIO_CONTACT__ENDPOINT", "https://example.com/api/contact")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9090 {
		t.Errorf("env override failed: got %d, want 9090", loaded.Port)
	}
	if loaded.Contact.Endpoint != "https://example.com/api/contact" {
		t.Errorf("nested env override failed: got %q", loaded.Contact.Endpoint)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	os.WriteFile(path, []byte("port: [unterminated"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative port", func(c *Config) { c.Port = -1 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"empty site dir", func(c *Config) { c.SiteDir = "" }},
		{"empty contact dir", func(c *Config) { c.ContactDir = "" }},
		{"zero clock", func(c *Config) { c.ClockInterval = 0 }},
		{"empty endpoint", func(c *Config) { c.Contact.Endpoint = "" }},
		{"negative timeout", func(c *Config) { c.Contact.Timeout = -time.Second }},
		{"zero viewport", func(c *Config) { c.Reveal.ViewportHeight = 0 }},
		{"threshold above one", func(c *Config) { c.Reveal.Params.VisibleThreshold = 1.5 }},
		{"empty window", func(c *Config) { c.Reveal.Params.RevealFraction, c.Reveal.Params.FadeEndFraction = 0, 0 }},
		{"negative offset", func(c *Config) { c.Reveal.Params.MaxOffset = -1 }},
		{"negative step", func(c *Config) { c.Reveal.Groups["info"] = reveal.Preset{Step: -1} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRevealPreset(t *testing.T) {
	r := DefaultConfig().Reveal
	r.Groups["info"] = reveal.Preset{Step: time.Millisecond, Cap: time.Second}

	if p, ok := r.Preset("info"); !ok || p.Step != time.Millisecond {
		t.Errorf("configured preset not used: %+v", p)
	}
	delete(r.Groups, "form")
	if p, ok := r.Preset("form"); !ok || p != reveal.FormPreset {
		t.Errorf("built-in fallback not used: %+v", p)
	}
	if _, ok := r.Preset("unknown"); ok {
		t.Error("unknown preset should not resolve")
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"private/**", []string{"private/**"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
