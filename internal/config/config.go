package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nesting levels: CRAFTFOLIO_CONTACT__ENDPOINT -> contact.endpoint.
const EnvPrefix = "CRAFTFOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CRAFTFOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.SiteDir == "" {
		return fmt.Errorf("site_dir is required")
	}
	if c.ContactDir == "" {
		return fmt.Errorf("contact_dir is required")
	}
	if c.ClockInterval <= 0 {
		return fmt.Errorf("clock_interval must be positive")
	}

	if c.Contact.Endpoint == "" {
		return fmt.Errorf("contact.endpoint is required")
	}
	if c.Contact.Timeout < 0 {
		return fmt.Errorf("contact.timeout must be non-negative")
	}

	r := c.Reveal
	if r.ViewportHeight <= 0 {
		return fmt.Errorf("reveal.viewport_height must be positive")
	}
	if r.Params.RevealFraction+r.Params.FadeEndFraction <= 0 {
		return fmt.Errorf("reveal window must have a positive height")
	}
	if r.Params.VisibleThreshold <= 0 || r.Params.VisibleThreshold > 1 {
		return fmt.Errorf("reveal.params.visible_threshold must be in (0, 1]")
	}
	if r.Params.MaxOffset < 0 {
		return fmt.Errorf("reveal.params.max_offset must be non-negative")
	}
	for name, p := range r.Groups {
		if p.Step < 0 || p.Cap < 0 {
			return fmt.Errorf("reveal group %q: step and cap must be non-negative", name)
		}
	}

	return nil
}
