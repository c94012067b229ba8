package config

import (
	"time"

	"github.com/ziadkadry99/craftfolio/internal/reveal"
)

// Config is the top-level craftfolio configuration, corresponding to .craftfolio.yml.
type Config struct {
	Port            int           `yaml:"port" koanf:"port"`
	SiteDir         string        `yaml:"site_dir" koanf:"site_dir"`
	DataDir         string        `yaml:"data_dir" koanf:"data_dir"`
	ContactDir      string        `yaml:"contact_dir" koanf:"contact_dir"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	StaticDeny      []string      `yaml:"static_deny" koanf:"static_deny"`
	ClockInterval   time.Duration `yaml:"clock_interval" koanf:"clock_interval"`
	Contact         ContactConfig `yaml:"contact" koanf:"contact"`
	Reveal          RevealConfig  `yaml:"reveal" koanf:"reveal"`
}

// ContactConfig controls the contact submission pipeline.
type ContactConfig struct {
	Endpoint  string        `yaml:"endpoint" koanf:"endpoint"`
	Timeout   time.Duration `yaml:"timeout" koanf:"timeout"`
	UserAgent string        `yaml:"user_agent" koanf:"user_agent"`
	// Folder pre-selects the project folder for the local file tier. When
	// empty the user is asked once per session.
	Folder      string `yaml:"folder" koanf:"folder"`
	DownloadDir string `yaml:"download_dir" koanf:"download_dir"`
}

// RevealConfig holds the scroll reveal tuning.
type RevealConfig struct {
	ViewportHeight float64                  `yaml:"viewport_height" koanf:"viewport_height"`
	Params         reveal.Params            `yaml:"params" koanf:"params"`
	Groups         map[string]reveal.Preset `yaml:"groups" koanf:"groups"`
}

// Preset returns the configured stagger preset for a group name, falling
// back to the built-in presets.
func (r RevealConfig) Preset(name string) (reveal.Preset, bool) {
	if p, ok := r.Groups[name]; ok {
		return p, true
	}
	return reveal.PresetByName(name)
}
