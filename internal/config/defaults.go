package config

import (
	"time"

	"github.com/ziadkadry99/craftfolio/internal/contact"
	"github.com/ziadkadry99/craftfolio/internal/reveal"
)

// DefaultStaticDeny are glob patterns the static file server never serves.
var DefaultStaticDeny = []string{
	"contact/**",
	"**/.*",
	"**/*.go",
	"go.mod",
	"go.sum",
	".craftfolio/**",
	"*.yml",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:          3000,
		SiteDir:       ".",
		DataDir:       ".craftfolio",
		ContactDir:    "contact",
		StaticDeny:    append([]string(nil), DefaultStaticDeny...),
		ClockInterval: time.Second,
		Contact: ContactConfig{
			Endpoint:  "http://localhost:3000/api/contact",
			Timeout:   contact.DefaultRemoteTimeout,
			UserAgent: "craftfolio-cli",
		},
		Reveal: RevealConfig{
			ViewportHeight: 900,
			Params:         reveal.DefaultParams(),
			Groups: map[string]reveal.Preset{
				"info": reveal.InfoPreset,
				"form": reveal.FormPreset,
				"rich": reveal.RichPreset,
			},
		},
	}
}
