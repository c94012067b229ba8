package reveal

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Layout describes the tracked elements of a page. It is produced once by
// a registration step (DOM queries in the browser, a YAML file on the
// command line) and consumed by NewEngine.
type Layout struct {
	ViewportHeight float64       `yaml:"viewport_height"`
	Hero           bool          `yaml:"hero"`
	Sections       []SectionSpec `yaml:"sections"`
	Groups         []GroupSpec   `yaml:"groups"`
}

// SectionSpec is a continuously revealed element.
type SectionSpec struct {
	ID  string  `yaml:"id"`
	Top float64 `yaml:"top"`
}

// GroupSpec is a stagger group. Step and Cap override the named preset
// when non-zero.
type GroupSpec struct {
	Name    string        `yaml:"name"`
	Preset  string        `yaml:"preset"`
	Step    time.Duration `yaml:"step"`
	Cap     time.Duration `yaml:"cap"`
	Members []MemberSpec  `yaml:"members"`
}

// MemberSpec is one line of a stagger group. Top is only needed when
// intersections are derived from offsets rather than reported by a browser.
type MemberSpec struct {
	ID    string        `yaml:"id"`
	Top   float64       `yaml:"top"`
	Extra time.Duration `yaml:"extra"`
}

// PresetByName returns the stagger preset for info, form or rich groups.
func PresetByName(name string) (Preset, bool) {
	switch name {
	case "info":
		return InfoPreset, true
	case "form":
		return FormPreset, true
	case "rich":
		return RichPreset, true
	}
	return Preset{}, false
}

// ResolvePreset returns the effective timing for the group.
func (g GroupSpec) ResolvePreset() (Preset, error) {
	p, ok := PresetByName(g.Preset)
	if !ok && g.Preset != "" {
		return Preset{}, fmt.Errorf("group %q: unknown preset %q", g.Name, g.Preset)
	}
	if !ok {
		p = InfoPreset
	}
	if g.Step > 0 {
		p.Step = g.Step
	}
	if g.Cap > 0 {
		p.Cap = g.Cap
	}
	return p, nil
}

// ParseLayout decodes a YAML layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	for _, g := range l.Groups {
		if _, err := g.ResolvePreset(); err != nil {
			return nil, err
		}
	}
	return &l, nil
}

// LoadLayout reads a YAML layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", path, err)
	}
	return ParseLayout(data)
}
