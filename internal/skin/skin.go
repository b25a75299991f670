// Package skin loads the colours used to draw the dose ring and tooltip.
// Built-in skins ship with the binary; user skins live as YAML files under
// <configDir>/skins/<name>.yml.
package skin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/doseorb/internal/overlay"
)

// ErrUnknownSkin is returned when no built-in or user skin has the name.
var ErrUnknownSkin = errors.New("skin: unknown skin")

// Skin is a named colour set. Colours are hex strings like "#00ffff".
type Skin struct {
	Name    string `yaml:"name"`
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
	Tooltip string `yaml:"tooltip"`
	Accent  string `yaml:"accent"`
}

var builtins = map[string]Skin{
	"default": {Name: "default", Start: "#00ffff", End: "#005c5c", Tooltip: "#c8c8c8", Accent: "#00caca"},
	"amber":   {Name: "amber", Start: "#ffbf00", End: "#5c4500", Tooltip: "#e6d3a3", Accent: "#ffa500"},
	"mono":    {Name: "mono", Start: "#ffffff", End: "#3a3a3a", Tooltip: "#bcbcbc", Accent: "#8a8a8a"},
}

// Builtin returns the named built-in skin.
func Builtin(name string) (Skin, bool) {
	s, ok := builtins[name]
	return s, ok
}

// Load resolves name to a skin. A file in configDir/skins takes precedence
// over a built-in of the same name, and missing fields fall back to the
// default skin.
func Load(name, configDir string) (Skin, error) {
	if name == "" {
		name = "default"
	}

	if configDir != "" {
		path := filepath.Join(configDir, "skins", name+".yml")
		s, err := LoadFile(path)
		if err == nil {
			if s.Name == "" {
				s.Name = name
			}
			return s, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return Skin{}, err
		}
	}

	if s, ok := builtins[name]; ok {
		return s, nil
	}
	return Skin{}, fmt.Errorf("%w: %q", ErrUnknownSkin, name)
}

// LoadFile reads one skin file.
func LoadFile(path string) (Skin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Skin{}, err
	}

	var s Skin
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Skin{}, fmt.Errorf("skin: parse %s: %w", path, err)
	}
	s.fillDefaults()
	if err := s.Validate(); err != nil {
		return Skin{}, fmt.Errorf("skin: %s: %w", path, err)
	}
	return s, nil
}

// Validate checks every colour parses.
func (s Skin) Validate() error {
	for field, value := range map[string]string{
		"start": s.Start, "end": s.End, "tooltip": s.Tooltip, "accent": s.Accent,
	} {
		if _, err := colorful.Hex(value); err != nil {
			return fmt.Errorf("invalid %s colour %q: %w", field, value, err)
		}
	}
	return nil
}

// Palette converts the ring colours for the overlay.
func (s Skin) Palette() (overlay.Palette, error) {
	start, err := colorful.Hex(s.Start)
	if err != nil {
		return overlay.Palette{}, fmt.Errorf("skin %s: start: %w", s.Name, err)
	}
	end, err := colorful.Hex(s.End)
	if err != nil {
		return overlay.Palette{}, fmt.Errorf("skin %s: end: %w", s.Name, err)
	}
	return overlay.Palette{Start: start, End: end}, nil
}

// Marshal renders the skin as YAML, the format Load reads back.
func (s Skin) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

func (s *Skin) fillDefaults() {
	def := builtins["default"]
	if s.Start == "" {
		s.Start = def.Start
	}
	if s.End == "" {
		s.End = def.End
	}
	if s.Tooltip == "" {
		s.Tooltip = def.Tooltip
	}
	if s.Accent == "" {
		s.Accent = def.Accent
	}
}
