// Package config loads user settings for tint from a TOML file: the default color
// target, the default blend mode, and extra named gradients.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/tint/gradient"
	"github.com/lixenwraith/tint/render"
	"github.com/lixenwraith/tint/terminal"
)

const (
	appDir         = "tint"
	configFileName = "config.toml"
)

// File mirrors the on-disk TOML layout
type File struct {
	Target    string                 `toml:"target"`
	Blend     string                 `toml:"blend"`
	Gradients map[string]GradientDef `toml:"gradients"`
}

// GradientDef is one [gradients.<name>] table
type GradientDef struct {
	Stops []string `toml:"stops"`
}

// Config is the validated, resolved configuration
type Config struct {
	Target    terminal.Target
	Blend     render.BlendMode
	Gradients map[string]gradient.Colors

	// Source is the file the values came from, empty for defaults
	Source string
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Target:    terminal.Foreground,
		Blend:     render.BlendPerceptual,
		Gradients: make(map[string]gradient.Colors),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tint/config.toml (or the OS equivalent)
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate user config directory")
	}
	return filepath.Join(dir, appDir, configFileName), nil
}

// Load reads the file at path. An empty path means DefaultPath, and a missing
// default file yields Default without error; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes and validates TOML text
func Parse(data string) (*Config, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, errors.Wrap(err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return f.resolve()
}

func (f File) resolve() (*Config, error) {
	cfg := Default()

	target, err := terminal.ParseTarget(f.Target)
	if err != nil {
		return nil, errors.Wrap(err, "target")
	}
	cfg.Target = target

	blend, err := render.ParseBlendMode(f.Blend)
	if err != nil {
		return nil, errors.Wrap(err, "blend")
	}
	cfg.Blend = blend

	for name, def := range f.Gradients {
		if len(def.Stops) == 0 {
			return nil, errors.Errorf("gradient %q: no stops", name)
		}
		key := strings.ToLower(name)
		if _, dup := cfg.Gradients[key]; dup {
			return nil, errors.Errorf("gradient %q defined twice", key)
		}
		stops, err := gradient.ParseStops(def.Stops...)
		if err != nil {
			return nil, errors.Wrapf(err, "gradient %q", name)
		}
		cfg.Gradients[key] = stops
	}

	return cfg, nil
}

// Lookup resolves a gradient by name: user gradients first, then built-in presets
func (c *Config) Lookup(name string) (gradient.Stops, error) {
	if stops, ok := c.Gradients[strings.ToLower(name)]; ok {
		return stops, nil
	}
	p, err := gradient.ParsePreset(name)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Named pairs a gradient with its display name
type Named struct {
	Name  string
	Stops gradient.Stops
}

// All returns the built-in presets in catalog order followed by user gradients sorted by name
func (c *Config) All() []Named {
	var out []Named
	for _, p := range gradient.Presets() {
		out = append(out, Named{Name: p.String(), Stops: p})
	}

	names := make([]string, 0, len(c.Gradients))
	for name := range c.Gradients {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out = append(out, Named{Name: name, Stops: c.Gradients[name]})
	}
	return out
}
