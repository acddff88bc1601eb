package life

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Colors names the render colors in #rrggbb form.
type Colors struct {
	Alive string `yaml:"alive"`
	Dead  string `yaml:"dead"`
}

// Config controls a life engine. The same struct backs the registry factory
// (via FromMap) and YAML run files (via ParseConfig).
type Config struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Rule    string  `yaml:"rule"`
	Border  string  `yaml:"border"`
	Seed    int64   `yaml:"seed"`
	Density float64 `yaml:"density"`
	Pattern string  `yaml:"pattern,omitempty"`
	Colors  Colors  `yaml:"colors"`
	Steps   int     `yaml:"steps"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   256,
		Height:  256,
		Rule:    ConwayRule.String(),
		Border:  Warp.String(),
		Seed:    1337,
		Density: DefaultDensity,
		Colors: Colors{
			Alive: DefaultAliveColor.Hex(),
			Dead:  DefaultDeadColor.Hex(),
		},
		Steps: 100,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that do not parse are ignored and the default is kept.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if r, err := ParseRule(v); err == nil {
			c.Rule = r.String()
		}
	}
	if v, ok := cfg["border"]; ok {
		if m, err := ParseBorderMode(v); err == nil {
			c.Border = m.String()
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if _, err := ParsePattern(v); err == nil {
			c.Pattern = v
		}
	}
	return c
}

// ParseConfig decodes a YAML run file on top of DefaultConfig and validates
// the result.
func ParseConfig(b []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and parses a YAML run file.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c, err := ParseConfig(b)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("config: negative size %dx%d", c.Width, c.Height)
	}
	if _, err := ParseRule(c.Rule); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := ParseBorderMode(c.Border); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("config: density %v outside [0, 1]", c.Density)
	}
	if c.Pattern != "" {
		if _, err := ParsePattern(c.Pattern); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if _, err := c.colors(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Steps < 0 {
		return fmt.Errorf("config: negative steps %d", c.Steps)
	}
	return nil
}

func (c Config) colors() ([2]Color, error) {
	out := [2]Color{DefaultDeadColor, DefaultAliveColor}
	if c.Colors.Dead != "" {
		col, err := ParseColor(c.Colors.Dead)
		if err != nil {
			return out, err
		}
		out[Dead] = col
	}
	if c.Colors.Alive != "" {
		col, err := ParseColor(c.Colors.Alive)
		if err != nil {
			return out, err
		}
		out[Alive] = col
	}
	return out, nil
}

// NewFromConfig builds an engine from c. Without a pattern the grid is
// randomized at c.Density; with one, the pattern is stamped on an empty grid.
func NewFromConfig(c Config, opts ...Option) (*Life, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rule, _ := ParseRule(c.Rule)
	border, _ := ParseBorderMode(c.Border)
	colors, _ := c.colors()
	base := []Option{
		WithSeed(c.Seed),
		WithRule(rule),
		WithBorderMode(border),
		WithColors(colors[Dead], colors[Alive]),
		WithDensity(c.Density),
	}
	l := New(c.Width, c.Height, Dead, append(base, opts...)...)
	if c.Pattern == "" {
		l.Randomize(c.Density)
		return l, nil
	}
	if err := l.SetFromPatternCentered(c.Pattern); err != nil {
		return nil, err
	}
	l.log.Debug("pattern stamped", slog.String("pattern", c.Pattern))
	return l, nil
}
