package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int

	Width   int
	Height  int
	Rule    string
	Border  string
	Density float64
	Pattern string
}

// NewConfig returns a Config populated with sensible defaults. Zero grid
// fields leave the simulation's own defaults in place.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 30, Seed: 42, HUDWidth: 220, Density: -1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the control panel in pixels (0 hides it)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule in B/S notation, e.g. B3/S23")
	fs.StringVar(&c.Border, "border", c.Border, "border mode: as-is, forever-dead, forever-alive, warp, mirror")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability on reset")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern name or [WxH]digits stamped at the center")
}

// Options converts the set fields into the key/value form accepted by
// simulation factories.
func (c *Config) Options() map[string]string {
	opts := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	if c.Width > 0 {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["h"] = strconv.Itoa(c.Height)
	}
	if c.Rule != "" {
		opts["rule"] = c.Rule
	}
	if c.Border != "" {
		opts["border"] = c.Border
	}
	if c.Density >= 0 {
		opts["density"] = strconv.FormatFloat(c.Density, 'f', -1, 64)
	}
	if c.Pattern != "" {
		opts["pattern"] = c.Pattern
	}
	return opts
}
