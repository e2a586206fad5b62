package life

import (
	"strconv"

	"gridlife/pkg/core"
	"gridlife/pkg/grid"
)

// Config holds the board and seeding parameters for a Life simulation.
type Config struct {
	Width       int
	Height      int
	Wrap        bool
	InertBorder bool
	Rule        string
	Density     float64
	Seed        int64
	Workers     int

	// Pattern names a built-in shape or a plaintext file. When set, Reset
	// places it instead of seeding randomly.
	Pattern  string
	PatternX int
	PatternY int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   128,
		Height:  128,
		Wrap:    true,
		Rule:    Conway.String(),
		Density: 0.5,
		Seed:    42,
		Workers: 1,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overrides fields present in kv. Values that fail to parse are ignored.
func (c Config) Apply(kv map[string]string) Config {
	if kv == nil {
		return c
	}
	if v, ok := lookup(kv, "w", "width"); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := lookup(kv, "h", "height"); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := kv["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Wrap = parsed
		}
	}
	if v, ok := kv["inert_border"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.InertBorder = parsed
		}
	}
	if v, ok := kv["rule"]; ok {
		if _, err := ParseRule(v); err == nil {
			c.Rule = v
		}
	}
	if v, ok := kv["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := kv["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := kv["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}
	if v, ok := kv["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := kv["pattern_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.PatternX = parsed
		}
	}
	if v, ok := kv["pattern_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.PatternY = parsed
		}
	}
	return c
}

// lookup returns the value of the first key present in kv.
func lookup(kv map[string]string, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := kv[k]; ok {
			return v, true
		}
	}
	return "", false
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys and values follow
// Apply: aliases are accepted, missing keys keep their defaults and invalid
// values are ignored.
func LoadConfig(path string) (Config, error) {
	kv, err := core.ReadSettings(path)
	if err != nil {
		return DefaultConfig(), err
	}
	return FromMap(kv), nil
}

// GridOptions converts the board part of the config for grid.BuildWithOptions.
func (c Config) GridOptions() grid.Options {
	return grid.Options{
		Width:       c.Width,
		Height:      c.Height,
		Wrap:        c.Wrap,
		InertBorder: c.InertBorder,
	}
}
