package app

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gridlife/pkg/core"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map splits the collected pairs. Later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	ConfigPath string
	Overrides  KVList
	LogLevel   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 4, TPS: 10, Seed: 42, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file with simulation settings")
	fs.Var(&c.Overrides, "set", "simulation setting in key=value form (repeatable)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// SimSettings merges the YAML file (if any) with -set overrides into the flat
// map sim factories accept.
func (c *Config) SimSettings() (map[string]string, error) {
	out := map[string]string{}
	if c.ConfigPath != "" {
		var err error
		if out, err = core.ReadSettings(c.ConfigPath); err != nil {
			return nil, err
		}
	}
	for k, v := range c.Overrides.Map() {
		out[k] = v
	}
	return out, nil
}

// Logger builds a text slog.Logger on stderr at the configured level.
func (c *Config) Logger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
