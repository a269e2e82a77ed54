package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ProcessMining-uOttawa/PMM4RPAAI/pkg/metric"
)

// FileName is the configuration file pare looks for.
const FileName = ".pare.yaml"

// Config is the application configuration from .pare.yaml.
type Config struct {
	Theme   string  `yaml:"theme,omitempty"`
	Format  string  `yaml:"format,omitempty"`
	Top     int     `yaml:"top,omitempty"`
	Aliases Aliases `yaml:"aliases,omitempty"`

	// Path records where the config was loaded from; empty when
	// defaults apply.
	Path string `yaml:"-"`
}

// Aliases extends the built-in column spellings per logical column.
type Aliases struct {
	Activity []string `yaml:"activity,omitempty"`
	Rate     []string `yaml:"rate,omitempty"`
	Cost     []string `yaml:"cost,omitempty"`
	Hours    []string `yaml:"hours,omitempty"`
	Duration []string `yaml:"duration,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Theme: "default", Format: "auto"}
}

// Load reads the nearest .pare.yaml, walking up from the working
// directory and falling back to the user config directory. A missing
// file is not an error; the defaults apply. A malformed file also
// yields the defaults, plus an error the caller may warn about.
func Load() (Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Default(), nil
	}
	return loadAt(wd)
}

func loadAt(dir string) (Config, error) {
	cfg := Default()
	path := findConfigFile(dir)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func findConfigFile(dir string) string {
	if path := findUp(dir); path != "" {
		return path
	}
	if ucd, err := os.UserConfigDir(); err == nil {
		candidate := filepath.Join(ucd, "pare", FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// findUp walks from dir to the filesystem root looking for FileName.
// The nearest file wins.
func findUp(dir string) string {
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Extra converts the alias lists into the metric package's form.
func (c Config) Extra() metric.Extra {
	return metric.Extra{
		Activity: c.Aliases.Activity,
		Rate:     c.Aliases.Rate,
		Value: map[string][]string{
			"cost":     c.Aliases.Cost,
			"hours":    c.Aliases.Hours,
			"duration": c.Aliases.Duration,
		},
	}
}
