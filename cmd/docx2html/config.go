package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// config holds the resolved settings for one conversion.
type config struct {
	FontSize   int
	Standalone bool
	Title      string
	LogLevel   string
	Output     string
}

func defaultConfig() config {
	return config{LogLevel: "info"}
}

// fileConfig is the on-disk shape shared by the YAML and TOML loaders.
// Unset keys stay nil so they do not clobber defaults.
type fileConfig struct {
	FontSize   *int    `yaml:"font_size" toml:"font_size"`
	Standalone *bool   `yaml:"standalone" toml:"standalone"`
	Title      *string `yaml:"title" toml:"title"`
	LogLevel   *string `yaml:"log_level" toml:"log_level"`
	Output     *string `yaml:"output" toml:"output"`
}

// loadConfig reads a YAML or TOML file, chosen by extension, and overlays
// it on the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return config{}, fmt.Errorf("load config: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return config{}, fmt.Errorf("load config: %w", err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return config{}, fmt.Errorf("load config: %w", err)
		}
	default:
		return config{}, fmt.Errorf("load config: unsupported config extension %q", filepath.Ext(path))
	}

	raw.apply(&cfg)
	if cfg.FontSize < 0 {
		return config{}, fmt.Errorf("load config: font_size must not be negative, got %d", cfg.FontSize)
	}
	return cfg, nil
}

func (f fileConfig) apply(cfg *config) {
	if f.FontSize != nil {
		cfg.FontSize = *f.FontSize
	}
	if f.Standalone != nil {
		cfg.Standalone = *f.Standalone
	}
	if f.Title != nil {
		cfg.Title = strings.TrimSpace(*f.Title)
	}
	if f.LogLevel != nil {
		cfg.LogLevel = strings.TrimSpace(*f.LogLevel)
	}
	if f.Output != nil {
		cfg.Output = strings.TrimSpace(*f.Output)
	}
}

// flagValues carries the command-line values and which of them were set.
type flagValues struct {
	fontSize   int
	standalone bool
	title      string
	logLevel   string
	output     string
	set        map[string]bool
}

// overlay applies explicitly set flags on top of cfg.
func (fv flagValues) overlay(cfg config) config {
	if fv.set["font-size"] {
		cfg.FontSize = fv.fontSize
	}
	if fv.set["standalone"] {
		cfg.Standalone = fv.standalone
	}
	if fv.set["title"] {
		cfg.Title = fv.title
	}
	if fv.set["log-level"] {
		cfg.LogLevel = fv.logLevel
	}
	if fv.set["o"] {
		cfg.Output = fv.output
	}
	return cfg
}
