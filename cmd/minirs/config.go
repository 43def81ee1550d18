package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Trace   bool   `yaml:"trace"`
	Dump    bool   `yaml:"dump"`
	Color   string `yaml:"color"`
	History string `yaml:"history"`
}

func defaultConfig() *Config {
	return &Config{
		Color:   "auto",
		History: historyFile,
	}
}

func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := defaultConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("config: invalid color %q", cfg.Color)
	}
	return cfg, nil
}

func (c *Config) applyColor() {
	switch c.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

// historyPath resolves relative history files against the home directory.
func (c *Config) historyPath() string {
	if c.History == "" || filepath.IsAbs(c.History) {
		return c.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return c.History
	}
	return filepath.Join(home, c.History)
}
