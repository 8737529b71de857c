package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// cliConfig is the optional on-disk configuration the engine's single
// configuration knob (unmatched attributes) can be loaded from, alongside
// one purely CLI-level convenience: log-level avoids having to pass
// --verbose on every invocation.
type cliConfig struct {
	UnmatchedAttributes []string `yaml:"unmatched_attributes"`
	LogLevel            string   `yaml:"log_level"`
}

func loadCLIConfig(path string) (*cliConfig, error) {
	if path == "" {
		return &cliConfig{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg cliConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
