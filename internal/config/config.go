// Package config loads engine configuration from YAML files or generic
// maps supplied by an embedding host.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Classes names the transient marker classes toggled on the root element.
type Classes struct {
	Changing  string `yaml:"changing" mapstructure:"changing"`
	Leaving   string `yaml:"leaving" mapstructure:"leaving"`
	Rendering string `yaml:"rendering" mapstructure:"rendering"`
}

// Config is the engine configuration surface.
type Config struct {
	// Cache gates page caching. When false, the store is emptied at the
	// end of every render so preloaded entries never leak in.
	Cache bool `yaml:"cache" mapstructure:"cache"`

	// Containers are the selectors swapped on navigation.
	Containers []string `yaml:"containers" mapstructure:"containers"`

	// Animate is the default transition-animation flag for new visits.
	Animate bool `yaml:"animate" mapstructure:"animate"`

	// Classes overrides the marker class names.
	Classes Classes `yaml:"classes" mapstructure:"classes"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Cache:      true,
		Containers: []string{"#swup"},
		Animate:    true,
		Classes: Classes{
			Changing:  "is-changing",
			Leaving:   "is-leaving",
			Rendering: "is-rendering",
		},
	}
}

// Load reads a YAML config file, applying defaults for absent fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return normalize(&cfg)
}

// FromMap decodes a generic map (e.g. host-provided options) into a
// Config, applying defaults for absent fields.
func FromMap(m map[string]any) (*Config, error) {
	cfg := Default()

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	return normalize(&cfg)
}

func normalize(cfg *Config) (*Config, error) {
	if len(cfg.Containers) == 0 {
		return nil, fmt.Errorf("config: at least one container is required")
	}
	def := Default().Classes
	if cfg.Classes.Changing == "" {
		cfg.Classes.Changing = def.Changing
	}
	if cfg.Classes.Leaving == "" {
		cfg.Classes.Leaving = def.Leaving
	}
	if cfg.Classes.Rendering == "" {
		cfg.Classes.Rendering = def.Rendering
	}
	return cfg, nil
}
