package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/provload/pkg/core"
	"github.com/aretw0/provload/pkg/logging"
)

// Config is the on-disk loader configuration.
type Config struct {
	// Provider is the spec to load; empty or "none" selects the dummy provider.
	Provider   string          `yaml:"provider"`
	MaxHandles int             `yaml:"max_handles"`
	LogLevel   string          `yaml:"log_level"`
	Discover   DiscoverConfig  `yaml:"discover"`
	Variables  []VariableEntry `yaml:"variables"`
}

// DiscoverConfig drives provider discovery.
type DiscoverConfig struct {
	Root    string `yaml:"root"`
	Pattern string `yaml:"pattern"`
}

// VariableEntry is a provider variable applied with SetVariable after loading.
type VariableEntry struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates YAML configuration.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the loader cannot honour.
func (c Config) Validate() error {
	if c.MaxHandles < 0 {
		return fmt.Errorf("max_handles must not be negative, got %d", c.MaxHandles)
	}
	if c.LogLevel != "" {
		if _, err := core.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	for i, v := range c.Variables {
		if v.Name == "" {
			return fmt.Errorf("variables[%d]: name is empty", i)
		}
	}
	return nil
}

// Options turns the configuration into loader options, filtering sink below
// the configured log level.
func (c Config) Options(sink core.LogFunc) []Option {
	if sink == nil {
		sink = logging.Default()
	}
	if c.LogLevel != "" {
		// Validated already.
		lvl, _ := core.ParseLevel(c.LogLevel)
		sink = logging.Filter(sink, lvl)
	}
	return []Option{
		WithLogger(sink),
		WithMaxHandles(c.MaxHandles),
	}
}

// Apply sets the configured variables on a loaded provider.
func (c Config) Apply(p core.Provider) error {
	for _, v := range c.Variables {
		if err := p.SetVariable(v.Name, v.Value); err != nil {
			return fmt.Errorf("set variable %s: %w", v.Name, err)
		}
	}
	return nil
}
