// Package config resolves troybin CLI settings.
//
// Settings come from built-in defaults, an optional TOML file, the
// environment and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// Output formats accepted by the dump and particles commands.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config is the resolved CLI configuration.
type Config struct {
	LogLevel   string `toml:"log_level"`
	JSONLog    bool   `toml:"-"`
	Format     string `toml:"format"`
	Dictionary string `toml:"dictionary"`

	// Path is the file the settings were read from, empty if none.
	Path string `toml:"-"`
}

// Env is the environment form of Config.
type Env struct {
	LogLevel   string `env:"TROYBIN_LOG_LEVEL"`
	JSONLog    bool   `env:"TROYBIN_JSON_LOG"`
	Config     string `env:"TROYBIN_CONFIG"`
	Dictionary string `env:"TROYBIN_DICT"`
}

// Flags holds command-line overrides. Empty fields do not override.
type Flags struct {
	LogLevel   string
	ConfigPath string
	Format     string
	Dictionary string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Format:   FormatText,
	}
}

// ReadFile merges the TOML file at path into c. Keys absent from the file
// keep their current values.
func (c *Config) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.Path = path
	return nil
}

// Validate checks the resolved values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	return nil
}

// Load resolves the configuration from defaults, file, environment and
// flags. An explicitly named config file must exist; the default one is
// optional.
func Load(flags Flags) (Config, error) {
	c := Default()

	e, err := env.ParseAs[Env]()
	if err != nil {
		return c, fmt.Errorf("parsing environment: %w", err)
	}

	path, explicit := flags.ConfigPath, true
	if path == "" {
		path = e.Config
	}
	if path == "" {
		path, explicit = DefaultPath(), false
	}
	if err := c.ReadFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return c, err
		}
	}

	if e.LogLevel != "" {
		c.LogLevel = e.LogLevel
	}
	if e.Dictionary != "" {
		c.Dictionary = e.Dictionary
	}
	c.JSONLog = e.JSONLog

	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Dictionary != "" {
		c.Dictionary = flags.Dictionary
	}

	return c, c.Validate()
}
