package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/leonardinius/lispcalc/internal/interpreter"
)

// DefaultFileName is looked up in the user config directory when no path is given.
const DefaultFileName = "lispcalc.yaml"

// Config holds driver settings.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	LogLevel    string `yaml:"log_level"`
	Arithmetic  string `yaml:"arithmetic"`
}

func Default() Config {
	return Config{
		Prompt:     "> ",
		LogLevel:   zerolog.WarnLevel.String(),
		Arithmetic: interpreter.ArithmeticChecked.String(),
	}
}

// DefaultPath returns <user config dir>/lispcalc/lispcalc.yaml, or "" if the
// config dir is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lispcalc", DefaultFileName)
}

// Load reads path over Default(). A missing file is not an error unless
// required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.ArithmeticMode(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

func (c Config) ArithmeticMode() (interpreter.Arithmetic, error) {
	a, err := interpreter.ParseArithmetic(c.Arithmetic)
	if err != nil {
		return a, fmt.Errorf("arithmetic: %w", err)
	}
	return a, nil
}
