package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configName = ".containers.yaml"

type Config struct {
	Kind     string `yaml:"kind"`      // kind of the values given on the command line
	LogLevel string `yaml:"log_level"` // debug, info, warn or error
}

var defaultConfig = Config{
	Kind:     "int",
	LogLevel: "info",
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, configName)
}

// LoadConfig reads path, falling back to the defaults for a missing file or missing fields.
// An empty path means ~/.containers.yaml.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig
	if path == "" {
		if path = defaultConfigPath(); path == "" {
			return &config, nil
		}
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &config, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &config, nil
}

func (c *Config) Logger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}
