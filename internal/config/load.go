package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"fuzzdex"
	"fuzzdex/internal/constants"
	"fuzzdex/internal/logger"
)

// DefaultConfig is the configuration fuzzdexctl uses when no config file is
// present. Its search defaults match the fuzzdex library's own defaults so
// the CLI and a program embedding the library agree absent any override.
var DefaultConfig = Config{
	Search: SearchConfig{
		MaxDistance: fuzzdex.DefaultMaxDistance,
		Limit:       fuzzdex.DefaultLimit,
	},
	Logging: LoggingConfig{
		Level: "info",
		JSON:  false,
	},
}

// DefaultConfigWriter returns DefaultConfig marshaled as TOML.
func DefaultConfigWriter() (string, error) {
	configBytes, err := toml.Marshal(DefaultConfig)
	if err != nil {
		return "", fmt.Errorf("failed to marshal default config: %w", err)
	}
	return string(configBytes), nil
}

// Load reads and parses fuzzdexctl's config file, falling back to
// DefaultConfig when the file does not exist.
func Load() (*Config, error) {
	var cfg Config

	configPath, err := ExpandFilePath(constants.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warnf("config file not found at %s, using defaults", configPath)
			configStr, err := DefaultConfigWriter()
			if err != nil {
				return nil, err
			}
			configBytes = []byte(configStr)
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := toml.Unmarshal(configBytes, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ExpandFilePath resolves a leading "~" to the user's home directory and
// returns an absolute path.
func ExpandFilePath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Abs(filepath.Join(home, path[1:]))
	}
	return filepath.Abs(path)
}
