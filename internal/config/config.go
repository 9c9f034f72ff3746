package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = ".pydoccheck.yml"

// Config holds the tool configuration, loaded from a YAML file and overlaid
// by command-line flags
type Config struct {
	Workers int      `yaml:"workers"`
	Format  string   `yaml:"format"`
	Exclude []string `yaml:"exclude"`

	Cache  Cache  `yaml:"cache"`
	Checks Checks `yaml:"checks"`
	Logger Logger `yaml:"logger"`
}

// Cache configures the result cache
type Cache struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Checks toggles the optional finding kinds
type Checks struct {
	RequireDocstring bool `yaml:"require_docstring"`
	CheckOrder       bool `yaml:"check_order"`
}

// Logger configures log output
type Logger struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Format: "text",
		Cache: Cache{
			Enabled: true,
			Path:    defaultCachePath(),
		},
		Logger: Logger{Level: "warn"},
	}
}

// Load reads a config file, applying defaults for unset fields. A missing
// file at the default location is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = defaultCachePath()
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "warn"
	}

	return cfg, nil
}

func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pydoccheck.db"
	}
	return filepath.Join(home, ".pydoccheck", "cache.db")
}
