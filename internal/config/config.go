package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config controls where records are stored and how they are stored. All
// fields are optional; absent values fall back to defaults.
type Config struct {
	Storage Storage `yaml:"storage"`
	Locale  Locale  `yaml:"locale"`
	Logging Logging `yaml:"logging"`
}

type Storage struct {
	// Backend selects the record store: "file" (default) or "sqlite".
	Backend string `yaml:"backend"`
	// DataDir overrides where records live. Default: ~/.nexus
	DataDir string `yaml:"data_dir"`
}

type Locale struct {
	// DefaultLanguage seeds the language before the user picks one.
	DefaultLanguage string `yaml:"default_language"`
}

type Logging struct {
	// Debug enables use-case logging to stderr (same as NEXUS_DEBUG=1).
	Debug bool `yaml:"debug"`
}

// DefaultDataDir returns ~/.nexus.
func DefaultDataDir() string {
	return filepath.Join(homeDir(), ".nexus")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.nexus/config.yaml > ./config.yaml. An empty return with
// nil error means no config file exists, which is fine: everything defaults.
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	homeConfig := filepath.Join(DefaultDataDir(), "config.yaml")
	if _, err := os.Stat(homeConfig); err == nil {
		return homeConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", nil
}

// Load reads and parses a config YAML file. Load("") returns the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Storage: Storage{Backend: "file"},
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "file"
	}
	return cfg, nil
}

// GetDataDir returns the effective data directory.
func (c *Config) GetDataDir() string {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir
	}
	return DefaultDataDir()
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
