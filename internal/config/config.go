package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const appName = "apptrack"

type Config struct {
	// Data settings
	Data DataConfig `yaml:"data"`

	// Export settings
	Export ExportConfig `yaml:"export"`
}

type DataConfig struct {
	Path string `yaml:"path"` // Path to the apps JSON document
}

type ExportConfig struct {
	Path string `yaml:"path"` // Path for the Markdown export
}

// DefaultConfigPath returns the config file location under the XDG config
// home (e.g. ~/.config/apptrack/config.yaml).
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// DefaultConfig returns sensible defaults: the data file lives under the XDG
// data home, and the export lands alongside it.
func DefaultConfig() *Config {
	dataDir := filepath.Join(xdg.DataHome, appName)
	return &Config{
		Data: DataConfig{
			Path: filepath.Join(dataDir, "apps.json"),
		},
		Export: ExportConfig{
			Path: filepath.Join(dataDir, "apps-list.md"),
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// EnsureDirectories creates the directories holding the data file and export.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(filepath.Dir(c.Data.Path), 0o755); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Dir(c.Export.Path), 0o755)
}
