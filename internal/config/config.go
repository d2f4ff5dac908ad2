package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/kanban/internal/config/colors"
)

const (
	appName = "kanban"

	// EnvDataDir overrides storage.path when set
	EnvDataDir = "KANBAN_DATA_DIR"
	// EnvThemeFile points at a YAML file whose theme section is merged over the config
	EnvThemeFile = "KANBAN_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig      `yaml:"storage"`
	Defaults    DefaultsConfig     `yaml:"defaults"`
	Drag        DragConfig         `yaml:"drag"`
	Server      ServerConfig       `yaml:"server"`
	Log         LogConfig          `yaml:"log"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// StorageConfig selects the persistence bridge
type StorageConfig struct {
	Driver string `yaml:"driver"` // sqlite, file or memory
	Path   string `yaml:"path"`   // data directory
	Codec  string `yaml:"codec"`  // json or cbor
}

// DefaultsConfig holds the values given to freshly created entities
type DefaultsConfig struct {
	ColumnTitle string `yaml:"column_title"`
	TaskContent string `yaml:"task_content"`
}

// DragConfig tunes the drag controller
type DragConfig struct {
	ApplyTasksOnDrop bool `yaml:"apply_tasks_on_drop"`
}

// ServerConfig configures `kanban serve`
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig configures the file logger
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a config with every field set to its default value
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from KANBAN_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, err
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	loadThemeFile(&config)

	if dir := os.Getenv(EnvDataDir); dir != "" {
		config.Storage.Path = dir
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the location Load and Save use
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// defaultDataDir returns ~/.kanban, or a relative .kanban when there is no home
func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(homeDir, "."+appName)
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Driver == "" {
		c.Storage.Driver = "sqlite"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = defaultDataDir()
	}
	if c.Storage.Codec == "" {
		c.Storage.Codec = "json"
	}
	if c.Defaults.ColumnTitle == "" {
		c.Defaults.ColumnTitle = "Column"
	}
	if c.Defaults.TaskContent == "" {
		c.Defaults.TaskContent = "Task"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
