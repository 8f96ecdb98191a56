// Package config provides configuration management for the trade tracker.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"trade-tracker/internal/dates"
	"trade-tracker/internal/store"
)

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
	UI      UIConfig      `mapstructure:"ui"`
}

// StorageConfig holds persistence configuration.
type StorageConfig struct {
	DataDir  string `mapstructure:"data_dir"` // directory for the database and logs
	Database string `mapstructure:"database"` // database file name inside DataDir
	Key      string `mapstructure:"key"`      // storage key the state tree is saved under
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

// UIConfig holds display configuration.
type UIConfig struct {
	Timezone   string `mapstructure:"timezone"` // zone session date labels are computed in
	TimeFormat string `mapstructure:"time_format"`
}

// DefaultConfigDir returns the directory configuration and data live in.
func DefaultConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "trade-tracker")
}

// Load reads configuration from config.yaml in the config directory, the
// TRACKER_* environment and built-in defaults, in ascending precedence of
// defaults < file < environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("storage.data_dir", DefaultConfigDir())
	v.SetDefault("storage.database", "tracker.db")
	v.SetDefault("storage.key", store.StorageKey)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", false)
	v.SetDefault("logging.file", true)
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 30)
	v.SetDefault("ui.timezone", dates.DefaultZone)
	v.SetDefault("ui.time_format", "15:04:05")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(DefaultConfigDir())
	v.SetEnvPrefix("TRACKER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// DatabasePath returns the full path of the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.Database)
}

// LogPath returns the full path of the rotating log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Storage.DataDir, "logs", "tracker.log")
}

// EnsureDataDir creates the data directory if it does not exist.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.Storage.DataDir, 0o755)
}
