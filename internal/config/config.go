package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	General  GeneralConfig  `mapstructure:"general"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Display  DisplayConfig  `mapstructure:"display"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// GeneralConfig represents ledger storage configuration
type GeneralConfig struct {
	DataPath         string `mapstructure:"data_path"`           // Directory holding the month files
	ShowDaysAfterLog int    `mapstructure:"show_days_after_log"` // Window size printed after a log operation
}

// HolidaysConfig represents holiday provider configuration
type HolidaysConfig struct {
	Provider    string `mapstructure:"provider"` // "region", "api" or "composite"
	Country     string `mapstructure:"country"`
	Subdivision string `mapstructure:"subdivision"`
	APIURL      string `mapstructure:"api_url"` // For api/composite types
	CacheTTL    string `mapstructure:"cache_ttl"`
}

// DisplayConfig represents output formatting configuration
type DisplayConfig struct {
	NaNReplacement string `mapstructure:"nan_replacement"` // Shown for absent values, never persisted
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.arbeitszeit")
		v.AddConfigPath("/etc/arbeitszeit")
	}

	// Read environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()

	// A relative data_path is resolved against the config file's directory
	if config.General.DataPath != "" && !filepath.IsAbs(config.General.DataPath) {
		configDir := filepath.Dir(v.ConfigFileUsed())
		config.General.DataPath = filepath.Join(configDir, config.General.DataPath)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// applyDefaults fills optional fields with their documented defaults
func (c *Config) applyDefaults() {
	if c.General.ShowDaysAfterLog == 0 {
		c.General.ShowDaysAfterLog = 5
	}
	if c.Holidays.Provider == "" {
		c.Holidays.Provider = "region"
	}
	if c.Display.NaNReplacement == "" {
		c.Display.NaNReplacement = "-"
	}
	if c.Logging.LogLevel == "" {
		c.Logging.LogLevel = "info"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate General config
	if c.General.DataPath == "" {
		return fmt.Errorf("general.data_path is required")
	}
	if c.General.ShowDaysAfterLog <= 0 {
		return fmt.Errorf("general.show_days_after_log must be positive")
	}

	// Validate Holidays config
	if c.Holidays.Country == "" {
		return fmt.Errorf("holidays.country is required")
	}

	switch c.Holidays.Provider {
	case "region":
		// Country/subdivision codes are checked by the provider constructor
	case "api", "composite":
		if c.Holidays.APIURL == "" {
			return fmt.Errorf("holidays.api_url is required for %s provider", c.Holidays.Provider)
		}
	default:
		return fmt.Errorf("holidays.provider must be 'region', 'api' or 'composite', got '%s'", c.Holidays.Provider)
	}

	return nil
}

// GetCacheTTL returns the holiday cache TTL duration
func (c *HolidaysConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.General.DataPath = os.ExpandEnv(c.General.DataPath)
	c.Holidays.APIURL = os.ExpandEnv(c.Holidays.APIURL)
}
