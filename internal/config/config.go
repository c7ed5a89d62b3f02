package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Document DocumentConfig `mapstructure:"document"`
	Report   ReportConfig   `mapstructure:"report"`
	Export   ExportConfig   `mapstructure:"export"`
	Log      LogConfig      `mapstructure:"log"`
}

// DocumentConfig defines where log lines live in the exported HTML
type DocumentConfig struct {
	Selector     string `mapstructure:"selector"`
	SkipTrailing int    `mapstructure:"skip_trailing"` // footer elements after the last line
}

// ReportConfig controls the summary report
type ReportConfig struct {
	TopItems int `mapstructure:"top_items"`
}

// ExportConfig controls table export
type ExportConfig struct {
	Format string `mapstructure:"format"` // "csv", "json" or "xlsx"
}

// LogConfig controls logging
type LogConfig struct {
	Level string `mapstructure:"level"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")

	// Set defaults
	v.SetDefault("document.selector", ".right code")
	v.SetDefault("document.skip_trailing", 1)
	v.SetDefault("report.top_items", 5)
	v.SetDefault("export.format", "csv")
	v.SetDefault("log.level", "info")
	return v
}

// Default returns the configuration used when no file is given
func Default() (*Config, error) {
	return LoadConfig("")
}

// LoadConfig loads configuration from a TOML file. An empty path
// returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks values viper cannot check for us
func (c *Config) Validate() error {
	if c.Document.SkipTrailing < 0 {
		return fmt.Errorf("document.skip_trailing must not be negative, got %d", c.Document.SkipTrailing)
	}
	if c.Report.TopItems < 0 {
		return fmt.Errorf("report.top_items must not be negative, got %d", c.Report.TopItems)
	}
	switch c.Export.Format {
	case "csv", "json", "xlsx":
	default:
		return fmt.Errorf("unsupported export.format %q", c.Export.Format)
	}
	return nil
}
