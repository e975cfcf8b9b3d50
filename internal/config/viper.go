// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Catalog struct {
		BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
		Limit          int    `mapstructure:"limit" yaml:"limit"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		CacheFile      string `mapstructure:"cache_file" yaml:"cache_file"`
		CacheEnabled   bool   `mapstructure:"cache_enabled" yaml:"cache_enabled"`
	} `mapstructure:"catalog" yaml:"catalog"`

	Analysis struct {
		TopProducts  int `mapstructure:"top_products" yaml:"top_products"`
		LowThreshold int `mapstructure:"low_threshold" yaml:"low_threshold"`
	} `mapstructure:"analysis" yaml:"analysis"`

	Output struct {
		ReportFile   string `mapstructure:"report_file" yaml:"report_file"`
		EnrichedFile string `mapstructure:"enriched_file" yaml:"enriched_file"`
		Currency     string `mapstructure:"currency" yaml:"currency"`
	} `mapstructure:"output" yaml:"output"`
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.sales-csv")
	v.AddConfigPath(".sales-csv")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("SALES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// GetConfig returns the global configuration, initializing it on first use.
func GetConfig() *Config {
	configOnce.Do(func() {
		cfg, err := InitializeConfig()
		if err != nil {
			Logger.Warnf("Failed to initialize configuration, using defaults: %v", err)
			cfg = defaultConfig()
		}
		globalConfig = cfg
	})
	return globalConfig
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", "|")

	v.SetDefault("catalog.base_url", "https://dummyjson.com")
	v.SetDefault("catalog.limit", 100)
	v.SetDefault("catalog.timeout_seconds", 30)
	v.SetDefault("catalog.cache_file", ".sales-csv/catalog-cache.yaml")
	v.SetDefault("catalog.cache_enabled", true)

	v.SetDefault("analysis.top_products", 5)
	v.SetDefault("analysis.low_threshold", 10)

	v.SetDefault("output.report_file", "output/sales_report.txt")
	v.SetDefault("output.enriched_file", "data/enriched_sales_data.txt")
	v.SetDefault("output.currency", "₹")
}

func defaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults are static and always unmarshal cleanly
		Logger.Errorf("Failed to unmarshal default config: %v", err)
	}
	return &cfg
}

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(config.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", config.CSV.Delimiter)
	}

	if config.Catalog.Limit <= 0 {
		return fmt.Errorf("catalog limit must be positive, got %d", config.Catalog.Limit)
	}

	if config.Catalog.TimeoutSeconds <= 0 {
		return fmt.Errorf("catalog timeout must be positive, got %d", config.Catalog.TimeoutSeconds)
	}

	if config.Analysis.TopProducts <= 0 {
		return fmt.Errorf("top products count must be positive, got %d", config.Analysis.TopProducts)
	}

	if config.Analysis.LowThreshold <= 0 {
		return fmt.Errorf("low-performer threshold must be positive, got %d", config.Analysis.LowThreshold)
	}

	return nil
}
