package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "|", cfg.CSV.Delimiter)
	assert.Equal(t, "https://dummyjson.com", cfg.Catalog.BaseURL)
	assert.Equal(t, 100, cfg.Catalog.Limit)
	assert.Equal(t, 30, cfg.Catalog.TimeoutSeconds)
	assert.True(t, cfg.Catalog.CacheEnabled)
	assert.Equal(t, 5, cfg.Analysis.TopProducts)
	assert.Equal(t, 10, cfg.Analysis.LowThreshold)
	assert.Equal(t, "output/sales_report.txt", cfg.Output.ReportFile)
	assert.Equal(t, "data/enriched_sales_data.txt", cfg.Output.EnrichedFile)
	assert.Equal(t, "₹", cfg.Output.Currency)
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, validateConfig(defaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"invalid log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"multi-char delimiter", func(c *Config) { c.CSV.Delimiter = "||" }},
		{"empty delimiter", func(c *Config) { c.CSV.Delimiter = "" }},
		{"zero catalog limit", func(c *Config) { c.Catalog.Limit = 0 }},
		{"negative timeout", func(c *Config) { c.Catalog.TimeoutSeconds = -1 }},
		{"zero top products", func(c *Config) { c.Analysis.TopProducts = 0 }},
		{"zero low threshold", func(c *Config) { c.Analysis.LowThreshold = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}

func TestValidateConfigCaseInsensitiveLogLevel(t *testing.T) {
	cfg := defaultConfig()
	cfg.Log.Level = "DEBUG"
	assert.NoError(t, validateConfig(cfg))
}
